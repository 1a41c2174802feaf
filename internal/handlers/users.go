package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
)

// UserCreator creates users.
type UserCreator interface {
	Create(ctx context.Context, in models.CreateUserInput) (*models.User, error)
}

// UserLister lists users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserGetter loads one user.
type UserGetter interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserUpdater applies partial user updates.
type UserUpdater interface {
	Update(ctx context.Context, id uuid.UUID, in models.UpdateUserInput) (*models.User, error)
}

// UserRemover deletes users.
type UserRemover interface {
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

// UpdateUserRequest represents the JSON body of a partial user update
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// RemovedResponse reports a successful removal
// swagger:model RemovedResponse
type RemovedResponse struct {
	// default: true
	Removed bool `json:"removed"`
}

// NewCreateUserHandler returns an HTTP handler that creates a user without issuing a token.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.RegisterRequest true "New user"
// @Success 201 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Create(r.Context(), models.CreateUserInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Phone:    req.Phone,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewMeHandler returns an HTTP handler answering with the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse
// @Router /users/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetUserHandler returns an HTTP handler loading one user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		user, err := svc.FindByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler applying a partial user update.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [patch]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), id, models.UpdateUserInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Phone:    req.Phone,
			IsActive: req.IsActive,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewRemoveUserHandler returns an HTTP handler deleting a user with no debts.
// @Summary Remove user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.RemovedResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewRemoveUserHandler(svc UserRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		removed, err := svc.Remove(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, RemovedResponse{Removed: removed})
	}
}
