package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/middlewares"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/Henry18/mvp-debts/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Messages produced by request parsing
const (
	msgInternalError = services.MsgInternalError
	msgInvalidBody   = "Cuerpo de la solicitud inválido"
	msgInvalidID     = "ID inválido"
	msgInvalidStatus = "Estado de deuda inválido"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Error interno del servidor
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps a service error to its HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr     *services.ValidationError
		notFoundErr       *services.NotFoundError
		authenticationErr *services.AuthenticationError
		authorizationErr  *services.AuthorizationError
	)

	switch {
	case errors.As(err, &validationErr):
		writeMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		writeMessage(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &authenticationErr):
		writeMessage(w, http.StatusUnauthorized, authenticationErr.Message)
	case errors.As(err, &authorizationErr):
		writeMessage(w, http.StatusForbidden, authorizationErr.Message)
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"err", err,
		)
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
	}
}

// currentUser returns the user stored by the auth middleware, answering 401 when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, services.MsgUnauthorized)
		return nil, false
	}
	return user, true
}

// pathID parses the {id} route parameter, answering 400 when malformed.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses an optional UUID query parameter.
func queryID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// queryStatus parses the optional status query parameter, answering 400 when unknown.
func queryStatus(w http.ResponseWriter, r *http.Request) (*models.DebtStatus, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	status := models.DebtStatus(raw)
	if !status.Valid() {
		writeMessage(w, http.StatusBadRequest, msgInvalidStatus)
		return nil, false
	}
	return &status, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}
