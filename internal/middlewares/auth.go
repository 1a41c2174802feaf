package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/Henry18/mvp-debts/internal/jwt"
	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/Henry18/mvp-debts/internal/services"
	"github.com/google/uuid"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserResolver loads the user a token was issued for.
type UserResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userContextKey struct{}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the acting user in the request context.
func AuthMiddleware(tokener Tokener, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil {
				logger.Log.Errorw("authorization failed", "userID", claims.UserID, "err", err)
				unauthorized(w)
				return
			}
			if !user.IsActive {
				logger.Log.Errorw("authorization failed", "userID", claims.UserID, "err", "user is inactive")
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// UserFromContext returns the authenticated user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.User)
	return user, ok && user != nil
}

// WithUser returns a copy of ctx carrying user, as AuthMiddleware does.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func unauthorized(w http.ResponseWriter) {
	writeJSONError(w, http.StatusUnauthorized, services.MsgUnauthorized)
}
