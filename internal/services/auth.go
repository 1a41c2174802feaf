package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"

	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserDirectory creates and looks up users for authentication.
type UserDirectory interface {
	Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) // Registers a new user
	FindByEmail(ctx context.Context, email string) (*models.User, error)         // Returns the user or nil
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users UserDirectory
	jwt   JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserDirectory, jwt JWTGenerator) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

// Register creates a user and returns a token for it.
func (svc *AuthService) Register(ctx context.Context, in models.CreateUserInput) (string, *models.User, error) {
	user, err := svc.users.Create(ctx, in)
	if err != nil {
		return "", nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return "", nil, &AuthenticationError{Message: MsgInvalidCredentials}
	}
	if !user.IsActive {
		logger.Log.Infow("login for inactive user", "userID", user.ID)
		return "", nil, &AuthenticationError{Message: MsgInvalidCredentials}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", nil, &AuthenticationError{Message: MsgInvalidCredentials}
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
