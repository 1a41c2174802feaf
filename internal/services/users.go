package services

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/Henry18/mvp-debts/internal/txhooks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength   = 6
	uniqueViolationCode = "23505"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash, name string, phone *string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, in models.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DebtCounter counts the debts that reference a user.
type DebtCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// UserService owns user records.
type UserService struct {
	reader UserReader
	writer UserWriter
	debts  DebtCounter
	cache  Cache
	ttl    time.Duration
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, debts DebtCounter, cache Cache, ttl time.Duration) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		debts:  debts,
		cache:  cache,
		ttl:    ttl,
	}
}

// Create registers a new user with a bcrypt-hashed password.
func (svc *UserService) Create(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", in.Email, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Message: MsgEmailTaken}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, in.Email, string(hashedPassword), in.Name, in.Phone)
	if isUniqueViolation(err) {
		return nil, &ValidationError{Message: MsgEmailTaken}
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", in.Email, "err", err)
		return nil, err
	}

	svc.forget(ctx, user.ID)
	return user, nil
}

// FindByID returns the user, served from cache when a live entry exists.
func (svc *UserService) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	key := userKey(id)

	var cached models.User
	if cacheLookup(ctx, svc.cache, key, &cached) {
		return &cached, nil
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf(MsgUserNotFound, id)}
	}

	cacheStore(ctx, svc.cache, key, user, svc.ttl)
	return user, nil
}

// FindByEmail returns the user with this exact email, or nil. It never uses the cache.
func (svc *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

// List returns all users, served from cache when a live entry exists.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	var cached []models.User
	if cacheLookup(ctx, svc.cache, usersAllKey, &cached) {
		return cached, nil
	}

	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	cacheStore(ctx, svc.cache, usersAllKey, users, svc.ttl)
	return users, nil
}

// Update merges the provided fields onto the user. A new password is rehashed.
func (svc *UserService) Update(ctx context.Context, id uuid.UUID, in models.UpdateUserInput) (*models.User, error) {
	current, err := svc.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != current.Email {
		if err := validateEmail(*in.Email); err != nil {
			return nil, err
		}
		owner, err := svc.reader.GetByEmail(ctx, *in.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "email", *in.Email, "err", err)
			return nil, err
		}
		if owner != nil && owner.ID != id {
			return nil, &ValidationError{Message: MsgEmailTaken}
		}
	}
	if in.Name != nil {
		if err := validateName(*in.Name); err != nil {
			return nil, err
		}
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		hashed := string(hashedPassword)
		in.Password = &hashed
	}

	user, err := svc.writer.Update(ctx, id, in)
	if isUniqueViolation(err) {
		return nil, &ValidationError{Message: MsgEmailTaken}
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "userID", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf(MsgUserNotFound, id)}
	}

	svc.forget(ctx, id)
	return user, nil
}

// Remove deletes the user. Users still referenced by a debt cannot be removed.
func (svc *UserService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := svc.FindByID(ctx, id); err != nil {
		return false, err
	}

	count, err := svc.debts.CountByUser(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to count user debts", "userID", id, "err", err)
		return false, err
	}
	if count > 0 {
		return false, &ValidationError{Message: MsgUserHasDebts}
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, &NotFoundError{Message: fmt.Sprintf(MsgUserNotFound, id)}
		}
		logger.Log.Errorw("failed to delete user", "userID", id, "err", err)
		return false, err
	}

	svc.forget(ctx, id)
	return true, nil
}

// forget drops the cached copy of one user and the users listing once the
// change has committed.
func (svc *UserService) forget(ctx context.Context, id uuid.UUID) {
	txhooks.AfterCommit(ctx, func(ctx context.Context) {
		if err := svc.cache.Delete(ctx, userKey(id), usersAllKey); err != nil {
			logger.Log.Errorw("failed to invalidate user cache", "userID", id, "err", err)
		}
	})
}

// isUniqueViolation reports a PostgreSQL unique_violation, such as a second
// registration of the same email racing past the lookup.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Message: MsgInvalidEmail}
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return &ValidationError{Message: MsgPasswordTooShort}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Message: MsgNameRequired}
	}
	return nil
}
