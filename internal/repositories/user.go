package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, email, password_hash, name, phone, is_active, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByEmail returns the user with exactly this email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash, name string, phone *string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{email, "***", name, phone}

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, passwordHash, name, phone)

	logQuery(query, args, user.ID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil fields of in to the user and returns the stored row,
// or nil if the user does not exist. in.Password must already be hashed.
func (r *UserWriteRepository) Update(ctx context.Context, id uuid.UUID, in models.UpdateUserInput) (*models.User, error) {
	query := `
		UPDATE users
		SET email = COALESCE($2::VARCHAR, email),
		    password_hash = COALESCE($3::VARCHAR, password_hash),
		    name = COALESCE($4::VARCHAR, name),
		    phone = COALESCE($5::VARCHAR, phone),
		    is_active = COALESCE($6::BOOLEAN, is_active),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{id, in.Email, in.Password != nil, in.Name, in.Phone, in.IsActive}

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query,
		id, in.Email, in.Password, in.Name, in.Phone, in.IsActive)

	logQuery(query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user. It returns sql.ErrNoRows if nothing was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
