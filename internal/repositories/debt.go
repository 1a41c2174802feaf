package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// debtSelect joins both parties; LEFT JOIN keeps a debt whose party row is gone
// so that callers can detect the unresolved reference.
const debtSelect = `
	SELECT d.id, d.description, d.amount, d.status, d.paid_at,
	       d.debtor_id, d.creditor_id, d.created_at, d.updated_at,
	       du.id AS debtor_user_id, du.email AS debtor_email, du.name AS debtor_name,
	       du.phone AS debtor_phone, du.is_active AS debtor_is_active,
	       du.created_at AS debtor_created_at, du.updated_at AS debtor_updated_at,
	       cu.id AS creditor_user_id, cu.email AS creditor_email, cu.name AS creditor_name,
	       cu.phone AS creditor_phone, cu.is_active AS creditor_is_active,
	       cu.created_at AS creditor_created_at, cu.updated_at AS creditor_updated_at
	FROM debts d
	LEFT JOIN users du ON du.id = d.debtor_id
	LEFT JOIN users cu ON cu.id = d.creditor_id
`

// debtRow is the flat scan target of debtSelect.
type debtRow struct {
	ID          uuid.UUID       `db:"id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	PaidAt      sql.NullTime    `db:"paid_at"`
	DebtorID    uuid.UUID       `db:"debtor_id"`
	CreditorID  uuid.UUID       `db:"creditor_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`

	DebtorUserID    uuid.NullUUID  `db:"debtor_user_id"`
	DebtorEmail     sql.NullString `db:"debtor_email"`
	DebtorName      sql.NullString `db:"debtor_name"`
	DebtorPhone     sql.NullString `db:"debtor_phone"`
	DebtorIsActive  sql.NullBool   `db:"debtor_is_active"`
	DebtorCreatedAt sql.NullTime   `db:"debtor_created_at"`
	DebtorUpdatedAt sql.NullTime   `db:"debtor_updated_at"`

	CreditorUserID    uuid.NullUUID  `db:"creditor_user_id"`
	CreditorEmail     sql.NullString `db:"creditor_email"`
	CreditorName      sql.NullString `db:"creditor_name"`
	CreditorPhone     sql.NullString `db:"creditor_phone"`
	CreditorIsActive  sql.NullBool   `db:"creditor_is_active"`
	CreditorCreatedAt sql.NullTime   `db:"creditor_created_at"`
	CreditorUpdatedAt sql.NullTime   `db:"creditor_updated_at"`
}

func (row debtRow) toModel() models.Debt {
	debt := models.Debt{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Status:      models.DebtStatus(row.Status),
		DebtorID:    row.DebtorID,
		CreditorID:  row.CreditorID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.PaidAt.Valid {
		paidAt := row.PaidAt.Time
		debt.PaidAt = &paidAt
	}
	debt.Debtor = joinedUser(row.DebtorUserID, row.DebtorEmail, row.DebtorName, row.DebtorPhone,
		row.DebtorIsActive, row.DebtorCreatedAt, row.DebtorUpdatedAt)
	debt.Creditor = joinedUser(row.CreditorUserID, row.CreditorEmail, row.CreditorName, row.CreditorPhone,
		row.CreditorIsActive, row.CreditorCreatedAt, row.CreditorUpdatedAt)
	return debt
}

func joinedUser(
	id uuid.NullUUID,
	email, name, phone sql.NullString,
	isActive sql.NullBool,
	createdAt, updatedAt sql.NullTime,
) *models.User {
	if !id.Valid {
		return nil
	}
	user := &models.User{
		ID:        id.UUID,
		Email:     email.String,
		Name:      name.String,
		IsActive:  isActive.Bool,
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}
	if phone.Valid {
		p := phone.String
		user.Phone = &p
	}
	return user
}

func toModels(rows []debtRow) []models.Debt {
	debts := make([]models.Debt, 0, len(rows))
	for _, row := range rows {
		debts = append(debts, row.toModel())
	}
	return debts
}

func statusArg(status *models.DebtStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}

// DebtReadRepository handles debt read operations
type DebtReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDebtReadRepository(db *sqlx.DB, txGetter TxGetter) *DebtReadRepository {
	return &DebtReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the debt with resolved parties, or nil if there is none.
func (r *DebtReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Debt, error) {
	query := debtSelect + ` WHERE d.id = $1`

	var row debtRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, id)

	logQuery(query, []any{id}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	debt := row.toModel()
	return &debt, nil
}

// List returns the debts matching every non-nil field of filter, newest first.
func (r *DebtReadRepository) List(ctx context.Context, filter models.DebtFilter) ([]models.Debt, error) {
	query := debtSelect + `
		WHERE ($1::UUID IS NULL OR d.debtor_id = $1)
		  AND ($2::UUID IS NULL OR d.creditor_id = $2)
		  AND ($3::VARCHAR IS NULL OR d.status = $3)
		ORDER BY d.created_at DESC
	`
	args := []any{filter.DebtorID, filter.CreditorID, statusArg(filter.Status)}

	var rows []debtRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)

	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, err
	}
	return toModels(rows), nil
}

// ListByUser returns the debts where userID is debtor or creditor, newest first.
func (r *DebtReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error) {
	query := debtSelect + `
		WHERE (d.debtor_id = $1 OR d.creditor_id = $1)
		  AND ($2::VARCHAR IS NULL OR d.status = $2)
		ORDER BY d.created_at DESC
	`
	args := []any{userID, statusArg(status)}

	var rows []debtRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)

	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, err
	}
	return toModels(rows), nil
}

// CountByUser returns how many debts reference userID as either party.
func (r *DebtReadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM debts WHERE debtor_id = $1 OR creditor_id = $1`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, userID)

	logQuery(query, []any{userID}, count, err)

	return count, err
}

// DebtWriteRepository handles debt write operations
type DebtWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDebtWriteRepository(db *sqlx.DB, txGetter TxGetter) *DebtWriteRepository {
	return &DebtWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a PENDING debt and returns its id.
func (r *DebtWriteRepository) Save(ctx context.Context, in models.CreateDebtInput) (uuid.UUID, error) {
	query := `
		INSERT INTO debts (description, amount, status, debtor_id, creditor_id, created_at, updated_at)
		VALUES ($1, $2, 'PENDING', $3, $4, NOW(), NOW())
		RETURNING id
	`
	args := []any{in.Description, in.Amount, in.DebtorID, in.CreditorID}

	var id uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return id, err
}

// Update applies the non-nil fields of in to a PENDING debt.
// It returns sql.ErrNoRows when no PENDING debt with this id exists.
func (r *DebtWriteRepository) Update(ctx context.Context, id uuid.UUID, in models.UpdateDebtInput) error {
	query := `
		UPDATE debts
		SET description = COALESCE($2::TEXT, description),
		    amount = COALESCE($3::NUMERIC, amount),
		    debtor_id = COALESCE($4::UUID, debtor_id),
		    creditor_id = COALESCE($5::UUID, creditor_id),
		    updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`
	args := []any{id, in.Description, in.Amount, in.DebtorID, in.CreditorID}
	return r.execOne(ctx, query, args)
}

// MarkPaid settles a PENDING debt, stamping paid_at with the database clock.
// It returns sql.ErrNoRows when no PENDING debt with this id exists.
func (r *DebtWriteRepository) MarkPaid(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE debts
		SET status = 'PAID', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`
	return r.execOne(ctx, query, []any{id})
}

// Delete removes a PENDING debt.
// It returns sql.ErrNoRows when no PENDING debt with this id exists.
func (r *DebtWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM debts WHERE id = $1 AND status = 'PENDING'`
	return r.execOne(ctx, query, []any{id})
}

func (r *DebtWriteRepository) execOne(ctx context.Context, query string, args []any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
