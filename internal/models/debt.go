package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

// Known debt statuses
const (
	DebtStatusPending DebtStatus = "PENDING"
	DebtStatusPaid    DebtStatus = "PAID"
)

// Valid reports whether s is one of the known statuses.
func (s DebtStatus) Valid() bool {
	return s == DebtStatusPending || s == DebtStatusPaid
}

// Debt is a directed monetary obligation from Debtor to Creditor.
// Debtor and Creditor are nil when the referenced user row could not be joined.
type Debt struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      DebtStatus      `json:"status"`
	PaidAt      *time.Time      `json:"paidAt"`
	DebtorID    uuid.UUID       `json:"debtorId"`
	CreditorID  uuid.UUID       `json:"creditorId"`
	Debtor      *User           `json:"debtor"`
	Creditor    *User           `json:"creditor"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateDebtInput carries the fields required to record a new debt.
type CreateDebtInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DebtorID    uuid.UUID       `json:"debtorId"`
	CreditorID  uuid.UUID       `json:"creditorId"`
}

// UpdateDebtInput carries a partial debt update. Nil fields are left untouched.
type UpdateDebtInput struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	DebtorID    *uuid.UUID       `json:"debtorId,omitempty"`
	CreditorID  *uuid.UUID       `json:"creditorId,omitempty"`
}

// DebtFilter is an optional conjunction of debt attributes.
// The JSON form is also the cache key suffix for filtered listings.
type DebtFilter struct {
	DebtorID   *uuid.UUID  `json:"debtorId,omitempty"`
	CreditorID *uuid.UUID  `json:"creditorId,omitempty"`
	Status     *DebtStatus `json:"status,omitempty"`
}

// DebtSummary aggregates one user's debts, as debtor and creditor combined.
type DebtSummary struct {
	TotalDebts    int             `json:"totalDebts"`
	PendingDebts  int             `json:"pendingDebts"`
	PaidDebts     int             `json:"paidDebts"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
}
