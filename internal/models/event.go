package models

// Debt event types published after a successful ledger mutation.
const (
	DebtEventCreated = "debt.created"
	DebtEventUpdated = "debt.updated"
	DebtEventPaid    = "debt.paid"
	DebtEventRemoved = "debt.removed"
)

// DebtEvent describes a ledger mutation, including amount, parties, timestamp, and event type.
type DebtEvent struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Type       string `json:"type"`        // Type is one of the DebtEvent* constants.
	DebtID     string `json:"debt_id"`     // DebtID is the identifier of the mutated debt.
	DebtorID   string `json:"debtor_id"`   // DebtorID is the party who owes the money.
	CreditorID string `json:"creditor_id"` // CreditorID is the party owed the money.
	Amount     string `json:"amount"`      // Amount is the decimal amount with two places.
	Status     string `json:"status"`      // Status is the debt status after the mutation.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) of the mutation.
}
