package services

//go:generate mockgen -source=debts.go -destination=debts_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Henry18/mvp-debts/internal/logger"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/Henry18/mvp-debts/internal/txhooks"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const minDescriptionLength = 3

// maxAmount is the first value that no longer fits debts.amount NUMERIC(10,2).
var maxAmount = decimal.New(1, 8)

// DebtReader defines read-only operations for debts.
type DebtReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Debt, error)                                    // Returns the debt or nil
	List(ctx context.Context, filter models.DebtFilter) ([]models.Debt, error)                          // Returns debts matching filter, newest first
	ListByUser(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error) // Returns debts where user is either party
}

// DebtWriter defines write operations for debts.
// Update, MarkPaid and Delete return sql.ErrNoRows when no PENDING debt matched.
type DebtWriter interface {
	Save(ctx context.Context, in models.CreateDebtInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in models.UpdateDebtInput) error
	MarkPaid(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserFinder resolves user ids.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DebtService owns the debt lifecycle.
type DebtService struct {
	reader      DebtReader
	writer      DebtWriter
	users       UserFinder
	cache       Cache
	kafkaWriter KafkaWriter
	ttl         time.Duration
}

// NewDebtService creates a new DebtService. kafkaWriter may be nil.
func NewDebtService(
	reader DebtReader,
	writer DebtWriter,
	users UserFinder,
	cache Cache,
	kafkaWriter KafkaWriter,
	ttl time.Duration,
) *DebtService {
	return &DebtService{
		reader:      reader,
		writer:      writer,
		users:       users,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		ttl:         ttl,
	}
}

// Create records a new PENDING debt between two existing, distinct users.
func (s *DebtService) Create(ctx context.Context, in models.CreateDebtInput) (*models.Debt, error) {
	amount, err := validateAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	in.Amount = amount
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.DebtorID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.CreditorID); err != nil {
		return nil, err
	}
	if in.DebtorID == in.CreditorID {
		return nil, &ValidationError{Message: MsgSameDebtorAndCreditor}
	}

	id, err := s.writer.Save(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to save debt", "debtorID", in.DebtorID, "creditorID", in.CreditorID, "error", err)
		return nil, err
	}

	debt, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, models.DebtEventCreated, debt)

	return debt, nil
}

// FindAll lists debts matching filter. It always queries the store and then
// refreshes the cached listing for this filter.
func (s *DebtService) FindAll(ctx context.Context, filter models.DebtFilter) ([]models.Debt, error) {
	debts, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list debts", "error", err)
		return nil, err
	}

	cacheStore(ctx, s.cache, debtsAllKey(filter), debts, s.ttl)
	return debts, nil
}

// FindOne returns the debt with both parties resolved.
func (s *DebtService) FindOne(ctx context.Context, id uuid.UUID) (*models.Debt, error) {
	key := debtKey(id)

	var cached models.Debt
	if cacheLookup(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	debt, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get debt", "debtID", id, "error", err)
		return nil, err
	}
	if debt == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf(MsgDebtNotFound, id)}
	}
	if debt.Debtor == nil || debt.Creditor == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf(MsgDebtRelationsNotLoaded, id)}
	}

	cacheStore(ctx, s.cache, key, debt, s.ttl)
	return debt, nil
}

// FindByUser lists debts where userID is debtor or creditor.
func (s *DebtService) FindByUser(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error) {
	debts, err := s.reader.ListByUser(ctx, userID, status)
	if err != nil {
		logger.Log.Errorw("failed to list user debts", "userID", userID, "error", err)
		return nil, err
	}
	return debts, nil
}

// DebtsIOwe lists debts where userID is the debtor.
func (s *DebtService) DebtsIOwe(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error) {
	return s.FindAll(ctx, models.DebtFilter{DebtorID: &userID, Status: status})
}

// DebtsOwedToMe lists debts where userID is the creditor.
func (s *DebtService) DebtsOwedToMe(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error) {
	return s.FindAll(ctx, models.DebtFilter{CreditorID: &userID, Status: status})
}

// Update applies a partial change to a PENDING debt.
func (s *DebtService) Update(ctx context.Context, id uuid.UUID, in models.UpdateDebtInput) (*models.Debt, error) {
	current, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == models.DebtStatusPaid {
		return nil, &ValidationError{Message: MsgPaidDebtNotEditable}
	}

	if in.Amount != nil {
		amount, err := validateAmount(*in.Amount)
		if err != nil {
			return nil, err
		}
		in.Amount = &amount
	}
	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return nil, err
		}
	}

	debtorID, creditorID := current.DebtorID, current.CreditorID
	if in.DebtorID != nil {
		if _, err := s.users.FindByID(ctx, *in.DebtorID); err != nil {
			return nil, err
		}
		debtorID = *in.DebtorID
	}
	if in.CreditorID != nil {
		if _, err := s.users.FindByID(ctx, *in.CreditorID); err != nil {
			return nil, err
		}
		creditorID = *in.CreditorID
	}
	if debtorID == creditorID {
		return nil, &ValidationError{Message: MsgSameDebtorAndCreditor}
	}

	if err := s.writer.Update(ctx, id, in); err != nil {
		return nil, s.writeFailed(ctx, id, MsgPaidDebtNotEditable, err)
	}

	debt, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, models.DebtEventUpdated, debt)

	return debt, nil
}

// MarkAsPaid settles a PENDING debt.
func (s *DebtService) MarkAsPaid(ctx context.Context, id uuid.UUID) (*models.Debt, error) {
	current, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == models.DebtStatusPaid {
		return nil, &ValidationError{Message: MsgDebtAlreadyPaid}
	}

	if err := s.writer.MarkPaid(ctx, id); err != nil {
		return nil, s.writeFailed(ctx, id, MsgDebtAlreadyPaid, err)
	}

	debt, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, models.DebtEventPaid, debt)

	return debt, nil
}

// Remove deletes a PENDING debt.
func (s *DebtService) Remove(ctx context.Context, id uuid.UUID) (bool, error) {
	current, err := s.FindOne(ctx, id)
	if err != nil {
		return false, err
	}
	if current.Status == models.DebtStatusPaid {
		return false, &ValidationError{Message: MsgPaidDebtNotRemovable}
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		return false, s.writeFailed(ctx, id, MsgPaidDebtNotRemovable, err)
	}

	s.afterMutation(ctx, models.DebtEventRemoved, current)

	return true, nil
}

// GetSummary aggregates every debt where userID is either party.
func (s *DebtService) GetSummary(ctx context.Context, userID uuid.UUID) (*models.DebtSummary, error) {
	key := summaryKey(userID)

	var cached models.DebtSummary
	if cacheLookup(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	debts, err := s.FindByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	summary := Summarize(debts)
	cacheStore(ctx, s.cache, key, summary, s.ttl)
	return &summary, nil
}

// Summarize folds debts into counts and sums. Every debt counts towards the
// total; PENDING debts go to the pending bucket and any other status to the paid one.
func Summarize(debts []models.Debt) models.DebtSummary {
	summary := models.DebtSummary{
		TotalAmount:   decimal.Zero,
		PendingAmount: decimal.Zero,
		PaidAmount:    decimal.Zero,
	}
	for _, d := range debts {
		summary.TotalDebts++
		summary.TotalAmount = summary.TotalAmount.Add(d.Amount)
		if d.Status == models.DebtStatusPending {
			summary.PendingDebts++
			summary.PendingAmount = summary.PendingAmount.Add(d.Amount)
		} else {
			summary.PaidDebts++
			summary.PaidAmount = summary.PaidAmount.Add(d.Amount)
		}
	}
	return summary
}

// reload reads a debt right after it was written.
func (s *DebtService) reload(ctx context.Context, id uuid.UUID) (*models.Debt, error) {
	debt, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to reload debt", "debtID", id, "error", err)
		return nil, err
	}
	if debt == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf(MsgDebtNotFound, id)}
	}
	return debt, nil
}

// writeFailed maps a conditional write that matched no PENDING row. The debt
// was either removed or settled after it was loaded.
func (s *DebtService) writeFailed(ctx context.Context, id uuid.UUID, paidMsg string, err error) error {
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to write debt", "debtID", id, "error", err)
		return err
	}
	if _, reloadErr := s.reload(ctx, id); reloadErr != nil {
		return reloadErr
	}
	return &ValidationError{Message: paidMsg}
}

// afterMutation resets the cache and publishes the event once the mutation
// has committed.
func (s *DebtService) afterMutation(ctx context.Context, eventType string, debt *models.Debt) {
	txhooks.AfterCommit(ctx, func(ctx context.Context) {
		s.invalidate(ctx)
		s.publishEvent(ctx, eventType, debt)
	})
}

// invalidate drops every cached entry after a ledger mutation.
func (s *DebtService) invalidate(ctx context.Context) {
	if err := s.cache.Reset(ctx); err != nil {
		logger.Log.Errorw("failed to reset cache", "error", err)
	}
}

// publishEvent publishes a ledger mutation to Kafka.
func (s *DebtService) publishEvent(ctx context.Context, eventType string, debt *models.Debt) {
	event := models.DebtEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		DebtID:     debt.ID.String(),
		DebtorID:   debt.DebtorID.String(),
		CreditorID: debt.CreditorID.String(),
		Amount:     debt.Amount.StringFixed(2),
		Status:     string(debt.Status),
		Timestamp:  time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal debt event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.DebtID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish debt event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Debt event published to Kafka", "event_id", event.EventID, "type", eventType, "amount", event.Amount)
	}
}

// validateAmount rounds amount to cents and rejects anything not above zero
// or too large for the amount column.
func validateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if !amount.IsPositive() || !rounded.IsPositive() {
		return decimal.Zero, &ValidationError{Message: MsgAmountMustBePositive}
	}
	if rounded.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, &ValidationError{Message: MsgAmountTooLarge}
	}
	return rounded, nil
}

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return &ValidationError{Message: MsgDescriptionRequired}
	}
	if utf8.RuneCountInString(trimmed) < minDescriptionLength {
		return &ValidationError{Message: MsgDescriptionTooShort}
	}
	return nil
}
