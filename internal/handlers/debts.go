package handlers

//go:generate mockgen -source=debts.go -destination=debts_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtCreator records debts.
type DebtCreator interface {
	Create(ctx context.Context, in models.CreateDebtInput) (*models.Debt, error)
}

// DebtLister lists debts by filter.
type DebtLister interface {
	FindAll(ctx context.Context, filter models.DebtFilter) ([]models.Debt, error)
}

// UserDebtsFinder lists debts where a user is either party.
type UserDebtsFinder interface {
	FindByUser(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error)
}

// DebtsIOweLister lists debts where a user is the debtor.
type DebtsIOweLister interface {
	DebtsIOwe(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error)
}

// DebtsOwedToMeLister lists debts where a user is the creditor.
type DebtsOwedToMeLister interface {
	DebtsOwedToMe(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error)
}

// DebtSummarizer aggregates a user's debts.
type DebtSummarizer interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.DebtSummary, error)
}

// DebtGetter loads one debt.
type DebtGetter interface {
	FindOne(ctx context.Context, id uuid.UUID) (*models.Debt, error)
}

// DebtUpdater applies partial debt updates.
type DebtUpdater interface {
	Update(ctx context.Context, id uuid.UUID, in models.UpdateDebtInput) (*models.Debt, error)
}

// DebtPayer settles debts.
type DebtPayer interface {
	MarkAsPaid(ctx context.Context, id uuid.UUID) (*models.Debt, error)
}

// DebtRemover deletes debts.
type DebtRemover interface {
	Remove(ctx context.Context, id uuid.UUID) (bool, error)
}

// CreateDebtRequest represents the JSON body for recording a debt
// swagger:model CreateDebtRequest
type CreateDebtRequest struct {
	// required: true
	// default: Cena del viernes
	Description string `json:"description"`

	// Positive amount, rounded to two decimals
	// required: true
	// default: 25.50
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`

	// required: true
	DebtorID uuid.UUID `json:"debtorId"`

	// required: true
	CreditorID uuid.UUID `json:"creditorId"`
}

// UpdateDebtRequest represents the JSON body of a partial debt update
// swagger:model UpdateDebtRequest
type UpdateDebtRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty" swaggertype:"number"`
	DebtorID    *uuid.UUID       `json:"debtorId,omitempty"`
	CreditorID  *uuid.UUID       `json:"creditorId,omitempty"`
}

// NewCreateDebtHandler returns an HTTP handler recording a new PENDING debt.
// @Summary Create debt
// @Tags debts
// @Accept json
// @Produce json
// @Param createDebtRequest body handlers.CreateDebtRequest true "New debt"
// @Success 201 {object} models.Debt
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Debtor or creditor not found"
// @Router /debts [post]
// @Security BearerAuth
func NewCreateDebtHandler(svc DebtCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDebtRequest
		if !decodeBody(w, r, &req) {
			return
		}

		debt, err := svc.Create(r.Context(), models.CreateDebtInput{
			Description: req.Description,
			Amount:      req.Amount,
			DebtorID:    req.DebtorID,
			CreditorID:  req.CreditorID,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, debt)
	}
}

// NewListDebtsHandler returns an HTTP handler listing debts by optional filter.
// @Summary List debts
// @Tags debts
// @Produce json
// @Param debtorId query string false "Debtor ID"
// @Param creditorId query string false "Creditor ID"
// @Param status query string false "PENDING or PAID"
// @Success 200 {array} models.Debt
// @Failure 400 {object} handlers.ErrorResponse
// @Router /debts [get]
// @Security BearerAuth
func NewListDebtsHandler(svc DebtLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		debtorID, err := queryID(r, "debtorId")
		if err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		creditorID, err := queryID(r, "creditorId")
		if err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidID)
			return
		}
		status, ok := queryStatus(w, r)
		if !ok {
			return
		}

		debts, err := svc.FindAll(r.Context(), models.DebtFilter{
			DebtorID:   debtorID,
			CreditorID: creditorID,
			Status:     status,
		})
		writeDebts(w, r, debts, err)
	}
}

// NewMyDebtsHandler returns an HTTP handler listing the caller's debts as either party.
// @Summary My debts
// @Tags debts
// @Produce json
// @Param status query string false "PENDING or PAID"
// @Success 200 {array} models.Debt
// @Router /debts/mine [get]
// @Security BearerAuth
func NewMyDebtsHandler(svc UserDebtsFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		status, ok := queryStatus(w, r)
		if !ok {
			return
		}

		debts, err := svc.FindByUser(r.Context(), user.ID, status)
		writeDebts(w, r, debts, err)
	}
}

// NewDebtsIOweHandler returns an HTTP handler listing debts where the caller is the debtor.
// @Summary Debts I owe
// @Tags debts
// @Produce json
// @Param status query string false "PENDING or PAID"
// @Success 200 {array} models.Debt
// @Router /debts/i-owe [get]
// @Security BearerAuth
func NewDebtsIOweHandler(svc DebtsIOweLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		status, ok := queryStatus(w, r)
		if !ok {
			return
		}

		debts, err := svc.DebtsIOwe(r.Context(), user.ID, status)
		writeDebts(w, r, debts, err)
	}
}

// NewDebtsOwedToMeHandler returns an HTTP handler listing debts where the caller is the creditor.
// @Summary Debts owed to me
// @Tags debts
// @Produce json
// @Param status query string false "PENDING or PAID"
// @Success 200 {array} models.Debt
// @Router /debts/owed-to-me [get]
// @Security BearerAuth
func NewDebtsOwedToMeHandler(svc DebtsOwedToMeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		status, ok := queryStatus(w, r)
		if !ok {
			return
		}

		debts, err := svc.DebtsOwedToMe(r.Context(), user.ID, status)
		writeDebts(w, r, debts, err)
	}
}

// NewDebtSummaryHandler returns an HTTP handler aggregating the caller's debts.
// @Summary Debt summary
// @Tags debts
// @Produce json
// @Success 200 {object} models.DebtSummary
// @Router /debts/summary [get]
// @Security BearerAuth
func NewDebtSummaryHandler(svc DebtSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		summary, err := svc.GetSummary(r.Context(), user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// NewGetDebtHandler returns an HTTP handler loading one debt by id.
// @Summary Get debt
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} models.Debt
// @Failure 404 {object} handlers.ErrorResponse
// @Router /debts/{id} [get]
// @Security BearerAuth
func NewGetDebtHandler(svc DebtGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		debt, err := svc.FindOne(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, debt)
	}
}

// NewUpdateDebtHandler returns an HTTP handler applying a partial update to a PENDING debt.
// @Summary Update debt
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param updateDebtRequest body handlers.UpdateDebtRequest true "Fields to change"
// @Success 200 {object} models.Debt
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /debts/{id} [patch]
// @Security BearerAuth
func NewUpdateDebtHandler(svc DebtUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req UpdateDebtRequest
		if !decodeBody(w, r, &req) {
			return
		}

		debt, err := svc.Update(r.Context(), id, models.UpdateDebtInput{
			Description: req.Description,
			Amount:      req.Amount,
			DebtorID:    req.DebtorID,
			CreditorID:  req.CreditorID,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, debt)
	}
}

// NewPayDebtHandler returns an HTTP handler settling a PENDING debt.
// @Summary Mark debt as paid
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} models.Debt
// @Failure 400 {object} handlers.ErrorResponse "Debt already paid"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /debts/{id}/pay [post]
// @Security BearerAuth
func NewPayDebtHandler(svc DebtPayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		debt, err := svc.MarkAsPaid(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, debt)
	}
}

// NewRemoveDebtHandler returns an HTTP handler deleting a PENDING debt.
// @Summary Remove debt
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} handlers.RemovedResponse
// @Failure 400 {object} handlers.ErrorResponse "Debt already paid"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /debts/{id} [delete]
// @Security BearerAuth
func NewRemoveDebtHandler(svc DebtRemover) http.HandlerFunc {
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

func writeDebts(w http.ResponseWriter, r *http.Request, debts []models.Debt, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if debts == nil {
		debts = []models.Debt{}
	}
	writeJSON(w, http.StatusOK, debts)
}
