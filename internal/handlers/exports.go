package handlers

//go:generate mockgen -source=exports.go -destination=exports_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Henry18/mvp-debts/internal/export"
	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
)

// SummaryExporter provides the aggregates of the summary download.
type SummaryExporter interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.DebtSummary, error)
	DebtsIOwe(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error)
	DebtsOwedToMe(ctx context.Context, userID uuid.UUID, status *models.DebtStatus) ([]models.Debt, error)
}

// NewExportJSONHandler returns an HTTP handler downloading the caller's debts as JSON.
// @Summary Export debts as JSON
// @Tags exports
// @Produce json
// @Param status query string false "PENDING or PAID"
// @Success 200 {file} file
// @Failure 401 {object} handlers.ErrorResponse
// @Router /debts/export/json [get]
// @Security BearerAuth
func NewExportJSONHandler(svc UserDebtsFinder) http.HandlerFunc {
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
		if err != nil {
			writeError(w, r, err)
			return
		}

		body, err := export.DebtsJSON(debts)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeAttachment(w, "application/json", export.FileName(export.DebtsPrefix, user.ID, time.Now(), "json"), body)
	}
}

// NewExportCSVHandler returns an HTTP handler downloading the caller's debts as CSV.
// @Summary Export debts as CSV
// @Tags exports
// @Produce text/csv
// @Param status query string false "PENDING or PAID"
// @Success 200 {file} file
// @Failure 401 {object} handlers.ErrorResponse
// @Router /debts/export/csv [get]
// @Security BearerAuth
func NewExportCSVHandler(svc UserDebtsFinder) http.HandlerFunc {
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
		if err != nil {
			writeError(w, r, err)
			return
		}

		body := []byte(export.DebtsCSV(debts))
		writeAttachment(w, "text/csv; charset=utf-8", export.FileName(export.DebtsPrefix, user.ID, time.Now(), "csv"), body)
	}
}

// NewExportSummaryHandler returns an HTTP handler downloading the caller's summary document.
// @Summary Export debt summary
// @Tags exports
// @Produce json
// @Success 200 {file} file
// @Failure 401 {object} handlers.ErrorResponse
// @Router /debts/export/summary [get]
// @Security BearerAuth
func NewExportSummaryHandler(svc SummaryExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		ctx := r.Context()

		summary, err := svc.GetSummary(ctx, user.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		iOwe, err := svc.DebtsIOwe(ctx, user.ID, nil)
		if err != nil {
			writeError(w, r, err)
			return
		}
		owedToMe, err := svc.DebtsOwedToMe(ctx, user.ID, nil)
		if err != nil {
			writeError(w, r, err)
			return
		}

		now := time.Now()
		body, err := export.SummaryJSON(user, *summary, iOwe, owedToMe, now)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeAttachment(w, "application/json", export.FileName(export.SummaryPrefix, user.ID, now, "json"), body)
	}
}

func writeAttachment(w http.ResponseWriter, contentType, fileName string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
