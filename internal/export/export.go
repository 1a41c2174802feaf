// Package export renders a user's debts as downloadable JSON and CSV documents.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// File name prefixes
const (
	DebtsPrefix   = "deudas"
	SummaryPrefix = "resumen_deudas"
)

const (
	timeLayout = "2006-01-02T15:04:05.000Z07:00"
	bom        = "\uFEFF"
)

var csvHeader = []string{
	"ID",
	"Descripción",
	"Monto",
	"Estado",
	"Deudor",
	"Email Deudor",
	"Acreedor",
	"Email Acreedor",
	"Fecha Creación",
	"Fecha Pago",
}

type party struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

type debtRecord struct {
	ID          string  `json:"id"`
	Description string  `json:"descripcion"`
	Amount      float64 `json:"monto"`
	Status      string  `json:"estado"`
	Debtor      party   `json:"deudor"`
	Creditor    party   `json:"acreedor"`
	CreatedAt   string  `json:"fechaCreacion"`
	PaidAt      *string `json:"fechaPago"`
}

type totals struct {
	TotalDebts    int     `json:"totalDeudas"`
	PendingDebts  int     `json:"deudasPendientes"`
	PaidDebts     int     `json:"deudasPagadas"`
	TotalAmount   float64 `json:"montoTotal"`
	PendingAmount float64 `json:"montoPendiente"`
	PaidAmount    float64 `json:"montoPagado"`
}

type pendingTotals struct {
	Total         int     `json:"total"`
	Pending       int     `json:"pendientes"`
	PendingAmount float64 `json:"montoPendiente"`
}

type summaryDocument struct {
	User        party         `json:"usuario"`
	Summary     totals        `json:"resumen"`
	DebtsIOwe   pendingTotals `json:"deudasQueDebo"`
	DebtsOwedMe pendingTotals `json:"deudasQueMeDeben"`
	GeneratedAt string        `json:"fechaGeneracion"`
}

// DebtsJSON renders debts as a JSON array with Spanish keys.
func DebtsJSON(debts []models.Debt) ([]byte, error) {
	records := make([]debtRecord, 0, len(debts))
	for _, d := range debts {
		record := debtRecord{
			ID:          d.ID.String(),
			Description: d.Description,
			Amount:      d.Amount.InexactFloat64(),
			Status:      string(d.Status),
			Debtor:      toParty(d.Debtor),
			Creditor:    toParty(d.Creditor),
			CreatedAt:   formatTime(d.CreatedAt),
		}
		if d.PaidAt != nil {
			paidAt := formatTime(*d.PaidAt)
			record.PaidAt = &paidAt
		}
		records = append(records, record)
	}
	return json.Marshal(records)
}

// DebtsCSV renders debts as a BOM-prefixed CSV document. Free-text fields are
// always quoted with embedded quotes doubled; rows are separated by "\n".
func DebtsCSV(debts []models.Debt) string {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(strings.Join(csvHeader, ","))

	for _, d := range debts {
		debtor, creditor := toParty(d.Debtor), toParty(d.Creditor)
		paidAt := ""
		if d.PaidAt != nil {
			paidAt = formatTime(*d.PaidAt)
		}

		b.WriteString("\n")
		b.WriteString(strings.Join([]string{
			d.ID.String(),
			quote(d.Description),
			d.Amount.StringFixed(2),
			string(d.Status),
			quote(debtor.Name),
			debtor.Email,
			quote(creditor.Name),
			creditor.Email,
			formatTime(d.CreatedAt),
			paidAt,
		}, ","))
	}

	return b.String()
}

// SummaryJSON renders the summary document for user. iOwe and owedToMe are the
// debts where the user is debtor and creditor respectively.
func SummaryJSON(user *models.User, summary models.DebtSummary, iOwe, owedToMe []models.Debt, now time.Time) ([]byte, error) {
	doc := summaryDocument{
		User: toParty(user),
		Summary: totals{
			TotalDebts:    summary.TotalDebts,
			PendingDebts:  summary.PendingDebts,
			PaidDebts:     summary.PaidDebts,
			TotalAmount:   summary.TotalAmount.InexactFloat64(),
			PendingAmount: summary.PendingAmount.InexactFloat64(),
			PaidAmount:    summary.PaidAmount.InexactFloat64(),
		},
		DebtsIOwe:   pendingOf(iOwe),
		DebtsOwedMe: pendingOf(owedToMe),
		GeneratedAt: formatTime(now),
	}
	return json.Marshal(doc)
}

// FileName builds "<prefix>_<userID>_<unix millis>.<ext>".
func FileName(prefix string, userID uuid.UUID, now time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%d.%s", prefix, userID, now.UnixMilli(), ext)
}

func pendingOf(debts []models.Debt) pendingTotals {
	t := pendingTotals{Total: len(debts)}
	amount := decimal.Zero
	for _, d := range debts {
		if d.Status == models.DebtStatusPending {
			t.Pending++
			amount = amount.Add(d.Amount)
		}
	}
	t.PendingAmount = amount.InexactFloat64()
	return t
}

func toParty(u *models.User) party {
	if u == nil {
		return party{}
	}
	return party{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
