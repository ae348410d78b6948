package response

import (
	"strings"
	"time"

	"kasra-bnpl/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Storefront display rate: 1 HBAR = 0.1 JOD.
var hbarToJOD = decimal.New(1, -1)

// formatAmount drops trailing zeros so "40.0" renders as "40", matching how
// the storefront displays numbers.
func formatAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// PaymentView mirrors the stored payment record.
type PaymentView struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
}

// AgreementView is the display projection of one agreement: converted JOD
// amount, human creation date, raw payment trail.
type AgreementView struct {
	Type              string          `json:"type"`
	Amount            string          `json:"amount"`
	HbarEquivalent    string          `json:"hbar_equivalent"`
	AgreementID       string          `json:"agreement_id"`
	Date              string          `json:"date"`
	Status            string          `json:"status"`
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	NextDueDate       *time.Time      `json:"nextDueDate"`
	Payments          []PaymentView   `json:"payments"`
}

func FromAgreement(a entities.Agreement) AgreementView {
	payments := make([]PaymentView, 0, len(a.Payments))
	for _, p := range a.Payments {
		payments = append(payments, PaymentView{
			TransactionID: p.TransactionID,
			Amount:        p.Amount,
			Date:          p.Date,
			Status:        p.Status,
		})
	}

	return AgreementView{
		Type:              "Pay Later Agreement",
		Amount:            formatAmount(a.TotalAmount.Mul(hbarToJOD)) + " JOD",
		HbarEquivalent:    formatAmount(a.TotalAmount) + " HBAR",
		AgreementID:       a.AgreementID,
		Date:              a.CreationDate.Format("1/2/2006"),
		Status:            string(a.Status),
		Installments:      a.Installments,
		InstallmentAmount: a.InstallmentAmount,
		NextDueDate:       a.NextDueDate,
		Payments:          payments,
	}
}

func FromAgreementHistory(agreements []entities.Agreement) []AgreementView {
	views := make([]AgreementView, 0, len(agreements))
	for _, a := range agreements {
		views = append(views, FromAgreement(a))
	}
	return views
}
