package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgreementStatus represents the lifecycle of a Pay Later agreement.
//
// Domain notes:
//   - Transitions are monotonic: Active -> Completed, nothing else.
//   - There is no Cancelled or Defaulted state; the next due date is
//     advisory metadata and nothing enforces it.

type AgreementStatus string

const (
	AgreementStatusActive    AgreementStatus = "Active"
	AgreementStatusCompleted AgreementStatus = "Completed"
)

// PaymentStatusCompleted is the only payment outcome modeled. Partial or
// failed installment transfers do not exist in this system.
const PaymentStatusCompleted = "Completed"

// Payment is one installment settlement appended to an agreement.
type Payment struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Status        string          `json:"status"`
}

// Agreement is one Buy Now, Pay Later contract instance for a buyer.
//
// Storage model: the buyer's agreements live as an ordered list under the
// buyer account id in the agreement store. Records are never deleted;
// Payments is append-only. InstallmentAmount is computed once at creation.
type Agreement struct {
	AgreementID       string          `json:"agreementId"`
	BuyerAccountID    string          `json:"buyerAccountId"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	MerchantID        string          `json:"merchantId"`
	CreationDate      time.Time       `json:"creationDate"`
	NextDueDate       *time.Time      `json:"nextDueDate"`
	Status            AgreementStatus `json:"status"`
	Payments          []Payment       `json:"payments"`
}

// TotalPaid sums every recorded installment amount.
func (a Agreement) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.Payments {
		total = total.Add(p.Amount)
	}
	return total
}
