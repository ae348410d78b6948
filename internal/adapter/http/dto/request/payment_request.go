package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMissingPaymentFields = errors.New("Missing required fields: buyerAccountId, amountHbar")

// HbarPaymentRequest is the payload for POST /api/payment/hbar. OrderID is
// accepted for storefront compatibility but carries no behavior.
type HbarPaymentRequest struct {
	BuyerAccountID string          `json:"buyerAccountId"`
	AmountHbar     decimal.Decimal `json:"amountHbar"`
	OrderID        string          `json:"orderId,omitempty"`
}

func (r HbarPaymentRequest) Validate() error {
	if strings.TrimSpace(r.BuyerAccountID) == "" || r.AmountHbar.IsZero() {
		return ErrMissingPaymentFields
	}
	return nil
}

func (r HbarPaymentRequest) ResolveBuyerAccountID() string {
	return strings.TrimSpace(r.BuyerAccountID)
}
