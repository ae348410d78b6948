package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingInitiateFields       = errors.New("Missing required fields: buyerAccountId, totalAmountHbar, installments")
	ErrMissingPayInstallmentFields = errors.New("Missing required fields: buyerAccountId, agreementId, paymentAmountHbar")
)

// InitiatePayLaterRequest is the payload for POST /api/paylater/initiate.
// Amounts are expressed in HBAR.
type InitiatePayLaterRequest struct {
	BuyerAccountID  string          `json:"buyerAccountId"`
	TotalAmountHbar decimal.Decimal `json:"totalAmountHbar"`
	Installments    int             `json:"installments"`
}

func (r InitiatePayLaterRequest) Validate() error {
	if strings.TrimSpace(r.BuyerAccountID) == "" || r.TotalAmountHbar.IsZero() || r.Installments == 0 {
		return ErrMissingInitiateFields
	}
	return nil
}

func (r InitiatePayLaterRequest) ResolveBuyerAccountID() string {
	return strings.TrimSpace(r.BuyerAccountID)
}

// PayInstallmentRequest is the payload for POST /api/paylater/payinstallment.
type PayInstallmentRequest struct {
	BuyerAccountID    string          `json:"buyerAccountId"`
	AgreementID       string          `json:"agreementId"`
	PaymentAmountHbar decimal.Decimal `json:"paymentAmountHbar"`
}

func (r PayInstallmentRequest) Validate() error {
	if strings.TrimSpace(r.BuyerAccountID) == "" || strings.TrimSpace(r.AgreementID) == "" || r.PaymentAmountHbar.IsZero() {
		return ErrMissingPayInstallmentFields
	}
	return nil
}

func (r PayInstallmentRequest) ResolveBuyerAccountID() string {
	return strings.TrimSpace(r.BuyerAccountID)
}

func (r PayInstallmentRequest) ResolveAgreementID() string {
	return strings.TrimSpace(r.AgreementID)
}
