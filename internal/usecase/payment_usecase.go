package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"kasra-bnpl/internal/usecase/interfaces"
)

// IHbarPaymentUseCase covers the pay-in-full path: one direct HBAR transfer
// from buyer to merchant, nothing persisted.

type IHbarPaymentUseCase interface {
	Pay(ctx context.Context, buyerAccountID string, amount decimal.Decimal) (transactionID string, err error)
}

type HbarPaymentUseCase struct {
	gateway    interfaces.ITransferGateway
	merchantID string
}

var _ IHbarPaymentUseCase = (*HbarPaymentUseCase)(nil)

func NewHbarPaymentUseCase(gateway interfaces.ITransferGateway, merchantID string) *HbarPaymentUseCase {
	return &HbarPaymentUseCase{gateway: gateway, merchantID: merchantID}
}

func (u *HbarPaymentUseCase) Pay(ctx context.Context, buyerAccountID string, amount decimal.Decimal) (string, error) {
	buyerAccountID = strings.TrimSpace(buyerAccountID)
	if buyerAccountID == "" {
		return "", ErrInvalidBuyerAccountID
	}
	if !amount.IsPositive() {
		return "", ErrInvalidPaymentAmount
	}
	if u.gateway == nil {
		return "", errors.New("transfer gateway not configured")
	}

	txID, err := u.gateway.Transfer(ctx, buyerAccountID, u.merchantID, amount)
	if err != nil {
		log.Printf("[payment][usecase] transfer failed buyer=%s err=%v", buyerAccountID, err)
		return "", err
	}
	log.Printf("[payment][usecase] payment success buyer=%s amount=%s tx_id=%s", buyerAccountID, amount, txID)
	return txID, nil
}
