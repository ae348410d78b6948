package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"kasra-bnpl/internal/domain/entities"
	"kasra-bnpl/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBuyerAccountID   = errors.New("invalid buyer account id")
	ErrInvalidTotalAmount      = errors.New("total amount must be positive")
	ErrInvalidInstallmentCount = errors.New("installments must be at least 1")
	ErrInvalidAgreementID      = errors.New("invalid agreement id")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be positive")
	ErrBuyerNotFound           = errors.New("no agreements found for this buyer")
	ErrAgreementNotFound       = errors.New("agreement not found")
	ErrAgreementNotActive      = errors.New("agreement is not active")
	ErrLedgerLog               = errors.New("failed to log to ledger")
)

const installmentPeriod = 30 * 24 * time.Hour

// IPayLaterUseCase encapsulates the BNPL agreement lifecycle:
// initiate an agreement, apply installment payments, read history.

type IPayLaterUseCase interface {
	InitiateAgreement(ctx context.Context, buyerAccountID string, totalAmount decimal.Decimal, installments int) (agreementID string, err error)
	PayInstallment(ctx context.Context, buyerAccountID, agreementID string, amount decimal.Decimal) (transactionID string, err error)
	History(ctx context.Context, buyerAccountID string) ([]entities.Agreement, error)
}

// PayLaterUseCase drives the Active -> Completed agreement state machine.
//
// Both ledger logging and persistence follow the same order everywhere:
// the event is logged first, then the store is updated. A ledger failure
// therefore aborts the operation with nothing persisted, for creation and
// installments alike.
//
// mu is the single-writer boundary over the shared agreement document:
// concurrent mutations for any buyer serialize here, so a read-modify-write
// can never lose an update.

type PayLaterUseCase struct {
	repo       interfaces.IAgreementRepository
	ledger     interfaces.ILedgerRecorder
	gateway    interfaces.ITransferGateway
	ids        interfaces.IDAllocator
	merchantID string

	mu sync.Mutex
}

var _ IPayLaterUseCase = (*PayLaterUseCase)(nil)

func NewPayLaterUseCase(
	repo interfaces.IAgreementRepository,
	ledger interfaces.ILedgerRecorder,
	gateway interfaces.ITransferGateway,
	ids interfaces.IDAllocator,
	merchantID string,
) *PayLaterUseCase {
	return &PayLaterUseCase{
		repo:       repo,
		ledger:     ledger,
		gateway:    gateway,
		ids:        ids,
		merchantID: merchantID,
	}
}

func (u *PayLaterUseCase) InitiateAgreement(ctx context.Context, buyerAccountID string, totalAmount decimal.Decimal, installments int) (string, error) {
	buyerAccountID = strings.TrimSpace(buyerAccountID)
	log.Printf("[paylater][usecase] initiate start buyer=%s total=%s installments=%d", buyerAccountID, totalAmount, installments)

	if buyerAccountID == "" {
		return "", ErrInvalidBuyerAccountID
	}
	if !totalAmount.IsPositive() {
		return "", ErrInvalidTotalAmount
	}
	if installments < 1 {
		return "", ErrInvalidInstallmentCount
	}
	if u.repo == nil {
		return "", errors.New("agreement repository not configured")
	}
	if u.ledger == nil {
		return "", errors.New("ledger recorder not configured")
	}

	now := time.Now().UTC()
	due := now.Add(installmentPeriod)
	agreement := entities.Agreement{
		AgreementID:       u.ids.NewAgreementID(),
		BuyerAccountID:    buyerAccountID,
		TotalAmount:       totalAmount,
		Installments:      installments,
		InstallmentAmount: totalAmount.Div(decimal.NewFromInt(int64(installments))),
		MerchantID:        u.merchantID,
		CreationDate:      now,
		NextDueDate:       &due,
		Status:            entities.AgreementStatusActive,
		Payments:          []entities.Payment{},
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot, err := json.Marshal(agreement)
	if err != nil {
		return "", err
	}
	recordID, err := u.ledger.Record(ctx, interfaces.LedgerEvent{
		Type:           interfaces.LedgerEventAgreementInitiated,
		AgreementID:    agreement.AgreementID,
		BuyerAccountID: buyerAccountID,
		Amount:         totalAmount,
		Date:           now,
		Detail:         snapshot,
	})
	if err != nil {
		log.Printf("[paylater][usecase] initiate ledger log failed buyer=%s err=%v", buyerAccountID, err)
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrLedgerLog, err)
	}
	log.Printf("[paylater][usecase] agreement logged to ledger buyer=%s agreement_id=%s record_id=%s", buyerAccountID, agreement.AgreementID, recordID)

	existing, err := u.repo.ListByBuyer(ctx, buyerAccountID)
	if err != nil {
		return "", err
	}
	if err := u.repo.PutBuyer(ctx, buyerAccountID, append(existing, agreement)); err != nil {
		return "", err
	}

	log.Printf("[paylater][usecase] initiate success buyer=%s agreement_id=%s", buyerAccountID, agreement.AgreementID)
	return agreement.AgreementID, nil
}

func (u *PayLaterUseCase) PayInstallment(ctx context.Context, buyerAccountID, agreementID string, amount decimal.Decimal) (string, error) {
	buyerAccountID = strings.TrimSpace(buyerAccountID)
	agreementID = strings.TrimSpace(agreementID)
	log.Printf("[paylater][usecase] pay-installment start buyer=%s agreement_id=%s amount=%s", buyerAccountID, agreementID, amount)

	if buyerAccountID == "" {
		return "", ErrInvalidBuyerAccountID
	}
	if agreementID == "" {
		return "", ErrInvalidAgreementID
	}
	if !amount.IsPositive() {
		return "", ErrInvalidPaymentAmount
	}
	if u.repo == nil {
		return "", errors.New("agreement repository not configured")
	}
	if u.ledger == nil {
		return "", errors.New("ledger recorder not configured")
	}
	if u.gateway == nil {
		return "", errors.New("transfer gateway not configured")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	agreements, err := u.repo.ListByBuyer(ctx, buyerAccountID)
	if err != nil {
		return "", err
	}
	if len(agreements) == 0 {
		return "", ErrBuyerNotFound
	}

	idx := -1
	for i := range agreements {
		if agreements[i].AgreementID == agreementID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "", ErrAgreementNotFound
	}

	agreement := agreements[idx]
	if agreement.Status != entities.AgreementStatusActive {
		log.Printf("[paylater][usecase] agreement not active buyer=%s agreement_id=%s status=%s", buyerAccountID, agreementID, agreement.Status)
		return "", ErrAgreementNotActive
	}

	txID, err := u.gateway.Transfer(ctx, buyerAccountID, agreement.MerchantID, amount)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	agreement.Payments = append(agreement.Payments, entities.Payment{
		TransactionID: txID,
		Amount:        amount,
		Date:          now,
		Status:        entities.PaymentStatusCompleted,
	})

	// Overpayment is accepted on purpose; completion triggers off the paid
	// sum, not the payment count.
	if agreement.TotalPaid().GreaterThanOrEqual(agreement.TotalAmount) {
		agreement.Status = entities.AgreementStatusCompleted
		agreement.NextDueDate = nil
		log.Printf("[paylater][usecase] agreement completed buyer=%s agreement_id=%s", buyerAccountID, agreementID)
	} else {
		due := now.Add(installmentPeriod)
		agreement.NextDueDate = &due
	}

	recordID, err := u.ledger.Record(ctx, interfaces.LedgerEvent{
		Type:           interfaces.LedgerEventInstallmentPaid,
		AgreementID:    agreementID,
		BuyerAccountID: buyerAccountID,
		Amount:         amount,
		TransactionID:  txID,
		Date:           now,
	})
	if err != nil {
		log.Printf("[paylater][usecase] installment ledger log failed buyer=%s agreement_id=%s err=%v", buyerAccountID, agreementID, err)
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrLedgerLog, err)
	}
	log.Printf("[paylater][usecase] installment logged to ledger agreement_id=%s record_id=%s", agreementID, recordID)

	agreements[idx] = agreement
	if err := u.repo.PutBuyer(ctx, buyerAccountID, agreements); err != nil {
		return "", err
	}

	log.Printf("[paylater][usecase] pay-installment success buyer=%s agreement_id=%s tx_id=%s paid=%d/%d", buyerAccountID, agreementID, txID, len(agreement.Payments), agreement.Installments)
	return txID, nil
}

func (u *PayLaterUseCase) History(ctx context.Context, buyerAccountID string) ([]entities.Agreement, error) {
	buyerAccountID = strings.TrimSpace(buyerAccountID)
	if buyerAccountID == "" {
		return nil, ErrInvalidBuyerAccountID
	}
	// Read-only projection; an unknown buyer simply has an empty history.
	return u.repo.ListByBuyer(ctx, buyerAccountID)
}
