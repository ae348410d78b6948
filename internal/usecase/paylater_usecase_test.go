package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"kasra-bnpl/internal/adapter/persistence/repository"
	"kasra-bnpl/internal/domain/entities"
	mock_interfaces "kasra-bnpl/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPayLaterFixture(t *testing.T) (*PayLaterUseCase, *mock_interfaces.MockIAgreementRepository, *mock_interfaces.MockILedgerRecorder, *mock_interfaces.MockITransferGateway, *mock_interfaces.MockIDAllocator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
	recorder := mock_interfaces.NewMockILedgerRecorder(ctrl)
	gateway := mock_interfaces.NewMockITransferGateway(ctrl)
	ids := mock_interfaces.NewMockIDAllocator(ctrl)

	return NewPayLaterUseCase(repo, recorder, gateway, ids, "0.0.3"), repo, recorder, gateway, ids
}

func TestPayLaterUseCase_InitiateAgreement_Validations(t *testing.T) {
	cases := []struct {
		name         string
		buyer        string
		total        decimal.Decimal
		installments int
		want         error
	}{
		{name: "empty buyer", buyer: "  ", total: decimal.NewFromInt(400), installments: 4, want: ErrInvalidBuyerAccountID},
		{name: "zero total", buyer: "0.0.100", total: decimal.Zero, installments: 4, want: ErrInvalidTotalAmount},
		{name: "negative total", buyer: "0.0.100", total: decimal.NewFromInt(-10), installments: 4, want: ErrInvalidTotalAmount},
		{name: "zero installments", buyer: "0.0.100", total: decimal.NewFromInt(400), installments: 0, want: ErrInvalidInstallmentCount},
		{name: "negative installments", buyer: "0.0.100", total: decimal.NewFromInt(400), installments: -1, want: ErrInvalidInstallmentCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _, _, _ := newPayLaterFixture(t)
			_, err := uc.InitiateAgreement(context.Background(), tc.buyer, tc.total, tc.installments)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPayLaterUseCase_InitiateAgreement_Success(t *testing.T) {
	uc, repo, recorder, _, ids := newPayLaterFixture(t)

	ids.EXPECT().NewAgreementID().Return("BNPL-test-1")

	var persisted []entities.Agreement
	gomock.InOrder(
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("0.0.900001", nil),
		repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{}, nil),
		repo.EXPECT().PutBuyer(gomock.Any(), "0.0.100", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, agreements []entities.Agreement) error {
				persisted = agreements
				return nil
			}),
	)

	before := time.Now().UTC()
	id, err := uc.InitiateAgreement(context.Background(), " 0.0.100 ", decimal.NewFromInt(400), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "BNPL-test-1" {
		t.Fatalf("unexpected agreement id %q", id)
	}

	if len(persisted) != 1 {
		t.Fatalf("expected 1 persisted agreement, got %d", len(persisted))
	}
	a := persisted[0]
	if a.Status != entities.AgreementStatusActive {
		t.Fatalf("expected Active, got %s", a.Status)
	}
	if !a.InstallmentAmount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected installment amount 100, got %s", a.InstallmentAmount)
	}
	if !a.InstallmentAmount.Mul(decimal.NewFromInt(4)).Equal(a.TotalAmount) {
		t.Fatalf("installmentAmount*installments != totalAmount")
	}
	if a.MerchantID != "0.0.3" {
		t.Fatalf("unexpected merchant id %q", a.MerchantID)
	}
	if len(a.Payments) != 0 {
		t.Fatalf("expected empty payments, got %d", len(a.Payments))
	}
	if a.NextDueDate == nil {
		t.Fatal("expected next due date to be set")
	}
	wantDue := before.Add(30 * 24 * time.Hour)
	if diff := a.NextDueDate.Sub(wantDue); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("next due date off by %s", diff)
	}
}

func TestPayLaterUseCase_InitiateAgreement_InstallmentAmountSplit(t *testing.T) {
	uc, repo, recorder, _, ids := newPayLaterFixture(t)

	ids.EXPECT().NewAgreementID().Return("BNPL-test-2")
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("0.0.900001", nil)
	repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return(nil, nil)

	var persisted []entities.Agreement
	repo.EXPECT().PutBuyer(gomock.Any(), "0.0.100", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, agreements []entities.Agreement) error {
			persisted = agreements
			return nil
		})

	if _, err := uc.InitiateAgreement(context.Background(), "0.0.100", decimal.NewFromInt(100), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := persisted[0]
	product := a.InstallmentAmount.Mul(decimal.NewFromInt(3))
	tolerance := decimal.New(1, -9)
	if a.TotalAmount.Sub(product).Abs().GreaterThan(tolerance) {
		t.Fatalf("expected installmentAmount*3 ~= 100, got %s", product)
	}
}

func TestPayLaterUseCase_InitiateAgreement_LedgerFailureAbortsPersist(t *testing.T) {
	uc, _, recorder, _, ids := newPayLaterFixture(t)

	ids.EXPECT().NewAgreementID().Return("BNPL-test-3")
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("", errors.New("ledger down"))
	// No repo expectations: nothing may be read or written after a ledger failure.

	_, err := uc.InitiateAgreement(context.Background(), "0.0.100", decimal.NewFromInt(400), 4)
	if !errors.Is(err, ErrLedgerLog) {
		t.Fatalf("expected ErrLedgerLog, got %v", err)
	}
}

func TestPayLaterUseCase_InitiateAgreement_CancellationIsNotLedgerError(t *testing.T) {
	uc, _, recorder, _, ids := newPayLaterFixture(t)

	ids.EXPECT().NewAgreementID().Return("BNPL-test-4")
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("", context.Canceled)

	_, err := uc.InitiateAgreement(context.Background(), "0.0.100", decimal.NewFromInt(400), 4)
	if errors.Is(err, ErrLedgerLog) {
		t.Fatalf("cancellation must not map to ErrLedgerLog, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func activeAgreement(id, buyer string, total int64, installments int) entities.Agreement {
	now := time.Now().UTC()
	due := now.Add(30 * 24 * time.Hour)
	totalDec := decimal.NewFromInt(total)
	return entities.Agreement{
		AgreementID:       id,
		BuyerAccountID:    buyer,
		TotalAmount:       totalDec,
		Installments:      installments,
		InstallmentAmount: totalDec.Div(decimal.NewFromInt(int64(installments))),
		MerchantID:        "0.0.3",
		CreationDate:      now,
		NextDueDate:       &due,
		Status:            entities.AgreementStatusActive,
		Payments:          []entities.Payment{},
	}
}

func TestPayLaterUseCase_PayInstallment_Validations(t *testing.T) {
	cases := []struct {
		name      string
		buyer     string
		agreement string
		amount    decimal.Decimal
		want      error
	}{
		{name: "empty buyer", buyer: " ", agreement: "BNPL-1", amount: decimal.NewFromInt(100), want: ErrInvalidBuyerAccountID},
		{name: "empty agreement id", buyer: "0.0.100", agreement: " ", amount: decimal.NewFromInt(100), want: ErrInvalidAgreementID},
		{name: "zero amount", buyer: "0.0.100", agreement: "BNPL-1", amount: decimal.Zero, want: ErrInvalidPaymentAmount},
		{name: "negative amount", buyer: "0.0.100", agreement: "BNPL-1", amount: decimal.NewFromInt(-5), want: ErrInvalidPaymentAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _, _, _, _ := newPayLaterFixture(t)
			_, err := uc.PayInstallment(context.Background(), tc.buyer, tc.agreement, tc.amount)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPayLaterUseCase_PayInstallment_NotFound(t *testing.T) {
	t.Run("buyer has no agreements", func(t *testing.T) {
		uc, repo, _, _, _ := newPayLaterFixture(t)
		repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{}, nil)

		_, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100))
		if !errors.Is(err, ErrBuyerNotFound) {
			t.Fatalf("expected ErrBuyerNotFound, got %v", err)
		}
	})

	t.Run("unknown agreement id", func(t *testing.T) {
		uc, repo, _, _, _ := newPayLaterFixture(t)
		repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{activeAgreement("BNPL-other", "0.0.100", 400, 4)}, nil)

		_, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100))
		if !errors.Is(err, ErrAgreementNotFound) {
			t.Fatalf("expected ErrAgreementNotFound, got %v", err)
		}
	})

	t.Run("store error passes through", func(t *testing.T) {
		uc, repo, _, _, _ := newPayLaterFixture(t)
		repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return(nil, errors.New("disk"))

		_, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100))
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}

func TestPayLaterUseCase_PayInstallment_CompletedAgreementRejected(t *testing.T) {
	uc, repo, _, _, _ := newPayLaterFixture(t)

	done := activeAgreement("BNPL-1", "0.0.100", 400, 4)
	done.Status = entities.AgreementStatusCompleted
	done.NextDueDate = nil
	repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{done}, nil)

	_, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100))
	if !errors.Is(err, ErrAgreementNotActive) {
		t.Fatalf("expected ErrAgreementNotActive, got %v", err)
	}
}

func TestPayLaterUseCase_PayInstallment_PartialPayment(t *testing.T) {
	uc, repo, recorder, gateway, _ := newPayLaterFixture(t)

	repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{activeAgreement("BNPL-1", "0.0.100", 400, 4)}, nil)
	gateway.EXPECT().Transfer(gomock.Any(), "0.0.100", "0.0.3", decimal.NewFromInt(100)).Return("0.0.123456@1.000000001", nil)

	var persisted []entities.Agreement
	gomock.InOrder(
		recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("0.0.900002", nil),
		repo.EXPECT().PutBuyer(gomock.Any(), "0.0.100", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, agreements []entities.Agreement) error {
				persisted = agreements
				return nil
			}),
	)

	before := time.Now().UTC()
	txID, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txID != "0.0.123456@1.000000001" {
		t.Fatalf("unexpected tx id %q", txID)
	}

	a := persisted[0]
	if a.Status != entities.AgreementStatusActive {
		t.Fatalf("expected Active, got %s", a.Status)
	}
	if len(a.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(a.Payments))
	}
	if a.Payments[0].Status != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected payment status %q", a.Payments[0].Status)
	}
	if a.NextDueDate == nil {
		t.Fatal("expected next due date to stay set")
	}
	wantDue := before.Add(30 * 24 * time.Hour)
	if diff := a.NextDueDate.Sub(wantDue); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("next due date off by %s", diff)
	}
}

// Four payments of 100 against a 400/4 agreement: the first three leave it
// Active, the fourth completes it and clears the due date.
func TestPayLaterUseCase_PayInstallment_CompletionScenario(t *testing.T) {
	uc, repo, recorder, gateway, _ := newPayLaterFixture(t)

	store := []entities.Agreement{activeAgreement("BNPL-1", "0.0.100", 400, 4)}
	repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").DoAndReturn(
		func(context.Context, string) ([]entities.Agreement, error) {
			return append([]entities.Agreement(nil), store...), nil
		}).AnyTimes()
	repo.EXPECT().PutBuyer(gomock.Any(), "0.0.100", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, agreements []entities.Agreement) error {
			store = agreements
			return nil
		}).AnyTimes()
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("0.0.900003", nil).AnyTimes()
	gateway.EXPECT().Transfer(gomock.Any(), "0.0.100", "0.0.3", gomock.Any()).Return("0.0.123456@2.000000002", nil).AnyTimes()

	for i := 0; i < 3; i++ {
		if _, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100)); err != nil {
			t.Fatalf("payment %d failed: %v", i+1, err)
		}
	}

	a := store[0]
	if a.Status != entities.AgreementStatusActive {
		t.Fatalf("expected Active after 3 payments, got %s", a.Status)
	}
	if len(a.Payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(a.Payments))
	}

	if _, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100)); err != nil {
		t.Fatalf("final payment failed: %v", err)
	}

	a = store[0]
	if a.Status != entities.AgreementStatusCompleted {
		t.Fatalf("expected Completed, got %s", a.Status)
	}
	if a.NextDueDate != nil {
		t.Fatalf("expected next due date cleared, got %v", a.NextDueDate)
	}

	// Further payments against the completed agreement are rejected.
	if _, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100)); !errors.Is(err, ErrAgreementNotActive) {
		t.Fatalf("expected ErrAgreementNotActive, got %v", err)
	}
}

// One overpaying installment completes the agreement immediately; the
// surplus is accepted without complaint.
func TestPayLaterUseCase_PayInstallment_OverpaymentAccepted(t *testing.T) {
	uc, repo, recorder, gateway, _ := newPayLaterFixture(t)

	repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{activeAgreement("BNPL-1", "0.0.100", 400, 4)}, nil)
	gateway.EXPECT().Transfer(gomock.Any(), "0.0.100", "0.0.3", decimal.NewFromInt(500)).Return("0.0.123456@3.000000003", nil)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("0.0.900004", nil)

	var persisted []entities.Agreement
	repo.EXPECT().PutBuyer(gomock.Any(), "0.0.100", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, agreements []entities.Agreement) error {
			persisted = agreements
			return nil
		})

	if _, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(500)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := persisted[0]
	if a.Status != entities.AgreementStatusCompleted {
		t.Fatalf("expected Completed, got %s", a.Status)
	}
	if a.NextDueDate != nil {
		t.Fatal("expected next due date cleared")
	}
	if !a.TotalPaid().Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected total paid 500, got %s", a.TotalPaid())
	}
}

func TestPayLaterUseCase_PayInstallment_LedgerFailureAbortsPersist(t *testing.T) {
	uc, repo, recorder, gateway, _ := newPayLaterFixture(t)

	repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return([]entities.Agreement{activeAgreement("BNPL-1", "0.0.100", 400, 4)}, nil)
	gateway.EXPECT().Transfer(gomock.Any(), "0.0.100", "0.0.3", decimal.NewFromInt(100)).Return("0.0.123456@4.000000004", nil)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("", errors.New("ledger down"))
	// No PutBuyer expectation: the store must stay untouched.

	_, err := uc.PayInstallment(context.Background(), "0.0.100", "BNPL-1", decimal.NewFromInt(100))
	if !errors.Is(err, ErrLedgerLog) {
		t.Fatalf("expected ErrLedgerLog, got %v", err)
	}
}

// Ten goroutines each pay one installment of 100 against a 1000/10
// agreement backed by the real file store. The use-case mutex serializes
// the read-modify-write cycles, so every payment must land and the tenth
// must complete the agreement.
func TestPayLaterUseCase_PayInstallment_ConcurrentPaymentsLoseNoUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository.NewAgreementFileRepository(filepath.Join(t.TempDir(), "agreements.json"))
	recorder := mock_interfaces.NewMockILedgerRecorder(ctrl)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Return("0.0.900005", nil).AnyTimes()
	gateway := mock_interfaces.NewMockITransferGateway(ctrl)
	gateway.EXPECT().Transfer(gomock.Any(), "0.0.100", "0.0.3", gomock.Any()).Return("0.0.123456@9.000000009", nil).AnyTimes()

	uc := NewPayLaterUseCase(repo, recorder, gateway, UUIDAllocator{}, "0.0.3")

	ctx := context.Background()
	if err := repo.PutBuyer(ctx, "0.0.100", []entities.Agreement{activeAgreement("BNPL-1", "0.0.100", 1000, 10)}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	const workers = 10
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.PayInstallment(ctx, "0.0.100", "BNPL-1", decimal.NewFromInt(100)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent payment failed: %v", err)
	}

	got, err := repo.ListByBuyer(ctx, "0.0.100")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	a := got[0]
	if len(a.Payments) != workers {
		t.Fatalf("expected %d payments, got %d", workers, len(a.Payments))
	}
	if !a.TotalPaid().Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected total paid 1000, got %s", a.TotalPaid())
	}
	if a.Status != entities.AgreementStatusCompleted {
		t.Fatalf("expected Completed, got %s", a.Status)
	}
	if a.NextDueDate != nil {
		t.Fatalf("expected next due date cleared, got %v", a.NextDueDate)
	}
}

func TestPayLaterUseCase_History(t *testing.T) {
	t.Run("empty buyer id", func(t *testing.T) {
		uc, _, _, _, _ := newPayLaterFixture(t)
		_, err := uc.History(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidBuyerAccountID) {
			t.Fatalf("expected ErrInvalidBuyerAccountID, got %v", err)
		}
	})

	t.Run("unknown buyer yields empty history", func(t *testing.T) {
		uc, repo, _, _, _ := newPayLaterFixture(t)
		repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.404").Return([]entities.Agreement{}, nil)

		agreements, err := uc.History(context.Background(), "0.0.404")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(agreements) != 0 {
			t.Fatalf("expected empty history, got %d entries", len(agreements))
		}
	})

	t.Run("passes agreements through untouched", func(t *testing.T) {
		uc, repo, _, _, _ := newPayLaterFixture(t)
		stored := []entities.Agreement{activeAgreement("BNPL-1", "0.0.100", 400, 4)}
		repo.EXPECT().ListByBuyer(gomock.Any(), "0.0.100").Return(stored, nil).Times(2)

		first, err := uc.History(context.Background(), "0.0.100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.History(context.Background(), "0.0.100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != 1 || len(second) != 1 {
			t.Fatalf("expected 1 entry from both reads, got %d and %d", len(first), len(second))
		}
		if first[0].AgreementID != second[0].AgreementID || first[0].Status != second[0].Status {
			t.Fatal("repeated reads disagree")
		}
	})
}

func TestUUIDAllocator_NewAgreementID(t *testing.T) {
	alloc := UUIDAllocator{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := alloc.NewAgreementID()
		if !strings.HasPrefix(id, "BNPL-") {
			t.Fatalf("missing prefix: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
