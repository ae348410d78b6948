package response

import (
	"testing"
	"time"

	"kasra-bnpl/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromAgreement(t *testing.T) {
	created := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	due := created.Add(30 * 24 * time.Hour)
	paid := created.Add(24 * time.Hour)

	view := FromAgreement(entities.Agreement{
		AgreementID:       "BNPL-1",
		BuyerAccountID:    "0.0.100",
		TotalAmount:       decimal.NewFromInt(400),
		Installments:      4,
		InstallmentAmount: decimal.NewFromInt(100),
		MerchantID:        "0.0.3",
		CreationDate:      created,
		NextDueDate:       &due,
		Status:            entities.AgreementStatusActive,
		Payments: []entities.Payment{{
			TransactionID: "0.0.123456@8.000000008",
			Amount:        decimal.NewFromInt(100),
			Date:          paid,
			Status:        entities.PaymentStatusCompleted,
		}},
	})

	if view.Type != "Pay Later Agreement" {
		t.Fatalf("unexpected type %q", view.Type)
	}
	if view.Amount != "40 JOD" {
		t.Fatalf("unexpected amount %q", view.Amount)
	}
	if view.HbarEquivalent != "400 HBAR" {
		t.Fatalf("unexpected hbar equivalent %q", view.HbarEquivalent)
	}
	if view.Date != "3/7/2026" {
		t.Fatalf("unexpected date %q", view.Date)
	}
	if view.Status != "Active" {
		t.Fatalf("unexpected status %q", view.Status)
	}
	if len(view.Payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(view.Payments))
	}
	if view.Payments[0].TransactionID != "0.0.123456@8.000000008" {
		t.Fatalf("unexpected payment tx id %q", view.Payments[0].TransactionID)
	}
	if view.NextDueDate == nil || !view.NextDueDate.Equal(due) {
		t.Fatalf("unexpected next due date %v", view.NextDueDate)
	}
}

func TestFromAgreement_FractionalConversion(t *testing.T) {
	view := FromAgreement(entities.Agreement{
		TotalAmount:  decimal.NewFromInt(25),
		CreationDate: time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
	})
	if view.Amount != "2.5 JOD" {
		t.Fatalf("unexpected amount %q", view.Amount)
	}
	if view.Date != "12/24/2026" {
		t.Fatalf("unexpected date %q", view.Date)
	}
}

func TestFromAgreementHistory_EmptyIsNonNil(t *testing.T) {
	views := FromAgreementHistory(nil)
	if views == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(views) != 0 {
		t.Fatalf("expected empty slice, got %d entries", len(views))
	}
}
