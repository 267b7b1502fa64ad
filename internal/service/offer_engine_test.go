package service

import (
	"testing"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

func TestDecideOfferTiers(t *testing.T) {
	tests := []struct {
		name           string
		orderAmount    float64
		recentPayments int
		wantTier       models.OfferTier
		wantAmount     float64
		wantTerm       int
		wantRate       float64
	}{
		{
			name:        "Small amount instant",
			orderAmount: 150,
			wantTier:    models.OfferTierInstant,
			wantAmount:  150,
			wantTerm:    1,
			wantRate:    0.03,
		},
		{
			name:        "Exactly 200 is instant",
			orderAmount: 200,
			wantTier:    models.OfferTierInstant,
			wantAmount:  200,
			wantTerm:    1,
			wantRate:    0.03,
		},
		{
			name:           "Instant regardless of history",
			orderAmount:    200,
			recentPayments: 0,
			wantTier:       models.OfferTierInstant,
			wantAmount:     200,
			wantTerm:       1,
			wantRate:       0.03,
		},
		{
			name:           "Medium amount with history",
			orderAmount:    800,
			recentPayments: 5,
			wantTier:       models.OfferTierInstallment,
			wantAmount:     800,
			wantTerm:       2,
			wantRate:       0.04,
		},
		{
			name:           "Exactly 1000 with history",
			orderAmount:    1000,
			recentPayments: 3,
			wantTier:       models.OfferTierInstallment,
			wantAmount:     1000,
			wantTerm:       2,
			wantRate:       0.04,
		},
		{
			name:           "Medium amount thin history",
			orderAmount:    800,
			recentPayments: 2,
			wantTier:       models.OfferTierManualReview,
		},
		{
			name:           "Just above 200 without history",
			orderAmount:    200.01,
			recentPayments: 0,
			wantTier:       models.OfferTierManualReview,
		},
		{
			name:           "Above 1000 regardless of history",
			orderAmount:    1000.01,
			recentPayments: 50,
			wantTier:       models.OfferTierManualReview,
		},
		{
			name:           "Large amount",
			orderAmount:    5000,
			recentPayments: 10,
			wantTier:       models.OfferTierManualReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.OfferRequest{
				UserID:         "user-1",
				OrderAmount:    tt.orderAmount,
				RecentPayments: tt.recentPayments,
				DeviceCountry:  "US",
				BillingCountry: "US",
			}

			offer := DecideOffer(req)

			if offer.Tier != tt.wantTier {
				t.Errorf("Tier = %v, want %v", offer.Tier, tt.wantTier)
			}
			if offer.AmountOffered != tt.wantAmount {
				t.Errorf("AmountOffered = %v, want %v", offer.AmountOffered, tt.wantAmount)
			}
			if offer.TermMonths != tt.wantTerm {
				t.Errorf("TermMonths = %v, want %v", offer.TermMonths, tt.wantTerm)
			}
			if offer.InterestRate != tt.wantRate {
				t.Errorf("InterestRate = %v, want %v", offer.InterestRate, tt.wantRate)
			}
			if offer.Status != models.OfferStatusPending {
				t.Errorf("Status = %v, want %v", offer.Status, models.OfferStatusPending)
			}
			if offer.ID == "" {
				t.Error("ID is empty")
			}
		})
	}
}

func TestDecideOfferMonthlyPayment(t *testing.T) {
	tests := []struct {
		name           string
		orderAmount    float64
		recentPayments int
		want           float64
	}{
		{
			name:        "Instant includes 3 percent",
			orderAmount: 150,
			want:        154.50,
		},
		{
			name:           "Installment splits over two months",
			orderAmount:    800,
			recentPayments: 5,
			want:           402.67,
		},
		{
			name:        "Manual review has no payment",
			orderAmount: 2000,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.OfferRequest{
				UserID:         "user-1",
				OrderAmount:    tt.orderAmount,
				RecentPayments: tt.recentPayments,
				DeviceCountry:  "US",
				BillingCountry: "US",
			}

			offer := DecideOffer(req)
			if offer.MonthlyPayment != tt.want {
				t.Errorf("MonthlyPayment = %v, want %v", offer.MonthlyPayment, tt.want)
			}
		})
	}
}

func TestDecideOfferManualReviewZeroTerms(t *testing.T) {
	offer := DecideOffer(&models.OfferRequest{
		UserID:         "user-1",
		OrderAmount:    1500,
		RecentPayments: 1,
		DeviceCountry:  "US",
		BillingCountry: "US",
	})

	if offer.Tier != models.OfferTierManualReview {
		t.Fatalf("Tier = %v, want %v", offer.Tier, models.OfferTierManualReview)
	}
	if offer.AmountOffered != 0 || offer.TermMonths != 0 || offer.InterestRate != 0 {
		t.Errorf("manual review terms = (%v, %v, %v), want all zero",
			offer.AmountOffered, offer.TermMonths, offer.InterestRate)
	}
}
