package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Moha-Bremoo/RouaProject/internal/models"
)

// Offer decision thresholds. Boundary comparisons are inclusive: an order of
// exactly 200 is instant, exactly 1000 (with history) is installment.
const (
	instantMaxAmount      = 200.0
	installmentMaxAmount  = 1000.0
	installmentMinHistory = 3

	instantTermMonths     = 1
	installmentTermMonths = 2

	instantRate     = 0.03
	installmentRate = 0.04
)

// offerRule pairs a guard with the outcome it produces. Rules are evaluated
// top-down and the first match wins, so new tiers can be inserted without
// touching the others.
type offerRule struct {
	matches func(req *models.OfferRequest) bool
	apply   func(req *models.OfferRequest, offer *models.Offer)
}

var offerRules = []offerRule{
	{
		matches: func(req *models.OfferRequest) bool {
			return req.OrderAmount <= instantMaxAmount
		},
		apply: func(req *models.OfferRequest, offer *models.Offer) {
			offer.Tier = models.OfferTierInstant
			offer.AmountOffered = req.OrderAmount
			offer.TermMonths = instantTermMonths
			offer.InterestRate = instantRate
			offer.MonthlyPayment = roundCents(req.OrderAmount * (1 + instantRate))
			offer.Reason = "small amount instant approval"
		},
	},
	{
		matches: func(req *models.OfferRequest) bool {
			return req.OrderAmount <= installmentMaxAmount &&
				req.RecentPayments >= installmentMinHistory
		},
		apply: func(req *models.OfferRequest, offer *models.Offer) {
			offer.Tier = models.OfferTierInstallment
			offer.AmountOffered = req.OrderAmount
			offer.TermMonths = installmentTermMonths
			offer.InterestRate = installmentRate
			monthlyRate := 1 + installmentRate/12
			offer.MonthlyPayment = roundCents(req.OrderAmount * math.Pow(monthlyRate, installmentTermMonths) / installmentTermMonths)
			offer.Reason = "good payment history - installment approval"
		},
	},
	{
		// Catch-all: large amounts or thin payment history go to a human.
		matches: func(req *models.OfferRequest) bool { return true },
		apply: func(req *models.OfferRequest, offer *models.Offer) {
			offer.Tier = models.OfferTierManualReview
			offer.Reason = "requires manual review due to amount or insufficient payment history"
		},
	},
}

// DecideOffer classifies a purchase request into an approval tier and
// computes the loan terms. It is a total function: any well-formed request
// with order_amount >= 0 produces an offer, never an error. Requests that
// qualify for no automatic tier come back as manual_review with zero terms.
func DecideOffer(req *models.OfferRequest) *models.Offer {
	now := time.Now().UTC()
	offer := &models.Offer{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		OrderAmount: req.OrderAmount,
		Status:      models.OfferStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, rule := range offerRules {
		if rule.matches(req) {
			rule.apply(req, offer)
			break
		}
	}

	return offer
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
