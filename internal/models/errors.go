// Package models defines the request, entity, and error types for the
// Ruua decision service.
package models

import "errors"

// Common errors
var (
	// ErrOfferNotFound means a payment referenced an unknown offer.
	ErrOfferNotFound = errors.New("offer not found")

	// ErrOfferNotPayable means the offer requires manual review and has no
	// payable amount.
	ErrOfferNotPayable = errors.New("offer requires manual review and cannot be paid")

	// ErrOfferNotPending means the offer already reached a terminal state;
	// the attempt is rejected without changing it.
	ErrOfferNotPending = errors.New("offer is not pending payment")
)
