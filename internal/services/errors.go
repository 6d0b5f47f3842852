package services

import "errors"

// Domain errors surfaced to handlers. Store-layer failures are wrapped
// and never allowed to crash a request handler.
var (
	ErrDuplicateRegistration = errors.New("coupon already registered for this cpf and purchase number")
	ErrSequenceUnavailable   = errors.New("coupon sequence is temporarily unavailable")
	ErrEmptyPool             = errors.New("no coupons registered to draw from")
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrScratchNotFound       = errors.New("scratch coupon not found")
	ErrAlreadyRevealed       = errors.New("scratch coupon was already revealed")
	ErrWinnerNotFound        = errors.New("winner record not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
