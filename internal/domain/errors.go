package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPoolNotFound     = errors.New("resource pool not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrEntryNotFound    = errors.New("booking not found")
	ErrMemberNotFound   = errors.New("member not found")
)

var (
	ErrResourceUnavailable  = errors.New("resource is not available")
	ErrAlreadyReserved      = fmt.Errorf("%w: already reserved", ErrResourceUnavailable)
	ErrNotReserved          = errors.New("resource is not reserved by this booking")
	ErrResourceInUse        = errors.New("resource is in use")
	ErrDuplicateActiveEntry = errors.New("requester already holds an active booking")
	ErrCapacityExceeded     = errors.New("registration limit reached")
	ErrPastBooking          = errors.New("booking date has already passed")
	ErrAlreadyStarted       = fmt.Errorf("%w: booking has already started", ErrResourceUnavailable)
	ErrSlotOverlap          = fmt.Errorf("%w: slot overlaps another slot of the pool", ErrValidation)
	ErrInvalidTransition    = errors.New("invalid booking status transition")
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrChallengeNotFound = errors.New("challenge not found or expired")
	ErrInvalidCode       = errors.New("invalid verification code")
	ErrTooManyAttempts   = errors.New("too many verification attempts")
	ErrPhoneTaken        = errors.New("phone is already registered")
	ErrNoDeliveryChannel = fmt.Errorf("%w: member has no chat to receive a login code", ErrValidation)
)

var (
	ErrValidation = errors.New("validation error")
)

// Code returns the stable client-facing code for a domain error.
// Errors outside the domain taxonomy map to INTERNAL.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrResourceUnavailable):
		return "RESOURCE_UNAVAILABLE"
	case errors.Is(err, ErrDuplicateActiveEntry):
		return "DUPLICATE_ACTIVE_ENTRY"
	case errors.Is(err, ErrCapacityExceeded):
		return "CAPACITY_EXCEEDED"
	case errors.Is(err, ErrPastBooking):
		return "PAST_BOOKING"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, ErrNotReserved):
		return "NOT_RESERVED"
	case errors.Is(err, ErrResourceInUse):
		return "RESOURCE_IN_USE"
	case errors.Is(err, ErrPoolNotFound),
		errors.Is(err, ErrResourceNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrEntryNotFound),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrChallengeNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCode):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrTooManyAttempts):
		return "TOO_MANY_ATTEMPTS"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrPhoneTaken):
		return "VALIDATION"
	default:
		return "INTERNAL"
	}
}
