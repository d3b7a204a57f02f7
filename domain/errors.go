package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInternal            = errors.New("internal error")
)

// Error kinds exposed to callers.
const (
	KindNotFound            = "not_found"
	KindForbidden           = "forbidden"
	KindConflict            = "conflict"
	KindValidation          = "validation"
	KindRateLimited         = "rate_limited"
	KindUpstreamUnavailable = "upstream_unavailable"
	KindUnauthorized        = "unauthorized"
	KindInternal            = "internal"
)

// RetryAfterError is returned when a guess lands inside the cooldown window.
type RetryAfterError struct {
	Wait time.Duration
}

func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("%s: wait %d seconds before guessing again", ErrRateLimited, e.Seconds())
}

func (e *RetryAfterError) Unwrap() error {
	return ErrRateLimited
}

// Seconds is the remaining wait rounded up to a whole second, never below one.
func (e *RetryAfterError) Seconds() int {
	secs := int((e.Wait + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrUpstreamUnavailable):
		return KindUpstreamUnavailable
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}
