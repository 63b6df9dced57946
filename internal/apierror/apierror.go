// Package apierror provides the standardized error envelopes for the API.
// All 4xx/5xx responses go through this package so clients see a consistent
// shape and internal details (upstream errors, stack traces) never leak.
package apierror

import "github.com/chobyoungjae/interface/internal/model"

// APIError is the canonical envelope for single-message failures.
type APIError struct {
	Detail string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationErrors wraps the collected field errors of one submission.
// Validation never fails fast, so the list carries every failure at once.
type ValidationErrors struct {
	Errors []model.ValidationError `json:"errors"`
}

func NewValidation(errs []model.ValidationError) *ValidationErrors {
	return &ValidationErrors{Errors: errs}
}

// RateLimited reports a login lockout with the remaining wait in seconds.
type RateLimited struct {
	Detail     string `json:"error"`
	RetryAfter int    `json:"retryAfterSeconds"`
}

func NewRateLimited(msg string, retryAfterSeconds int) *RateLimited {
	return &RateLimited{Detail: msg, RetryAfter: retryAfterSeconds}
}
