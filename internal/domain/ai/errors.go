package ai

import "errors"

// ErrMissingCredential indicates no usable API key was configured; the resolver
// routes straight to the offline estimator in that case.
var ErrMissingCredential = errors.New("ai credential missing")

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")
