// Package common defines shared constants and sentinel errors used across
// the giglink client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
