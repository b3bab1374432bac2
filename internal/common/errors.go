// Package common defines shared constants and sentinel errors used across
// client and server layers of Healophile. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Store-level errors. ErrCorruptedStore means the persisted records blob
	// exists but cannot be decoded; the store must never reseed over it.
	ErrCorruptedStore = errors.New("corrupted records store")

	// Intake errors.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
