// Package common defines shared constants and sentinel errors used across
// client and server layers of uuidfeed. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrCollision reports that a generated UUID already exists in storage.
	ErrCollision = errors.New("collision detected")

	// ErrInvalidRequest reports missing or malformed input.
	ErrInvalidRequest = errors.New("invalid request")

	// Feed token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
