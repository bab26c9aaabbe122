// Package auth provides token issuance/validation and password hashing.
package auth

import "errors"

// Authentication errors.
var (
	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrUserNotFound is returned by login when no client has the given
	// email.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword is returned by login when the password does not
	// match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
)
