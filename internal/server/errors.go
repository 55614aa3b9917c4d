// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"

	"github.com/pdiddy/brandcraft/internal/names"
)

// ErrUnauthorized is reported when a configured API key is missing or wrong.
var ErrUnauthorized = errors.New("missing or invalid API key")

// ErrValidation wraps request validation failures.
var ErrValidation = errors.New("invalid request")

// statusFor maps handler errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, names.ErrInsufficientCombinations):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
