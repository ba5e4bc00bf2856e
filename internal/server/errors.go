package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-tailor/internal/generation"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validationErrs validator.ValidationErrors
	var apiErr *generation.APICallError
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, generation.ErrNoCandidate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
