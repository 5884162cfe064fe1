package http

import (
	"errors"
	"net/http"

	"alpaca-ollama/internal/completion"
	pkgErrors "alpaca-ollama/pkg/errors"
)

var (
	errNoCompletion        = pkgErrors.NewHTTPError(http.StatusBadGateway, completion.ErrNoCompletion.Error())
	errMalformedCompletion = pkgErrors.NewHTTPError(http.StatusBadGateway, completion.ErrMalformedCompletion.Error())
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, completion.ErrMalformedCompletion):
		return errMalformedCompletion
	case errors.Is(err, completion.ErrNoCompletion):
		return errNoCompletion
	default:
		return pkgErrors.ErrInternalServerError
	}
}
