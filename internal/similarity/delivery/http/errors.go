package http

import (
	"errors"
	"net/http"

	"alpaca-ollama/internal/similarity"
	pkgErrors "alpaca-ollama/pkg/errors"
)

var (
	errMissingInput   = pkgErrors.NewHTTPError(http.StatusBadRequest, similarity.ErrMissingInput.Error())
	errQueryEmbedding = pkgErrors.NewHTTPError(http.StatusBadGateway, similarity.ErrQueryEmbedding.Error())
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, similarity.ErrMissingInput):
		return errMissingInput
	case errors.Is(err, similarity.ErrQueryEmbedding):
		return errQueryEmbedding
	default:
		return pkgErrors.ErrInternalServerError
	}
}
