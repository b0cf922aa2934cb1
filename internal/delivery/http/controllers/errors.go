package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/domain"
)

// errorStatus maps a service error to an HTTP status and API error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrWalletNotFound),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, h.ErrCodeNotFound
	case errors.Is(err, domain.ErrTicketNotAvailable):
		return http.StatusConflict, h.ErrCodeConflict
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrPriceCapExceeded),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSupply),
		errors.Is(err, domain.ErrInvalidEventName):
		return http.StatusUnprocessableEntity, h.ErrCodeUnprocessable
	case errors.Is(err, domain.ErrNotTicketOwner),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, h.ErrCodeForbidden
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, h.ErrCodeUnauthorized
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, h.ErrCodeBadRequest
	default:
		return http.StatusInternalServerError, h.ErrCodeInternalError
	}
}

// writeServiceError writes err as an API error, logging it when it is not a known rejection.
// data, when non-nil, is returned alongside the error.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, data any) {
	status, code := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		message = "internal server error"
	}
	if data != nil {
		h.WriteJSONErrorWithData(w, status, code, message, data)
		return
	}
	h.WriteJSONError(w, status, code, message)
}
