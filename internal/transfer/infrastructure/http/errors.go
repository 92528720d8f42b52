package http

import (
	"errors"
	"net/http"

	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
)

const internalErrorMessage = "internal server error"

// statusFor maps an engine error to a response status and a message that is
// safe to hand to the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, &domain.InvalidAmountError{}),
		errors.Is(err, &domain.UnknownAccountError{}),
		errors.Is(err, &domain.InsufficientFundsError{}),
		errors.Is(err, &domain.DuplicateAccountError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, &domain.LockContentionError{}):
		return http.StatusConflict, err.Error()
	case errors.Is(err, &domain.CancelledError{}):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}
