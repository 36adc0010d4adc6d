package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// FromStatus maps a non-2xx API response status to an AppError.
// The op names the call for the message, e.g. "get current user".
func FromStatus(op string, status int) *AppError {
	var code ErrorCode
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = ErrCodeUnauthenticated
	case status == http.StatusNotFound:
		code = ErrCodeNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		code = ErrCodeValidation
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		code = ErrCodeTimeout
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable:
		code = ErrCodeUnavailable
	default:
		code = ErrCodeInternal
	}
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf("%s: unexpected status %d", op, status),
		Status:  status,
	}
}

// FromTransport classifies an error returned by http.Client.Do.
func FromTransport(op string, err error) *AppError {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return Wrap(err, ErrCodeCanceled, op)
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, op)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Wrap(err, ErrCodeTimeout, op)
	}

	return Wrap(err, ErrCodeUnavailable, op)
}
