package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "summit not found",
			},
			want: "summit not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "get top",
				Cause:   errors.New("connection reset"),
			},
			want: "get top: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_UnwrapThroughFmt(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("fetch page: %w", Wrap(cause, ErrCodeUnavailable, "get top"))

	if !errors.Is(wrapped, cause) {
		t.Fatal("errors.Is should reach the original cause")
	}
	if got := GetCode(wrapped); got != ErrCodeUnavailable {
		t.Fatalf("GetCode() = %q, want %q", got, ErrCodeUnavailable)
	}
}

func TestWrap_NilError(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "noop") != nil {
		t.Fatal("Wrap(nil) must return nil")
	}
	if FromTransport("noop", nil) != nil {
		t.Fatal("FromTransport(nil) must return nil")
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCode
	}{
		{status: http.StatusUnauthorized, want: ErrCodeUnauthenticated},
		{status: http.StatusForbidden, want: ErrCodeUnauthenticated},
		{status: http.StatusNotFound, want: ErrCodeNotFound},
		{status: http.StatusBadRequest, want: ErrCodeValidation},
		{status: http.StatusGatewayTimeout, want: ErrCodeTimeout},
		{status: http.StatusServiceUnavailable, want: ErrCodeUnavailable},
		{status: http.StatusInternalServerError, want: ErrCodeInternal},
		{status: http.StatusTeapot, want: ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := FromStatus("get current user", tt.status)
			if err.Code != tt.want {
				t.Errorf("FromStatus(%d).Code = %q, want %q", tt.status, err.Code, tt.want)
			}
			if err.Status != tt.status {
				t.Errorf("FromStatus(%d).Status = %d", tt.status, err.Status)
			}
		})
	}

	if !IsUnauthenticated(FromStatus("me", http.StatusUnauthorized)) {
		t.Error("IsUnauthenticated should match a 401 mapping")
	}
	if !IsNotFound(FromStatus("summit", http.StatusNotFound)) {
		t.Error("IsNotFound should match a 404 mapping")
	}
}

func TestFromTransport(t *testing.T) {
	if got := FromTransport("me", context.Canceled); !IsCanceled(got) {
		t.Errorf("context.Canceled should map to canceled, got %q", got.Code)
	}
	if got := FromTransport("me", fmt.Errorf("dial: %w", context.DeadlineExceeded)); got.Code != ErrCodeTimeout {
		t.Errorf("deadline should map to timeout, got %q", got.Code)
	}
	if got := FromTransport("me", errors.New("connection refused")); got.Code != ErrCodeUnavailable {
		t.Errorf("generic transport failure should map to unavailable, got %q", got.Code)
	}
}
