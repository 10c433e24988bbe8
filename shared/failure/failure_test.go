package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"boatsandjoy/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("price must be positive"),
			code:    http.StatusBadRequest,
			message: "price must be positive",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("slot already booked"),
			code:    http.StatusConflict,
			message: "slot already booked",
		},
		{
			name:    "BadGateway",
			err:     failure.BadGateway("payment provider unavailable"),
			code:    http.StatusBadGateway,
			message: "payment provider unavailable",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected a *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, fail.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.NotFound("booking")); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}

	wrapped := fmt.Errorf("handling request: %w", failure.Conflict("slot already booked"))
	if code := failure.GetCode(wrapped); code != http.StatusConflict {
		t.Errorf("expected 409 for wrapped failure, got %d", code)
	}

	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain error, got %d", code)
	}
}

func TestIs(t *testing.T) {
	if !failure.Is(failure.NotFound("boat"), http.StatusNotFound) {
		t.Error("expected Is to report 404")
	}

	if failure.Is(failure.NotFound("boat"), http.StatusConflict) {
		t.Error("did not expect Is to report 409")
	}
}
