package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "invoice.generate",
				Message: "invalid input",
			},
			expected: "invoice.generate: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "invoice.render",
				Message: "failed to render",
				Err:     errors.New("font not found"),
			},
			expected: "invoice.render: failed to render: font not found",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to render",
				Err:     errors.New("font not found"),
			},
			expected: "failed to render: font not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", &Error{Code: ENOTFOUND}, ENOTFOUND},
		{"wrapped domain error", fmt.Errorf("context: %w", &Error{Code: EINVALID}), EINVALID},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(&Error{Code: EINVALID, Message: "bad field"}); got != "bad field" {
		t.Errorf("ErrorMessage() = %q, want %q", got, "bad field")
	}

	// Internal details are never surfaced.
	got := ErrorMessage(&Error{Code: EINTERNAL, Message: "disk exploded"})
	if got != "An internal error occurred. Please try again later." {
		t.Errorf("ErrorMessage() leaked internal detail: %q", got)
	}
	if got := ErrorMessage(errors.New("raw")); got != "An internal error occurred. Please try again later." {
		t.Errorf("ErrorMessage() for plain error = %q", got)
	}
}

func TestErrorField(t *testing.T) {
	err := FieldError("order.validate", "buyer_name", "buyer_name is required")
	if got := ErrorField(err); got != "buyer_name" {
		t.Errorf("ErrorField() = %q, want %q", got, "buyer_name")
	}
	if got := ErrorField(errors.New("plain")); got != "" {
		t.Errorf("ErrorField() for plain error = %q, want empty", got)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, EINTERNAL, "op", "msg") != nil {
		t.Error("WrapError(nil) should be nil")
	}

	inner := errors.New("io failure")
	err := WrapError(inner, EINTERNAL, "profile.save", "could not save")

	if !errors.Is(err, inner) {
		t.Error("wrapped error lost its cause")
	}
	if !IsCode(err, EINTERNAL) {
		t.Errorf("IsCode() = false, want true")
	}
}
