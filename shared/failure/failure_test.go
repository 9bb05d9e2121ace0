package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"frontdesk/shared/failure"
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

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failure.BadRequest(tt.input)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}

				return
			}

			if got.Error() != tt.expected.Error() {
				t.Errorf("expected message %s, got %s", tt.expected.Error(), got.Error())
			}

			if failure.GetCode(got) != http.StatusBadRequest {
				t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(got))
			}
		})
	}
}

func TestRoomUnavailable(t *testing.T) {
	err := failure.RoomUnavailable("RM101", "maintenance")

	if failure.GetCode(err) != http.StatusConflict {
		t.Errorf("expected code %d, got %d", http.StatusConflict, failure.GetCode(err))
	}

	expected := "room RM101 is not available (current status: maintenance)"
	if err.Error() != expected {
		t.Errorf("expected message %s, got %s", expected, err.Error())
	}
}

func TestInvalidTransition(t *testing.T) {
	err := failure.InvalidTransition("booking is already cancelled")

	if failure.GetCode(err) != http.StatusConflict {
		t.Errorf("expected code %d, got %d", http.StatusConflict, failure.GetCode(err))
	}

	if err.Error() != "booking is already cancelled" {
		t.Errorf("unexpected message %s", err.Error())
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{
			name:     "with error",
			input:    errors.New("connection reset"),
			expected: "storage write failed: connection reset",
		},
		{
			name:  "with nil error",
			input: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failure.WriteError(tt.input)
			if tt.input == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}

				return
			}

			if got.Error() != tt.expected {
				t.Errorf("expected message %s, got %s", tt.expected, got.Error())
			}

			if failure.GetCode(got) != http.StatusInternalServerError {
				t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(got))
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    failure.NotFound("room not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("creating booking: %w", failure.Conflict("room taken")),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error",
			input:    errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}
