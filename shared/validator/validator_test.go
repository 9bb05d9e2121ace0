package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

type createCustomerPayload struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid payload",
			body: `{"name":"Rahul Sharma","email":"rahul.sharma@example.com","phone":"9876543210"}`,
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email":"rahul.sharma@example.com","phone":"9876543210"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"name":"Rahul","email":"not-an-email","phone":"9876543210"}`,
			wantErr: true,
		},
		{
			name:    "phone too short",
			body:    `{"name":"Rahul","email":"rahul@example.com","phone":"12345"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createCustomerPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				if failure.GetCode(err) != http.StatusBadRequest {
					t.Errorf("expected bad request code, got %d", failure.GetCode(err))
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("cash", "oneof=cash card upi"); err != nil {
		t.Errorf("expected cash to validate, got %v", err)
	}

	if err := validator.ValidateVar("cheque", "oneof=cash card upi"); err == nil {
		t.Error("expected cheque to fail validation")
	}
}
