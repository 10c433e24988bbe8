package validator_test

import (
	"strings"
	"testing"

	"boatsandjoy/shared/validator"

	"github.com/stretchr/testify/assert"
)

type createRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	SlotIDs      string `json:"slot_ids"      validate:"required,slotids"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid request",
			body: `{"customer_name": "Ada", "slot_ids": "1,2,3"}`,
		},
		{
			name:    "malformed json",
			body:    `{"customer_name": `,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"slot_ids": "1"}`,
			wantErr: true,
		},
		{
			name:    "invalid slot ids",
			body:    `{"customer_name": "Ada", "slot_ids": "1,0"}`,
			wantErr: true,
		},
		{
			name:    "duplicate slot ids",
			body:    `{"customer_name": "Ada", "slot_ids": "2,2"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("a@b.com", "required,email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "required,email"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
