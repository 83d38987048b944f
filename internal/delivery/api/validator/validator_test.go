package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	LocationID string   `json:"location_id" validate:"required,uuid"`
	Status     string   `json:"status" validate:"omitempty,oneof=active inactive blocked"`
	Email      string   `json:"email" validate:"omitempty,email"`
	Stamps     int      `json:"stamps" validate:"min=1,max=5"`
	Amount     *float64 `json:"amount" validate:"omitempty,gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  sampleRequest{LocationID: "0b8f2d8e-3f6a-4a52-9f1b-2f6a1c9d7e10", Stamps: 3},
		},
		{
			name:    "missing location",
			req:     sampleRequest{Stamps: 3},
			wantErr: "location_id is required",
		},
		{
			name:    "several failures are joined",
			req:     sampleRequest{LocationID: "nope", Status: "gone", Stamps: 9},
			wantErr: "location_id must be a valid UUID; status must be one of [active inactive blocked]; stamps must be at most 5",
		},
		{
			name:    "bad email",
			req:     sampleRequest{LocationID: "0b8f2d8e-3f6a-4a52-9f1b-2f6a1c9d7e10", Email: "x", Stamps: 1},
			wantErr: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
