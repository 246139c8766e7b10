package kernel_test

import (
	"testing"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      kernel.ID
		wantErr bool
	}{
		{"positive", 42, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate("orderID")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "orderID")
		})
	}
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "1234", kernel.ID(1234).String())
	assert.Equal(t, int64(1234), kernel.ID(1234).Int64())
}
