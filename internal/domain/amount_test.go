package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   decimal.Decimal
		wantErr error
	}{
		{
			name:    "positive",
			value:   decimal.NewFromInt(10),
			wantErr: nil,
		},
		{
			name:    "small fraction",
			value:   decimal.RequireFromString("0.0001"),
			wantErr: nil,
		},
		{
			name:    "zero",
			value:   decimal.Zero,
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative",
			value:   decimal.NewFromInt(-1),
			wantErr: ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := NewAmount(tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, amount.Value().Equal(tt.value))
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	t.Run("preserves input precision", func(t *testing.T) {
		t.Parallel()

		amount, err := ParseAmount("12.3456")

		require.NoError(t, err)
		assert.Equal(t, "12.3456", amount.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAmount("ten")
		assert.Error(t, err)
	})

	t.Run("rejects negative", func(t *testing.T) {
		t.Parallel()

		_, err := ParseAmount("-1.0")
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})
}
