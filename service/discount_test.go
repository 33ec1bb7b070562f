package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountForQuantity(t *testing.T) {
	tests := []struct {
		qty     int
		rate    float64
		wantErr bool
	}{
		{1, 0, false},
		{3, 0, false},
		{4, 0.10, false},
		{9, 0.10, false},
		{10, 0.20, false},
		{20, 0.20, false},
		{21, 0, true},
		{100, 0, true},
	}
	for _, tt := range tests {
		rate, err := DiscountForQuantity(tt.qty)
		if tt.wantErr {
			require.Error(t, err, "qty=%d", tt.qty)
			assert.ErrorIs(t, err, ErrQuantityAboveLimit)
		} else {
			require.NoError(t, err, "qty=%d", tt.qty)
		}
		assert.Equal(t, tt.rate, rate, "qty=%d", tt.qty)
	}
}

func TestDiscountForQuantityIsDeterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		rate, err := DiscountForQuantity(7)
		require.NoError(t, err)
		assert.Equal(t, 0.10, rate)
	}
}
