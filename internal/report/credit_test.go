package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditValue(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		rate    float64
		wantErr error
	}{
		{"valid market inputs", 85.50, 5.10, nil},
		{"zero price is allowed", 0, 1, nil},
		{"negative price", -1, 1, ErrNegativePrice},
		{"zero exchange rate", 50, 0, ErrNonPositiveRate},
		{"negative exchange rate", 50, -2, ErrNonPositiveRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreditValue(100, tt.price, tt.rate, "USD", "BRL")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCreditValueConversion(t *testing.T) {
	c, err := NewCreditValue(12.5, 85.50, 5.10, "USD", "BRL")
	require.NoError(t, err)

	assert.InDelta(t, 12.5*85.50, c.QuoteValue(), 1e-9)
	assert.InDelta(t, 12.5*85.50*5.10, c.DisplayValue(), 1e-9)

	t.Run("unit rate keeps currencies equal", func(t *testing.T) {
		same, err := NewCreditValue(12.5, 85.50, 1, "USD", "USD")
		require.NoError(t, err)
		assert.Equal(t, same.QuoteValue(), same.DisplayValue())
	})

	t.Run("negative avoided emissions yield negative value", func(t *testing.T) {
		neg, err := NewCreditValue(-3, 85.50, 1, "USD", "USD")
		require.NoError(t, err)
		assert.Negative(t, neg.QuoteValue())
	})
}

func TestFormatter(t *testing.T) {
	t.Run("en-US grouping", func(t *testing.T) {
		f := NewFormatter("en-US")
		assert.Equal(t, "1,234,567.89", f.Decimal(1234567.891, 2))
		assert.Equal(t, "USD 1,068.75", f.Money("USD", 1068.75))
	})

	t.Run("pt-BR grouping", func(t *testing.T) {
		f := NewFormatter("pt-BR")
		assert.Equal(t, "1.234.567,89", f.Decimal(1234567.891, 2))
	})

	t.Run("unparseable locale falls back to en-US", func(t *testing.T) {
		f := NewFormatter("not a locale")
		assert.Equal(t, "12.30", f.Decimal(12.3, 2))
	})
}

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
