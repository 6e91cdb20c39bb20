package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableParsesEntries(t *testing.T) {
	table := NewTable([]Entry{
		{Product: 1, Price: "10.50"},
		{Product: 2, Price: "0.00"},
		{Product: 3, Price: "abc"}, // inválido: ignorado
	})

	price, err := table.Resolve(1)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("10.50")))

	// preço zero cadastrado é distinto de não cadastrado
	price, err = table.Resolve(2)
	require.NoError(t, err)
	assert.True(t, price.IsZero())

	_, err = table.Resolve(3)
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
}

func TestResolveNotConfigured(t *testing.T) {
	table := NewTable(nil)

	price, err := table.Resolve(99)
	assert.ErrorIs(t, err, ErrPriceNotConfigured)
	assert.True(t, price.IsZero())
}
