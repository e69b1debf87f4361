package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventasve/pedidos-api/internal/domain"
)

func TestLineTotal_FallbackAPrecioCatalogo(t *testing.T) {
	// precio solicitado 0 -> se usa el precio de catálogo
	precio, total, err := LineTotal(decimal.Zero, decimal.NewFromInt(10), 3)
	require.NoError(t, err)

	assert.True(t, precio.Equal(decimal.NewFromInt(10)), "precio efectivo debe ser el de catálogo")
	assert.True(t, total.Equal(decimal.NewFromInt(30)), "total = 10 * 3")
}

func TestLineTotal_OverrideGanaAlCatalogo(t *testing.T) {
	precio, total, err := LineTotal(decimal.NewFromInt(12), decimal.NewFromInt(10), 2)
	require.NoError(t, err)

	assert.True(t, precio.Equal(decimal.NewFromInt(12)), "el override debe ganar al catálogo")
	assert.True(t, total.Equal(decimal.NewFromInt(24)), "total = 12 * 2")
}

func TestLineTotal_CantidadInvalida(t *testing.T) {
	cases := []struct {
		name     string
		cantidad int
	}{
		{"cero", 0},
		{"negativa", -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LineTotal(decimal.NewFromInt(5), decimal.NewFromInt(10), tc.cantidad)
			assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		})
	}
}

func TestLineTotal_PrecioNegativoNoEsOverride(t *testing.T) {
	// Un precio negativo no supera el umbral "> 0" y cae al catálogo.
	precio, _, err := LineTotal(decimal.NewFromInt(-1), decimal.NewFromFloat(2.5), 4)
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.NewFromFloat(2.5)))
}
