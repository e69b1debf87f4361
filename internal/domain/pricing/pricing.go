package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ventasve/pedidos-api/internal/domain"
)

// LineTotal calcula el precio unitario efectivo y el total de una línea.
// Si requested > 0 se usa como precio unitario; si no, cae al precio de
// catálogo. Cantidad debe ser un entero positivo.
func LineTotal(requested, catalog decimal.Decimal, cantidad int) (precio, total decimal.Decimal, err error) {
	if cantidad <= 0 {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidQuantity
	}
	precio = catalog
	if requested.GreaterThan(decimal.Zero) {
		precio = requested
	}
	total = precio.Mul(decimal.NewFromInt(int64(cantidad)))
	return precio, total, nil
}
