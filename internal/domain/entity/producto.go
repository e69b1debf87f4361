package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo con su precio estándar.
// Precio sirve como fallback cuando una línea de pedido no trae precio propio.
type Producto struct {
	ID        string
	Nombre    string
	Precio    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}
