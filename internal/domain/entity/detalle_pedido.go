package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetallePedido representa una línea de un pedido.
// Precio es el precio unitario efectivo (override del request o precio de
// catálogo del producto) y Total = Precio × Cantidad.
type DetallePedido struct {
	ID         string
	PedidoID   string
	ProductoID string
	Precio     decimal.Decimal
	Cantidad   int
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
	UpdatedBy  string
}
