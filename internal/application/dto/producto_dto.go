package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest body para POST/PUT /productos/.
type CreateProductoRequest struct {
	Nombre string          `json:"Producto"`
	Precio decimal.Decimal `json:"Precio"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID        string          `json:"idProducto"`
	Nombre    string          `json:"Producto"`
	Precio    decimal.Decimal `json:"Precio"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	CreatedBy string          `json:"createdBy"`
	UpdatedBy string          `json:"updatedBy"`
}
