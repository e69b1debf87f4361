package entity

import "time"

// Asesor representa un asesor de ventas. Es referenciado por Cliente y Pedido.
type Asesor struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}
