package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido representa la cabecera de un pedido. Es dueño exclusivo de su
// colección de DetallePedido: en un update la colección se reemplaza completa
// y en un delete se elimina junto con la cabecera.
//
// TotalPedido viene del cliente tal cual; el servidor no lo reconcilia contra
// la suma de los totales de línea.
type Pedido struct {
	ID          string
	EmpresaID   *int64 // opcional; referencia a Empresa cuando se usa
	FechaPedido time.Time
	TotalPedido decimal.Decimal
	Status      string // texto libre
	AsesorID    string
	ClienteID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
	UpdatedBy   string
}
