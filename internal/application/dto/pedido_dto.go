package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoDetalleRequest línea embebida en el pedido. Precio 0 significa
// "usar el precio de catálogo del producto".
type PedidoDetalleRequest struct {
	ProductoID string          `json:"idProducto"`
	Precio     decimal.Decimal `json:"Precio"`
	Cantidad   int             `json:"Cantidad"`
}

// CreatePedidoRequest body para POST /pedidos/. totalPedido viene del cliente
// y se persiste tal cual.
type CreatePedidoRequest struct {
	FechaPedido time.Time              `json:"fechaPedido"`
	TotalPedido decimal.Decimal        `json:"totalPedido"`
	Status      string                 `json:"Status"`
	AsesorID    string                 `json:"idAsesor"`
	ClienteID   string                 `json:"idCliente"`
	EmpresaID   *int64                 `json:"idEmpresa,omitempty"`
	Detalles    []PedidoDetalleRequest `json:"detalles"`
}

// UpdatePedidoRequest body para PUT /pedidos/:id. Las FKs son punteros para
// distinguir "omitido" (conservar) de "presente"; detalles reemplaza SIEMPRE
// el conjunto completo de líneas (borrado e inserción, sin merge).
type UpdatePedidoRequest struct {
	FechaPedido time.Time              `json:"fechaPedido"`
	TotalPedido decimal.Decimal        `json:"totalPedido"`
	Status      string                 `json:"Status"`
	AsesorID    *string                `json:"idAsesor"`
	ClienteID   *string                `json:"idCliente"`
	EmpresaID   *int64                 `json:"idEmpresa"`
	Detalles    []PedidoDetalleRequest `json:"detalles"`
}

// CreateDetalleRequest body para POST/PUT /detalle_pedidos/ (recurso suelto).
type CreateDetalleRequest struct {
	PedidoID   string          `json:"idPedido"`
	ProductoID string          `json:"idProducto"`
	Precio     decimal.Decimal `json:"Precio"`
	Cantidad   int             `json:"Cantidad"`
}

// DetalleResponse línea de pedido en respuestas, con su producto embebido.
// Pedido se embebe (sin detalles) solo en el recurso suelto /detalle_pedidos/.
type DetalleResponse struct {
	ID         string            `json:"id"`
	PedidoID   string            `json:"idPedido"`
	ProductoID string            `json:"idProducto"`
	Precio     decimal.Decimal   `json:"Precio"`
	Cantidad   int               `json:"Cantidad"`
	Total      decimal.Decimal   `json:"Total"`
	Producto   *ProductoResponse `json:"producto,omitempty"`
	Pedido     *PedidoResponse   `json:"pedido,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	CreatedBy  string            `json:"createdBy"`
	UpdatedBy  string            `json:"updatedBy"`
}

// PedidoResponse pedido con asesor, cliente y detalles embebidos.
type PedidoResponse struct {
	ID          string            `json:"idPedido"`
	FechaPedido time.Time         `json:"fechaPedido"`
	TotalPedido decimal.Decimal   `json:"totalPedido"`
	Status      string            `json:"Status"`
	AsesorID    string            `json:"idAsesor"`
	ClienteID   string            `json:"idCliente"`
	EmpresaID   *int64            `json:"idEmpresa,omitempty"`
	Asesor      *AsesorResponse   `json:"asesor,omitempty"`
	Cliente     *ClienteResponse  `json:"cliente,omitempty"`
	Detalles    []DetalleResponse `json:"detalles"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	CreatedBy   string            `json:"createdBy"`
	UpdatedBy   string            `json:"updatedBy"`
}
