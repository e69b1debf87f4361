package repository

import "github.com/ventasve/pedidos-api/internal/domain/entity"

// PedidoRepository puerto de persistencia para pedidos y sus líneas.
// La escritura del agregado (cabecera + detalles) se hace con una instancia
// atada a una transacción; los Get devuelven (nil, nil) si la fila no existe.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	List() ([]*entity.Pedido, error) // orden: created_at descendente
	Update(pedido *entity.Pedido) error
	Delete(id string) error

	CreateDetalle(detalle *entity.DetallePedido) error
	GetDetalleByID(id string) (*entity.DetallePedido, error)
	GetDetallesByPedido(pedidoID string) ([]*entity.DetallePedido, error)
	ListDetallesByPedidoIDs(pedidoIDs []string) ([]*entity.DetallePedido, error)
	ListDetalles() ([]*entity.DetallePedido, error)
	UpdateDetalle(detalle *entity.DetallePedido) error
	DeleteDetalle(id string) error
	DeleteDetallesByPedido(pedidoID string) error
}
