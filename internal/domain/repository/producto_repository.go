package repository

import "github.com/ventasve/pedidos-api/internal/domain/entity"

// ProductoRepository puerto de persistencia para productos del catálogo.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	ListByIDs(ids []string) ([]*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
}
