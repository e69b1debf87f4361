package repository

import "github.com/ventasve/pedidos-api/internal/domain/entity"

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	ListByIDs(ids []string) ([]*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
