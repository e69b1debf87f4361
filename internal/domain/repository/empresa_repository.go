package repository

import "github.com/ventasve/pedidos-api/internal/domain/entity"

// EmpresaRepository puerto de persistencia para empresas.
// Create asigna el ID autogenerado sobre la entidad recibida.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id int64) (*entity.Empresa, error)
	List() ([]*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
	Delete(id int64) error
}
