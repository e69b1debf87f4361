package repository

import "github.com/ventasve/pedidos-api/internal/domain/entity"

// AsesorRepository puerto de persistencia para asesores.
// Los Get devuelven (nil, nil) cuando la fila no existe.
type AsesorRepository interface {
	Create(asesor *entity.Asesor) error
	GetByID(id string) (*entity.Asesor, error)
	ListByIDs(ids []string) ([]*entity.Asesor, error)
	List() ([]*entity.Asesor, error)
	Update(asesor *entity.Asesor) error
	Delete(id string) error
}
