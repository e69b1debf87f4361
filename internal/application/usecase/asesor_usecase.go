package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

// AsesorUseCase casos de uso CRUD para asesores.
type AsesorUseCase struct {
	repo repository.AsesorRepository
}

// NewAsesorUseCase construye el caso de uso.
func NewAsesorUseCase(repo repository.AsesorRepository) *AsesorUseCase {
	return &AsesorUseCase{repo: repo}
}

// Create crea un asesor estampando los campos de auditoría con el username autenticado.
func (uc *AsesorUseCase) Create(username string, in dto.CreateAsesorRequest) (*dto.AsesorResponse, error) {
	now := time.Now()
	asesor := &entity.Asesor{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: username,
		UpdatedBy: username,
	}
	if err := uc.repo.Create(asesor); err != nil {
		return nil, err
	}
	return toAsesorResponse(asesor), nil
}

// GetByID obtiene un asesor; ErrNotFound si no existe.
func (uc *AsesorUseCase) GetByID(id string) (*dto.AsesorResponse, error) {
	asesor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, domain.ErrNotFound
	}
	return toAsesorResponse(asesor), nil
}

// List devuelve todos los asesores.
func (uc *AsesorUseCase) List() ([]dto.AsesorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AsesorResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAsesorResponse(a))
	}
	return items, nil
}

// Update actualiza un asesor; ErrNotFound si no existe.
func (uc *AsesorUseCase) Update(username, id string, in dto.CreateAsesorRequest) (*dto.AsesorResponse, error) {
	asesor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, domain.ErrNotFound
	}
	asesor.Nombre = in.Nombre
	asesor.UpdatedAt = time.Now()
	asesor.UpdatedBy = username
	if err := uc.repo.Update(asesor); err != nil {
		return nil, err
	}
	return toAsesorResponse(asesor), nil
}

// Delete elimina un asesor; ErrNotFound si no existe.
func (uc *AsesorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAsesorResponse(a *entity.Asesor) *dto.AsesorResponse {
	if a == nil {
		return nil
	}
	return &dto.AsesorResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
	}
}
