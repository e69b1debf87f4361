package usecase

import (
	"time"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

// EmpresaUseCase casos de uso CRUD para empresas. idPedido/idRecibo se
// guardan tal cual, sin chequeo de existencia (registro denormalizado).
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create crea una empresa; el ID lo asigna la base de datos.
func (uc *EmpresaUseCase) Create(username string, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	now := time.Now()
	empresa := &entity.Empresa{
		RazonSocial: in.RazonSocial,
		IDPedido:    in.IDPedido,
		IDRecibo:    in.IDRecibo,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   username,
		UpdatedBy:   username,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// GetByID obtiene una empresa; ErrNotFound si no existe.
func (uc *EmpresaUseCase) GetByID(id int64) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	return toEmpresaResponse(empresa), nil
}

// List devuelve todas las empresas.
func (uc *EmpresaUseCase) List() ([]dto.EmpresaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return items, nil
}

// Update actualiza una empresa; ErrNotFound si no existe.
func (uc *EmpresaUseCase) Update(username string, id int64, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	empresa.RazonSocial = in.RazonSocial
	empresa.IDPedido = in.IDPedido
	empresa.IDRecibo = in.IDRecibo
	empresa.UpdatedAt = time.Now()
	empresa.UpdatedBy = username
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// Delete elimina una empresa; ErrNotFound si no existe.
func (uc *EmpresaUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:          e.ID,
		RazonSocial: e.RazonSocial,
		IDPedido:    e.IDPedido,
		IDRecibo:    e.IDRecibo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		CreatedBy:   e.CreatedBy,
		UpdatedBy:   e.UpdatedBy,
	}
}
