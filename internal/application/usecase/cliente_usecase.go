package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes. Las lecturas embeben el
// asesor dueño; el create/update valida la referencia idAsesor antes de escribir.
type ClienteUseCase struct {
	repo       repository.ClienteRepository
	asesorRepo repository.AsesorRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, asesorRepo repository.AsesorRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, asesorRepo: asesorRepo}
}

// Create valida que idAsesor exista y persiste el cliente. Si la referencia
// cuelga no se escribe nada.
func (uc *ClienteUseCase) Create(username string, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	asesor, err := uc.asesorRepo.GetByID(in.AsesorID)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, domain.NewDanglingReference("idAsesor", in.AsesorID)
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Rif:       in.Rif,
		Nombre:    in.Nombre,
		Zona:      in.Zona,
		AsesorID:  in.AsesorID,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: username,
		UpdatedBy: username,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	resp := toClienteResponse(cliente)
	resp.Asesor = toAsesorResponse(asesor)
	return resp, nil
}

// GetByID obtiene un cliente con su asesor embebido; ErrNotFound si no existe.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClienteResponse(cliente)
	asesor, err := uc.asesorRepo.GetByID(cliente.AsesorID)
	if err != nil {
		return nil, err
	}
	resp.Asesor = toAsesorResponse(asesor)
	return resp, nil
}

// List devuelve todos los clientes con su asesor embebido. Los asesores se
// resuelven en una sola consulta por lote para evitar N+1.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	asesorIDs := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, c := range list {
		if !seen[c.AsesorID] {
			seen[c.AsesorID] = true
			asesorIDs = append(asesorIDs, c.AsesorID)
		}
	}
	asesores, err := uc.asesorRepo.ListByIDs(asesorIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Asesor, len(asesores))
	for _, a := range asesores {
		byID[a.ID] = a
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		resp := toClienteResponse(c)
		resp.Asesor = toAsesorResponse(byID[c.AsesorID])
		items = append(items, *resp)
	}
	return items, nil
}

// Update revalida idAsesor solo si viene en el payload; ErrNotFound si el
// cliente no existe.
func (uc *ClienteUseCase) Update(username, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if in.AsesorID != nil {
		asesor, err := uc.asesorRepo.GetByID(*in.AsesorID)
		if err != nil {
			return nil, err
		}
		if asesor == nil {
			return nil, domain.NewDanglingReference("idAsesor", *in.AsesorID)
		}
		cliente.AsesorID = *in.AsesorID
	}
	cliente.Rif = in.Rif
	cliente.Nombre = in.Nombre
	cliente.Zona = in.Zona
	cliente.UpdatedAt = time.Now()
	cliente.UpdatedBy = username
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	resp := toClienteResponse(cliente)
	asesor, err := uc.asesorRepo.GetByID(cliente.AsesorID)
	if err != nil {
		return nil, err
	}
	resp.Asesor = toAsesorResponse(asesor)
	return resp, nil
}

// Delete elimina un cliente; ErrNotFound si no existe.
func (uc *ClienteUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Rif:       c.Rif,
		Nombre:    c.Nombre,
		Zona:      c.Zona,
		AsesorID:  c.AsesorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
	}
}
