package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/pricing"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

// DetallePedidoUseCase CRUD del recurso suelto /detalle_pedidos/. Valida las
// referencias idPedido e idProducto y deriva Precio/Total con el calculador
// de precios. Las lecturas embeben el producto y la cabecera del pedido.
type DetallePedidoUseCase struct {
	pedidoRepo   repository.PedidoRepository
	productoRepo repository.ProductoRepository
}

// NewDetallePedidoUseCase construye el caso de uso.
func NewDetallePedidoUseCase(pedidoRepo repository.PedidoRepository, productoRepo repository.ProductoRepository) *DetallePedidoUseCase {
	return &DetallePedidoUseCase{pedidoRepo: pedidoRepo, productoRepo: productoRepo}
}

// Create valida referencias, calcula el total y persiste la línea.
func (uc *DetallePedidoUseCase) Create(username string, in dto.CreateDetalleRequest) (*dto.DetalleResponse, error) {
	pedido, producto, err := uc.resolverReferencias(in.PedidoID, in.ProductoID)
	if err != nil {
		return nil, err
	}
	precio, total, err := pricing.LineTotal(in.Precio, producto.Precio, in.Cantidad)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	detalle := &entity.DetallePedido{
		ID:         uuid.New().String(),
		PedidoID:   in.PedidoID,
		ProductoID: in.ProductoID,
		Precio:     precio,
		Cantidad:   in.Cantidad,
		Total:      total,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  username,
		UpdatedBy:  username,
	}
	if err := uc.pedidoRepo.CreateDetalle(detalle); err != nil {
		return nil, err
	}
	resp := toDetalleResponse(detalle)
	resp.Producto = toProductoResponse(producto)
	resp.Pedido = toPedidoShallowResponse(pedido)
	return resp, nil
}

// GetByID obtiene una línea con producto y pedido embebidos; ErrNotFound si no existe.
func (uc *DetallePedidoUseCase) GetByID(id string) (*dto.DetalleResponse, error) {
	detalle, err := uc.pedidoRepo.GetDetalleByID(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNotFound
	}
	resp := toDetalleResponse(detalle)
	producto, err := uc.productoRepo.GetByID(detalle.ProductoID)
	if err != nil {
		return nil, err
	}
	resp.Producto = toProductoResponse(producto)
	pedido, err := uc.pedidoRepo.GetByID(detalle.PedidoID)
	if err != nil {
		return nil, err
	}
	resp.Pedido = toPedidoShallowResponse(pedido)
	return resp, nil
}

// List devuelve todas las líneas con su producto embebido, resuelto por lote.
func (uc *DetallePedidoUseCase) List() ([]dto.DetalleResponse, error) {
	list, err := uc.pedidoRepo.ListDetalles()
	if err != nil {
		return nil, err
	}
	productoIDs := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, d := range list {
		if !seen[d.ProductoID] {
			seen[d.ProductoID] = true
			productoIDs = append(productoIDs, d.ProductoID)
		}
	}
	productos, err := uc.productoRepo.ListByIDs(productoIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Producto, len(productos))
	for _, p := range productos {
		byID[p.ID] = p
	}
	items := make([]dto.DetalleResponse, 0, len(list))
	for _, d := range list {
		resp := toDetalleResponse(d)
		resp.Producto = toProductoResponse(byID[d.ProductoID])
		items = append(items, *resp)
	}
	return items, nil
}

// Update revalida referencias, recalcula el total y persiste;
// ErrNotFound si la línea no existe.
func (uc *DetallePedidoUseCase) Update(username, id string, in dto.CreateDetalleRequest) (*dto.DetalleResponse, error) {
	detalle, err := uc.pedidoRepo.GetDetalleByID(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNotFound
	}
	pedido, producto, err := uc.resolverReferencias(in.PedidoID, in.ProductoID)
	if err != nil {
		return nil, err
	}
	precio, total, err := pricing.LineTotal(in.Precio, producto.Precio, in.Cantidad)
	if err != nil {
		return nil, err
	}
	detalle.PedidoID = in.PedidoID
	detalle.ProductoID = in.ProductoID
	detalle.Precio = precio
	detalle.Cantidad = in.Cantidad
	detalle.Total = total
	detalle.UpdatedAt = time.Now()
	detalle.UpdatedBy = username
	if err := uc.pedidoRepo.UpdateDetalle(detalle); err != nil {
		return nil, err
	}
	resp := toDetalleResponse(detalle)
	resp.Producto = toProductoResponse(producto)
	resp.Pedido = toPedidoShallowResponse(pedido)
	return resp, nil
}

// Delete elimina una línea; ErrNotFound si no existe.
func (uc *DetallePedidoUseCase) Delete(id string) error {
	return uc.pedidoRepo.DeleteDetalle(id)
}

func (uc *DetallePedidoUseCase) resolverReferencias(pedidoID, productoID string) (*entity.Pedido, *entity.Producto, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, nil, err
	}
	if pedido == nil {
		return nil, nil, domain.NewDanglingReference("idPedido", pedidoID)
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, nil, err
	}
	if producto == nil {
		return nil, nil, domain.NewDanglingReference("idProducto", productoID)
	}
	return pedido, producto, nil
}

func toDetalleResponse(d *entity.DetallePedido) *dto.DetalleResponse {
	if d == nil {
		return nil
	}
	return &dto.DetalleResponse{
		ID:         d.ID,
		PedidoID:   d.PedidoID,
		ProductoID: d.ProductoID,
		Precio:     d.Precio,
		Cantidad:   d.Cantidad,
		Total:      d.Total,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
		CreatedBy:  d.CreatedBy,
		UpdatedBy:  d.UpdatedBy,
	}
}

// toPedidoShallowResponse mapea la cabecera sin relaciones (para embeber en
// una línea suelta sin arrastrar el agregado completo).
func toPedidoShallowResponse(p *entity.Pedido) *dto.PedidoResponse {
	if p == nil {
		return nil
	}
	return &dto.PedidoResponse{
		ID:          p.ID,
		FechaPedido: p.FechaPedido,
		TotalPedido: p.TotalPedido,
		Status:      p.Status,
		AsesorID:    p.AsesorID,
		ClienteID:   p.ClienteID,
		EmpresaID:   p.EmpresaID,
		Detalles:    []dto.DetalleResponse{},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
	}
}
