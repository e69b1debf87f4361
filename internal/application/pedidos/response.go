package pedidos

import (
	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
)

// armarRespuesta mapea el agregado completo: cabecera, asesor, cliente y
// cada línea con su producto. Un pedido sin líneas devuelve detalles como
// arreglo vacío, nunca null.
func (uc *PedidoUseCase) armarRespuesta(
	p *entity.Pedido,
	detalles []*entity.DetallePedido,
	asesor *entity.Asesor,
	cliente *entity.Cliente,
	productos map[string]*entity.Producto,
) *dto.PedidoResponse {
	items := make([]dto.DetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		resp := toDetalleResponse(d)
		resp.Producto = toProductoResponse(productos[d.ProductoID])
		items = append(items, *resp)
	}
	return &dto.PedidoResponse{
		ID:          p.ID,
		FechaPedido: p.FechaPedido,
		TotalPedido: p.TotalPedido,
		Status:      p.Status,
		AsesorID:    p.AsesorID,
		ClienteID:   p.ClienteID,
		EmpresaID:   p.EmpresaID,
		Asesor:      toAsesorResponse(asesor),
		Cliente:     toClienteResponse(cliente),
		Detalles:    items,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
	}
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

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		CreatedBy: p.CreatedBy,
		UpdatedBy: p.UpdatedBy,
	}
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
