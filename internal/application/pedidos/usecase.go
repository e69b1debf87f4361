package pedidos

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/pricing"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
	"github.com/ventasve/pedidos-api/pkg/logger"
)

// PedidoUseCase escribe el agregado pedido + detalles. Toda validación de
// referencias ocurre antes de abrir la transacción; la escritura multi-fila
// (create, reemplazo destructivo en update, delete con limpieza de líneas)
// corre completa dentro de una sola tx.
type PedidoUseCase struct {
	txRunner     TxRunner
	pedidoRepo   repository.PedidoRepository
	asesorRepo   repository.AsesorRepository
	clienteRepo  repository.ClienteRepository
	empresaRepo  repository.EmpresaRepository
	productoRepo repository.ProductoRepository
	log          *logger.Logger
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	asesorRepo repository.AsesorRepository,
	clienteRepo repository.ClienteRepository,
	empresaRepo repository.EmpresaRepository,
	productoRepo repository.ProductoRepository,
	log *logger.Logger,
) *PedidoUseCase {
	return &PedidoUseCase{
		txRunner:     txRunner,
		pedidoRepo:   pedidoRepo,
		asesorRepo:   asesorRepo,
		clienteRepo:  clienteRepo,
		empresaRepo:  empresaRepo,
		productoRepo: productoRepo,
		log:          log,
	}
}

// Create valida asesor/cliente/empresa y cada producto de las líneas, calcula
// los totales de línea y persiste cabecera + detalles en una transacción.
// totalPedido se guarda tal cual llegó del cliente.
func (uc *PedidoUseCase) Create(ctx context.Context, username string, in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	asesor, cliente, err := uc.validarCabecera(in.AsesorID, in.ClienteID, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	productos, err := uc.resolverProductos(in.Detalles)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:          uuid.New().String(),
		EmpresaID:   in.EmpresaID,
		FechaPedido: in.FechaPedido,
		TotalPedido: in.TotalPedido,
		Status:      in.Status,
		AsesorID:    in.AsesorID,
		ClienteID:   in.ClienteID,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   username,
		UpdatedBy:   username,
	}
	detalles, err := uc.construirDetalles(pedido.ID, username, now, in.Detalles, productos)
	if err != nil {
		return nil, err
	}
	uc.advertirTotalDivergente(pedido, detalles)

	err = uc.txRunner.Run(ctx, func(pedidoRepo repository.PedidoRepository) error {
		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}
		for _, d := range detalles {
			if err := pedidoRepo.CreateDetalle(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.armarRespuesta(pedido, detalles, asesor, cliente, productos), nil
}

// Update confirma que el pedido existe, revalida las FKs presentes en el
// payload y reemplaza el conjunto completo de líneas: se borran todas las
// existentes y se insertan las del request, en la misma transacción que la
// cabecera. Una línea omitida en el request desaparece.
func (uc *PedidoUseCase) Update(ctx context.Context, username, id string, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}

	if in.AsesorID != nil {
		pedido.AsesorID = *in.AsesorID
	}
	if in.ClienteID != nil {
		pedido.ClienteID = *in.ClienteID
	}
	if in.EmpresaID != nil {
		pedido.EmpresaID = in.EmpresaID
	}
	asesor, cliente, err := uc.validarCabecera(pedido.AsesorID, pedido.ClienteID, in.EmpresaID)
	if err != nil {
		return nil, err
	}
	productos, err := uc.resolverProductos(in.Detalles)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pedido.FechaPedido = in.FechaPedido
	pedido.TotalPedido = in.TotalPedido
	pedido.Status = in.Status
	pedido.UpdatedAt = now
	pedido.UpdatedBy = username

	detalles, err := uc.construirDetalles(pedido.ID, username, now, in.Detalles, productos)
	if err != nil {
		return nil, err
	}
	uc.advertirTotalDivergente(pedido, detalles)

	err = uc.txRunner.Run(ctx, func(pedidoRepo repository.PedidoRepository) error {
		if err := pedidoRepo.Update(pedido); err != nil {
			return err
		}
		if err := pedidoRepo.DeleteDetallesByPedido(pedido.ID); err != nil {
			return err
		}
		for _, d := range detalles {
			if err := pedidoRepo.CreateDetalle(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.armarRespuesta(pedido, detalles, asesor, cliente, productos), nil
}

// Delete elimina el pedido y todas sus líneas en una transacción; nunca
// quedan detalles huérfanos. ErrNotFound si el pedido no existe.
func (uc *PedidoUseCase) Delete(ctx context.Context, id string) error {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(pedidoRepo repository.PedidoRepository) error {
		if err := pedidoRepo.DeleteDetallesByPedido(id); err != nil {
			return err
		}
		return pedidoRepo.Delete(id)
	})
}

// GetByID devuelve el pedido con asesor, cliente y detalles (cada uno con su
// producto) embebidos; ErrNotFound si no existe.
func (uc *PedidoUseCase) GetByID(id string) (*dto.PedidoResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.pedidoRepo.GetDetallesByPedido(id)
	if err != nil {
		return nil, err
	}
	asesor, err := uc.asesorRepo.GetByID(pedido.AsesorID)
	if err != nil {
		return nil, err
	}
	cliente, err := uc.clienteRepo.GetByID(pedido.ClienteID)
	if err != nil {
		return nil, err
	}
	productos, err := uc.productosDeDetalles(detalles)
	if err != nil {
		return nil, err
	}
	return uc.armarRespuesta(pedido, detalles, asesor, cliente, productos), nil
}

// List devuelve todos los pedidos (más reciente primero) con sus relaciones
// embebidas. Detalles, productos, asesores y clientes se resuelven por lote.
func (uc *PedidoUseCase) List() ([]dto.PedidoResponse, error) {
	pedidosList, err := uc.pedidoRepo.List()
	if err != nil {
		return nil, err
	}
	pedidoIDs := make([]string, 0, len(pedidosList))
	for _, p := range pedidosList {
		pedidoIDs = append(pedidoIDs, p.ID)
	}
	todos, err := uc.pedidoRepo.ListDetallesByPedidoIDs(pedidoIDs)
	if err != nil {
		return nil, err
	}
	detallesPorPedido := make(map[string][]*entity.DetallePedido, len(pedidosList))
	for _, d := range todos {
		detallesPorPedido[d.PedidoID] = append(detallesPorPedido[d.PedidoID], d)
	}
	productos, err := uc.productosDeDetalles(todos)
	if err != nil {
		return nil, err
	}
	asesores, err := uc.asesoresDePedidos(pedidosList)
	if err != nil {
		return nil, err
	}
	clientes, err := uc.clientesDePedidos(pedidosList)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PedidoResponse, 0, len(pedidosList))
	for _, p := range pedidosList {
		resp := uc.armarRespuesta(p, detallesPorPedido[p.ID], asesores[p.AsesorID], clientes[p.ClienteID], productos)
		items = append(items, *resp)
	}
	return items, nil
}

// validarCabecera confirma asesor y cliente; empresa solo si viene en el payload.
func (uc *PedidoUseCase) validarCabecera(asesorID, clienteID string, empresaID *int64) (*entity.Asesor, *entity.Cliente, error) {
	asesor, err := uc.asesorRepo.GetByID(asesorID)
	if err != nil {
		return nil, nil, err
	}
	if asesor == nil {
		return nil, nil, domain.NewDanglingReference("idAsesor", asesorID)
	}
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, nil, err
	}
	if cliente == nil {
		return nil, nil, domain.NewDanglingReference("idCliente", clienteID)
	}
	if empresaID != nil {
		empresa, err := uc.empresaRepo.GetByID(*empresaID)
		if err != nil {
			return nil, nil, err
		}
		if empresa == nil {
			return nil, nil, domain.NewDanglingReference("idEmpresa", strconv.FormatInt(*empresaID, 10))
		}
	}
	return asesor, cliente, nil
}

// resolverProductos confirma que cada idProducto de las líneas exista y
// devuelve el catálogo indexado por ID.
func (uc *PedidoUseCase) resolverProductos(detalles []dto.PedidoDetalleRequest) (map[string]*entity.Producto, error) {
	productos := make(map[string]*entity.Producto, len(detalles))
	for _, d := range detalles {
		if _, ok := productos[d.ProductoID]; ok {
			continue
		}
		producto, err := uc.productoRepo.GetByID(d.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.NewDanglingReference("idProducto", d.ProductoID)
		}
		productos[d.ProductoID] = producto
	}
	return productos, nil
}

func (uc *PedidoUseCase) construirDetalles(
	pedidoID, username string,
	now time.Time,
	in []dto.PedidoDetalleRequest,
	productos map[string]*entity.Producto,
) ([]*entity.DetallePedido, error) {
	detalles := make([]*entity.DetallePedido, 0, len(in))
	for _, d := range in {
		precio, total, err := pricing.LineTotal(d.Precio, productos[d.ProductoID].Precio, d.Cantidad)
		if err != nil {
			return nil, err
		}
		detalles = append(detalles, &entity.DetallePedido{
			ID:         uuid.New().String(),
			PedidoID:   pedidoID,
			ProductoID: d.ProductoID,
			Precio:     precio,
			Cantidad:   d.Cantidad,
			Total:      total,
			CreatedAt:  now,
			UpdatedAt:  now,
			CreatedBy:  username,
			UpdatedBy:  username,
		})
	}
	return detalles, nil
}

// advertirTotalDivergente deja un warn cuando totalPedido no coincide con la
// suma de las líneas. No bloquea: el total del request se persiste tal cual.
func (uc *PedidoUseCase) advertirTotalDivergente(pedido *entity.Pedido, detalles []*entity.DetallePedido) {
	suma := decimal.Zero
	for _, d := range detalles {
		suma = suma.Add(d.Total)
	}
	if uc.log != nil && !suma.Equal(pedido.TotalPedido) {
		uc.log.Warn().
			Str("pedido_id", pedido.ID).
			Str("total_pedido", pedido.TotalPedido.String()).
			Str("suma_detalles", suma.String()).
			Msg("totalPedido no coincide con la suma de las líneas")
	}
}

func (uc *PedidoUseCase) productosDeDetalles(detalles []*entity.DetallePedido) (map[string]*entity.Producto, error) {
	ids := make([]string, 0, len(detalles))
	seen := make(map[string]bool, len(detalles))
	for _, d := range detalles {
		if !seen[d.ProductoID] {
			seen[d.ProductoID] = true
			ids = append(ids, d.ProductoID)
		}
	}
	list, err := uc.productoRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Producto, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return byID, nil
}

func (uc *PedidoUseCase) asesoresDePedidos(pedidosList []*entity.Pedido) (map[string]*entity.Asesor, error) {
	ids := make([]string, 0, len(pedidosList))
	seen := make(map[string]bool, len(pedidosList))
	for _, p := range pedidosList {
		if !seen[p.AsesorID] {
			seen[p.AsesorID] = true
			ids = append(ids, p.AsesorID)
		}
	}
	list, err := uc.asesorRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Asesor, len(list))
	for _, a := range list {
		byID[a.ID] = a
	}
	return byID, nil
}

func (uc *PedidoUseCase) clientesDePedidos(pedidosList []*entity.Pedido) (map[string]*entity.Cliente, error) {
	ids := make([]string, 0, len(pedidosList))
	seen := make(map[string]bool, len(pedidosList))
	for _, p := range pedidosList {
		if !seen[p.ClienteID] {
			seen[p.ClienteID] = true
			ids = append(ids, p.ClienteID)
		}
	}
	list, err := uc.clienteRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Cliente, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	return byID, nil
}
