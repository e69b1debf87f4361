package pedidos

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventasve/pedidos-api/internal/application/dto"
	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

type fakePedidoRepo struct {
	pedidos  map[string]*entity.Pedido
	detalles []*entity.DetallePedido
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[string]*entity.Pedido)}
}

func (f *fakePedidoRepo) Create(p *entity.Pedido) error {
	f.pedidos[p.ID] = p
	return nil
}

func (f *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return f.pedidos[id], nil
}

func (f *fakePedidoRepo) List() ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0, len(f.pedidos))
	for _, p := range f.pedidos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePedidoRepo) Update(p *entity.Pedido) error {
	f.pedidos[p.ID] = p
	return nil
}

func (f *fakePedidoRepo) Delete(id string) error {
	delete(f.pedidos, id)
	return nil
}

func (f *fakePedidoRepo) CreateDetalle(d *entity.DetallePedido) error {
	f.detalles = append(f.detalles, d)
	return nil
}

func (f *fakePedidoRepo) GetDetalleByID(id string) (*entity.DetallePedido, error) {
	for _, d := range f.detalles {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakePedidoRepo) GetDetallesByPedido(pedidoID string) ([]*entity.DetallePedido, error) {
	var out []*entity.DetallePedido
	for _, d := range f.detalles {
		if d.PedidoID == pedidoID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) ListDetallesByPedidoIDs(pedidoIDs []string) ([]*entity.DetallePedido, error) {
	ids := make(map[string]bool, len(pedidoIDs))
	for _, id := range pedidoIDs {
		ids[id] = true
	}
	var out []*entity.DetallePedido
	for _, d := range f.detalles {
		if ids[d.PedidoID] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakePedidoRepo) ListDetalles() ([]*entity.DetallePedido, error) {
	return f.detalles, nil
}

func (f *fakePedidoRepo) UpdateDetalle(d *entity.DetallePedido) error {
	for i, cur := range f.detalles {
		if cur.ID == d.ID {
			f.detalles[i] = d
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePedidoRepo) DeleteDetalle(id string) error {
	for i, d := range f.detalles {
		if d.ID == id {
			f.detalles = append(f.detalles[:i], f.detalles[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePedidoRepo) DeleteDetallesByPedido(pedidoID string) error {
	keep := f.detalles[:0]
	for _, d := range f.detalles {
		if d.PedidoID != pedidoID {
			keep = append(keep, d)
		}
	}
	f.detalles = keep
	return nil
}

type fakeAsesorRepo struct{ items map[string]*entity.Asesor }

func (f *fakeAsesorRepo) Create(a *entity.Asesor) error { f.items[a.ID] = a; return nil }
func (f *fakeAsesorRepo) GetByID(id string) (*entity.Asesor, error) { return f.items[id], nil }
func (f *fakeAsesorRepo) List() ([]*entity.Asesor, error) { return nil, nil }
func (f *fakeAsesorRepo) Update(a *entity.Asesor) error { return nil }
func (f *fakeAsesorRepo) Delete(id string) error { return nil }
func (f *fakeAsesorRepo) ListByIDs(ids []string) ([]*entity.Asesor, error) {
	var out []*entity.Asesor
	for _, id := range ids {
		if a := f.items[id]; a != nil {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeClienteRepo struct{ items map[string]*entity.Cliente }

func (f *fakeClienteRepo) Create(c *entity.Cliente) error { f.items[c.ID] = c; return nil }
func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) { return f.items[id], nil }
func (f *fakeClienteRepo) List() ([]*entity.Cliente, error) { return nil, nil }
func (f *fakeClienteRepo) Update(c *entity.Cliente) error { return nil }
func (f *fakeClienteRepo) Delete(id string) error { return nil }
func (f *fakeClienteRepo) ListByIDs(ids []string) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, id := range ids {
		if c := f.items[id]; c != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeEmpresaRepo struct{ items map[int64]*entity.Empresa }

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error { f.items[e.ID] = e; return nil }
func (f *fakeEmpresaRepo) GetByID(id int64) (*entity.Empresa, error) { return f.items[id], nil }
func (f *fakeEmpresaRepo) List() ([]*entity.Empresa, error) { return nil, nil }
func (f *fakeEmpresaRepo) Update(e *entity.Empresa) error { return nil }
func (f *fakeEmpresaRepo) Delete(id int64) error { return nil }

type fakeProductoRepo struct{ items map[string]*entity.Producto }

func (f *fakeProductoRepo) Create(p *entity.Producto) error { f.items[p.ID] = p; return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) { return f.items[id], nil }
func (f *fakeProductoRepo) List() ([]*entity.Producto, error) { return nil, nil }
func (f *fakeProductoRepo) Update(p *entity.Producto) error { return nil }
func (f *fakeProductoRepo) Delete(id string) error { return nil }
func (f *fakeProductoRepo) ListByIDs(ids []string) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, id := range ids {
		if p := f.items[id]; p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	repo repository.PedidoRepository
	runs int
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.PedidoRepository) error) error {
	f.runs++
	return fn(f.repo)
}

type pedidoFixture struct {
	uc       *PedidoUseCase
	pedidos  *fakePedidoRepo
	tx       *fakeTxRunner
	empresas *fakeEmpresaRepo
}

func newPedidoFixture(t *testing.T) *pedidoFixture {
	t.Helper()
	pedidos := newFakePedidoRepo()
	tx := &fakeTxRunner{repo: pedidos}
	asesores := &fakeAsesorRepo{items: map[string]*entity.Asesor{
		"as-1": {ID: "as-1", Nombre: "Carlos"},
	}}
	clientes := &fakeClienteRepo{items: map[string]*entity.Cliente{
		"cl-1": {ID: "cl-1", Rif: "J-1234", Nombre: "Bodega La Oriental", Zona: "Este", AsesorID: "as-1"},
	}}
	empresas := &fakeEmpresaRepo{items: map[int64]*entity.Empresa{
		7: {ID: 7, RazonSocial: "Distribuidora VE"},
	}}
	productos := &fakeProductoRepo{items: map[string]*entity.Producto{
		"pr-1": {ID: "pr-1", Nombre: "Harina", Precio: decimal.NewFromInt(10)},
		"pr-2": {ID: "pr-2", Nombre: "Aceite", Precio: decimal.NewFromInt(25)},
	}}
	return &pedidoFixture{
		uc:       NewPedidoUseCase(tx, pedidos, asesores, clientes, empresas, productos, nil),
		pedidos:  pedidos,
		tx:       tx,
		empresas: empresas,
	}
}

func TestPedidoCreate(t *testing.T) {
	fx := newPedidoFixture(t)

	resp, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		FechaPedido: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		TotalPedido: decimal.NewFromInt(80),
		Status:      "pendiente",
		AsesorID:    "as-1",
		ClienteID:   "cl-1",
		Detalles: []dto.PedidoDetalleRequest{
			{ProductoID: "pr-1", Precio: decimal.Zero, Cantidad: 3},
			{ProductoID: "pr-2", Precio: decimal.NewFromInt(20), Cantidad: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, fx.tx.runs)
	assert.Len(t, fx.pedidos.pedidos, 1)
	require.Len(t, fx.pedidos.detalles, 2)

	// precio 0 cae al catálogo; precio explícito manda
	assert.True(t, resp.Detalles[0].Precio.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.Detalles[0].Total.Equal(decimal.NewFromInt(30)))
	assert.True(t, resp.Detalles[1].Precio.Equal(decimal.NewFromInt(20)))
	assert.True(t, resp.Detalles[1].Total.Equal(decimal.NewFromInt(40)))

	require.NotNil(t, resp.Asesor)
	assert.Equal(t, "Carlos", resp.Asesor.Nombre)
	require.NotNil(t, resp.Cliente)
	assert.Equal(t, "J-1234", resp.Cliente.Rif)
	require.NotNil(t, resp.Detalles[0].Producto)
	assert.Equal(t, "Harina", resp.Detalles[0].Producto.Nombre)

	assert.Equal(t, "johndoe", resp.CreatedBy)
	assert.Equal(t, "johndoe", resp.UpdatedBy)
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
	assert.Equal(t, resp.ID, fx.pedidos.detalles[0].PedidoID)
}

func TestPedidoCreateTotalVerbatim(t *testing.T) {
	fx := newPedidoFixture(t)

	// total declarado no coincide con la suma; se persiste igual
	resp, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		TotalPedido: decimal.NewFromInt(999),
		AsesorID:    "as-1",
		ClienteID:   "cl-1",
		Detalles: []dto.PedidoDetalleRequest{
			{ProductoID: "pr-1", Cantidad: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalPedido.Equal(decimal.NewFromInt(999)))
	assert.True(t, fx.pedidos.pedidos[resp.ID].TotalPedido.Equal(decimal.NewFromInt(999)))
}

func TestPedidoCreateReferenciaColgante(t *testing.T) {
	fx := newPedidoFixture(t)

	cases := []struct {
		name  string
		in    dto.CreatePedidoRequest
		field string
	}{
		{
			name:  "asesor inexistente",
			in:    dto.CreatePedidoRequest{AsesorID: "nope", ClienteID: "cl-1"},
			field: "idAsesor",
		},
		{
			name:  "cliente inexistente",
			in:    dto.CreatePedidoRequest{AsesorID: "as-1", ClienteID: "nope"},
			field: "idCliente",
		},
		{
			name: "producto inexistente",
			in: dto.CreatePedidoRequest{
				AsesorID:  "as-1",
				ClienteID: "cl-1",
				Detalles:  []dto.PedidoDetalleRequest{{ProductoID: "nope", Cantidad: 1}},
			},
			field: "idProducto",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.Create(context.Background(), "johndoe", tc.in)
			dangling, ok := domain.IsDanglingReference(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, dangling.Field)
		})
	}
	// ninguna referencia colgante llegó a abrir transacción
	assert.Equal(t, 0, fx.tx.runs)
	assert.Empty(t, fx.pedidos.pedidos)
	assert.Empty(t, fx.pedidos.detalles)
}

func TestPedidoCreateEmpresaColgante(t *testing.T) {
	fx := newPedidoFixture(t)

	empresaID := int64(99)
	_, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		AsesorID:  "as-1",
		ClienteID: "cl-1",
		EmpresaID: &empresaID,
	})
	dangling, ok := domain.IsDanglingReference(err)
	require.True(t, ok)
	assert.Equal(t, "idEmpresa", dangling.Field)
	assert.Equal(t, "99", dangling.Value)
}

func TestPedidoCreateCantidadInvalida(t *testing.T) {
	fx := newPedidoFixture(t)

	_, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		AsesorID:  "as-1",
		ClienteID: "cl-1",
		Detalles:  []dto.PedidoDetalleRequest{{ProductoID: "pr-1", Cantidad: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 0, fx.tx.runs)
}

func TestPedidoUpdateReemplazaDetalles(t *testing.T) {
	fx := newPedidoFixture(t)

	created, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		AsesorID:  "as-1",
		ClienteID: "cl-1",
		Detalles: []dto.PedidoDetalleRequest{
			{ProductoID: "pr-1", Cantidad: 3},
			{ProductoID: "pr-2", Cantidad: 2},
		},
	})
	require.NoError(t, err)
	require.Len(t, fx.pedidos.detalles, 2)

	resp, err := fx.uc.Update(context.Background(), "alice", created.ID, dto.UpdatePedidoRequest{
		TotalPedido: decimal.NewFromInt(50),
		Status:      "despachado",
		Detalles: []dto.PedidoDetalleRequest{
			{ProductoID: "pr-2", Cantidad: 2},
		},
	})
	require.NoError(t, err)

	// el conjunto anterior desaparece completo
	require.Len(t, fx.pedidos.detalles, 1)
	assert.Equal(t, "pr-2", fx.pedidos.detalles[0].ProductoID)
	require.Len(t, resp.Detalles, 1)
	assert.True(t, resp.Detalles[0].Total.Equal(decimal.NewFromInt(50)))

	// FKs omitidas se conservan
	assert.Equal(t, "as-1", resp.AsesorID)
	assert.Equal(t, "cl-1", resp.ClienteID)
	assert.Equal(t, "despachado", resp.Status)
	assert.Equal(t, "johndoe", resp.CreatedBy)
	assert.Equal(t, "alice", resp.UpdatedBy)
}

func TestPedidoUpdateSinDetallesVaciaLasLineas(t *testing.T) {
	fx := newPedidoFixture(t)

	created, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		AsesorID:  "as-1",
		ClienteID: "cl-1",
		Detalles:  []dto.PedidoDetalleRequest{{ProductoID: "pr-1", Cantidad: 1}},
	})
	require.NoError(t, err)

	resp, err := fx.uc.Update(context.Background(), "johndoe", created.ID, dto.UpdatePedidoRequest{})
	require.NoError(t, err)
	assert.Empty(t, fx.pedidos.detalles)
	assert.NotNil(t, resp.Detalles)
	assert.Empty(t, resp.Detalles)
}

func TestPedidoUpdateNoExiste(t *testing.T) {
	fx := newPedidoFixture(t)

	_, err := fx.uc.Update(context.Background(), "johndoe", "nope", dto.UpdatePedidoRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoDeleteArrastraDetalles(t *testing.T) {
	fx := newPedidoFixture(t)

	created, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		AsesorID:  "as-1",
		ClienteID: "cl-1",
		Detalles: []dto.PedidoDetalleRequest{
			{ProductoID: "pr-1", Cantidad: 1},
			{ProductoID: "pr-2", Cantidad: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(context.Background(), created.ID))
	assert.Empty(t, fx.pedidos.pedidos)
	assert.Empty(t, fx.pedidos.detalles)

	assert.ErrorIs(t, fx.uc.Delete(context.Background(), created.ID), domain.ErrNotFound)
}

func TestPedidoGetByID(t *testing.T) {
	fx := newPedidoFixture(t)

	created, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
		AsesorID:  "as-1",
		ClienteID: "cl-1",
		Detalles:  []dto.PedidoDetalleRequest{{ProductoID: "pr-1", Cantidad: 2}},
	})
	require.NoError(t, err)

	resp, err := fx.uc.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, resp.Detalles, 1)
	require.NotNil(t, resp.Detalles[0].Producto)
	assert.Equal(t, "Harina", resp.Detalles[0].Producto.Nombre)
	require.NotNil(t, resp.Asesor)
	require.NotNil(t, resp.Cliente)

	_, err = fx.uc.GetByID("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPedidoList(t *testing.T) {
	fx := newPedidoFixture(t)

	for i := 0; i < 2; i++ {
		_, err := fx.uc.Create(context.Background(), "johndoe", dto.CreatePedidoRequest{
			AsesorID:  "as-1",
			ClienteID: "cl-1",
			Detalles:  []dto.PedidoDetalleRequest{{ProductoID: "pr-1", Cantidad: 1}},
		})
		require.NoError(t, err)
	}

	items, err := fx.uc.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		require.Len(t, it.Detalles, 1)
		assert.NotNil(t, it.Asesor)
		assert.NotNil(t, it.Cliente)
		assert.NotNil(t, it.Detalles[0].Producto)
	}
}
