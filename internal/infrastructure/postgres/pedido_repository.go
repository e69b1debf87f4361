package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ventasve/pedidos-api/internal/domain"
	"github.com/ventasve/pedidos-api/internal/domain/entity"
	"github.com/ventasve/pedidos-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository (usable con pool o tx).
// La escritura del agregado pasa por el TxRunner, que entrega una instancia
// atada a la transacción.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, empresa_id, fecha_pedido, total_pedido, status, asesor_id, cliente_id, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.EmpresaID, pedido.FechaPedido, pedido.TotalPedido, pedido.Status,
		pedido.AsesorID, pedido.ClienteID,
		pedido.CreatedAt, pedido.UpdatedAt, pedido.CreatedBy, pedido.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido; (nil, nil) si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `
		SELECT id, empresa_id, fecha_pedido, total_pedido, status, asesor_id, cliente_id, created_at, updated_at, created_by, updated_by
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EmpresaID, &p.FechaPedido, &p.TotalPedido, &p.Status,
		&p.AsesorID, &p.ClienteID,
		&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// List devuelve todos los pedidos, más reciente primero.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	query := `
		SELECT id, empresa_id, fecha_pedido, total_pedido, status, asesor_id, cliente_id, created_at, updated_at, created_by, updated_by
		FROM pedidos ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.FechaPedido, &p.TotalPedido, &p.Status,
			&p.AsesorID, &p.ClienteID, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera del pedido.
func (r *PedidoRepo) Update(pedido *entity.Pedido) error {
	query := `
		UPDATE pedidos
		SET empresa_id = $2, fecha_pedido = $3, total_pedido = $4, status = $5,
		    asesor_id = $6, cliente_id = $7, updated_at = $8, updated_by = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.EmpresaID, pedido.FechaPedido, pedido.TotalPedido, pedido.Status,
		pedido.AsesorID, pedido.ClienteID, pedido.UpdatedAt, pedido.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de un pedido; ErrNotFound si no existe.
func (r *PedidoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateDetalle persiste una línea del pedido.
func (r *PedidoRepo) CreateDetalle(detalle *entity.DetallePedido) error {
	query := `
		INSERT INTO detalle_pedidos (id, pedido_id, producto_id, precio, cantidad, total, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.PedidoID, detalle.ProductoID,
		detalle.Precio, detalle.Cantidad, detalle.Total,
		detalle.CreatedAt, detalle.UpdatedAt, detalle.CreatedBy, detalle.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// GetDetalleByID obtiene una línea por ID; (nil, nil) si no existe.
func (r *PedidoRepo) GetDetalleByID(id string) (*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, producto_id, precio, cantidad, total, created_at, updated_at, created_by, updated_by
		FROM detalle_pedidos WHERE id = $1`
	var d entity.DetallePedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.PedidoID, &d.ProductoID, &d.Precio, &d.Cantidad, &d.Total,
		&d.CreatedAt, &d.UpdatedAt, &d.CreatedBy, &d.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return &d, nil
}

// GetDetallesByPedido obtiene todas las líneas de un pedido.
func (r *PedidoRepo) GetDetallesByPedido(pedidoID string) ([]*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, producto_id, precio, cantidad, total, created_at, updated_at, created_by, updated_by
		FROM detalle_pedidos WHERE pedido_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list detalles by pedido: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// ListDetallesByPedidoIDs obtiene en una sola consulta las líneas de todos
// los pedidos indicados (carga por lote para el listado).
func (r *PedidoRepo) ListDetallesByPedidoIDs(pedidoIDs []string) ([]*entity.DetallePedido, error) {
	if len(pedidoIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, pedido_id, producto_id, precio, cantidad, total, created_at, updated_at, created_by, updated_by
		FROM detalle_pedidos WHERE pedido_id = ANY($1) ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, pedidoIDs)
	if err != nil {
		return nil, fmt.Errorf("list detalles by pedido ids: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// ListDetalles devuelve todas las líneas (recurso suelto /detalle_pedidos/).
func (r *PedidoRepo) ListDetalles() ([]*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, producto_id, precio, cantidad, total, created_at, updated_at, created_by, updated_by
		FROM detalle_pedidos ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// UpdateDetalle actualiza una línea.
func (r *PedidoRepo) UpdateDetalle(detalle *entity.DetallePedido) error {
	query := `
		UPDATE detalle_pedidos
		SET pedido_id = $2, producto_id = $3, precio = $4, cantidad = $5, total = $6, updated_at = $7, updated_by = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.PedidoID, detalle.ProductoID,
		detalle.Precio, detalle.Cantidad, detalle.Total,
		detalle.UpdatedAt, detalle.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update detalle: %w", err)
	}
	return nil
}

// DeleteDetalle elimina una línea; ErrNotFound si no existe.
func (r *PedidoRepo) DeleteDetalle(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM detalle_pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteDetallesByPedido elimina todas las líneas de un pedido. Cero filas
// afectadas no es error: un pedido puede no tener líneas.
func (r *PedidoRepo) DeleteDetallesByPedido(pedidoID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM detalle_pedidos WHERE pedido_id = $1`, pedidoID)
	if err != nil {
		return fmt.Errorf("delete detalles by pedido: %w", err)
	}
	return nil
}

func scanDetalles(rows pgx.Rows) ([]*entity.DetallePedido, error) {
	var list []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.Precio, &d.Cantidad, &d.Total,
			&d.CreatedAt, &d.UpdatedAt, &d.CreatedBy, &d.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
