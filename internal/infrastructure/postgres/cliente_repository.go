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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, rif, nombre, zona, asesor_id, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Rif, cliente.Nombre, cliente.Zona, cliente.AsesorID,
		cliente.CreatedAt, cliente.UpdatedAt, cliente.CreatedBy, cliente.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, rif, nombre, zona, asesor_id, created_at, updated_at, created_by, updated_by
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Rif, &c.Nombre, &c.Zona, &c.AsesorID,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListByIDs obtiene los clientes cuyo ID esté en ids, en una sola consulta.
func (r *ClienteRepo) ListByIDs(ids []string) ([]*entity.Cliente, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, rif, nombre, zona, asesor_id, created_at, updated_at, created_by, updated_by
		FROM clientes WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list clientes by ids: %w", err)
	}
	defer rows.Close()
	return scanClientes(rows)
}

// List devuelve todos los clientes.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `
		SELECT id, rif, nombre, zona, asesor_id, created_at, updated_at, created_by, updated_by
		FROM clientes ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	return scanClientes(rows)
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET rif = $2, nombre = $3, zona = $4, asesor_id = $5, updated_at = $6, updated_by = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Rif, cliente.Nombre, cliente.Zona, cliente.AsesorID,
		cliente.UpdatedAt, cliente.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente; ErrNotFound si no existe.
func (r *ClienteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Rif, &c.Nombre, &c.Zona, &c.AsesorID, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
