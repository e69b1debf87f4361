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

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación de EmpresaRepository (usable con pool o tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste una empresa y asigna sobre la entidad el ID autogenerado.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (razon_social, id_pedido, id_recibo, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		empresa.RazonSocial, empresa.IDPedido, empresa.IDRecibo,
		empresa.CreatedAt, empresa.UpdatedAt, empresa.CreatedBy, empresa.UpdatedBy,
	).Scan(&empresa.ID)
	if err != nil {
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; (nil, nil) si no existe.
func (r *EmpresaRepo) GetByID(id int64) (*entity.Empresa, error) {
	query := `
		SELECT id, razon_social, id_pedido, id_recibo, created_at, updated_at, created_by, updated_by
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.RazonSocial, &e.IDPedido, &e.IDRecibo,
		&e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// List devuelve todas las empresas.
func (r *EmpresaRepo) List() ([]*entity.Empresa, error) {
	query := `
		SELECT id, razon_social, id_pedido, id_recibo, created_at, updated_at, created_by, updated_by
		FROM empresas ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.RazonSocial, &e.IDPedido, &e.IDRecibo, &e.CreatedAt, &e.UpdatedAt, &e.CreatedBy, &e.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza una empresa.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `
		UPDATE empresas SET razon_social = $2, id_pedido = $3, id_recibo = $4, updated_at = $5, updated_by = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.RazonSocial, empresa.IDPedido, empresa.IDRecibo,
		empresa.UpdatedAt, empresa.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// Delete elimina una empresa; ErrNotFound si no existe.
func (r *EmpresaRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
