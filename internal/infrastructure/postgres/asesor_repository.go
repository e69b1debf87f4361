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

var _ repository.AsesorRepository = (*AsesorRepo)(nil)

// AsesorRepo implementación de AsesorRepository (usable con pool o tx).
type AsesorRepo struct {
	q Querier
}

// NewAsesorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAsesorRepository(q Querier) *AsesorRepo {
	return &AsesorRepo{q: q}
}

// Create persiste un asesor.
func (r *AsesorRepo) Create(asesor *entity.Asesor) error {
	query := `
		INSERT INTO asesores (id, nombre, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		asesor.ID, asesor.Nombre, asesor.CreatedAt, asesor.UpdatedAt, asesor.CreatedBy, asesor.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert asesor: %w", err)
	}
	return nil
}

// GetByID obtiene un asesor por ID; (nil, nil) si no existe.
func (r *AsesorRepo) GetByID(id string) (*entity.Asesor, error) {
	query := `
		SELECT id, nombre, created_at, updated_at, created_by, updated_by
		FROM asesores WHERE id = $1`
	var a entity.Asesor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asesor: %w", err)
	}
	return &a, nil
}

// ListByIDs obtiene los asesores cuyo ID esté en ids, en una sola consulta.
func (r *AsesorRepo) ListByIDs(ids []string) ([]*entity.Asesor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, nombre, created_at, updated_at, created_by, updated_by
		FROM asesores WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list asesores by ids: %w", err)
	}
	defer rows.Close()
	return scanAsesores(rows)
}

// List devuelve todos los asesores.
func (r *AsesorRepo) List() ([]*entity.Asesor, error) {
	query := `
		SELECT id, nombre, created_at, updated_at, created_by, updated_by
		FROM asesores ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list asesores: %w", err)
	}
	defer rows.Close()
	return scanAsesores(rows)
}

// Update actualiza un asesor.
func (r *AsesorRepo) Update(asesor *entity.Asesor) error {
	query := `
		UPDATE asesores SET nombre = $2, updated_at = $3, updated_by = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		asesor.ID, asesor.Nombre, asesor.UpdatedAt, asesor.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update asesor: %w", err)
	}
	return nil
}

// Delete elimina un asesor; ErrNotFound si no existe.
func (r *AsesorRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM asesores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asesor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAsesores(rows pgx.Rows) ([]*entity.Asesor, error) {
	var list []*entity.Asesor
	for rows.Next() {
		var a entity.Asesor
		if err := rows.Scan(&a.ID, &a.Nombre, &a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan asesor: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
