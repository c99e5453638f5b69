package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

var _ repository.DependenciaRepository = (*DependenciaRepo)(nil)

// DependenciaRepo implementación del puerto DependenciaRepository sobre PostgreSQL.
type DependenciaRepo struct {
	pool *pgxpool.Pool
}

// NewDependenciaRepository construye el adaptador de persistencia para dependencias.
func NewDependenciaRepository(pool *pgxpool.Pool) *DependenciaRepo {
	return &DependenciaRepo{pool: pool}
}

// Create persiste una dependencia y devuelve la fila con el ID generado.
func (r *DependenciaRepo) Create(ctx context.Context, d *entity.Dependencia) (*entity.Dependencia, error) {
	query := `
		INSERT INTO dependencias (nombre, sigla, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query, d.Nombre, d.Sigla, d.Activa, d.CreatedAt, d.UpdatedAt).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicado
		}
		return nil, fmt.Errorf("insert dependencia: %w", err)
	}
	return d, nil
}

// GetByID obtiene una dependencia por ID.
func (r *DependenciaRepo) GetByID(ctx context.Context, id int) (*entity.Dependencia, error) {
	query := `
		SELECT id, nombre, COALESCE(sigla, ''), activa, created_at, updated_at
		FROM dependencias WHERE id = $1`
	var d entity.Dependencia
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Nombre, &d.Sigla, &d.Activa, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dependencia: %w", err)
	}
	return &d, nil
}

// List lista dependencias con paginación. Si busqueda no está vacío filtra por
// nombre o sigla, insensible a mayúsculas y tildes (unaccent en la base y
// normalización equivalente del término aquí).
func (r *DependenciaRepo) List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Dependencia, error) {
	query := `
		SELECT id, nombre, COALESCE(sigla, ''), activa, created_at, updated_at
		FROM dependencias`
	args := []interface{}{}
	if busqueda != "" {
		query += `
		WHERE unaccent(lower(nombre)) LIKE '%' || $1 || '%'
		   OR unaccent(lower(sigla))  LIKE '%' || $1 || '%'`
		args = append(args, quitarTildes(busqueda))
	}
	query += fmt.Sprintf(`
		ORDER BY nombre LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dependencias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dependencia
	for rows.Next() {
		var d entity.Dependencia
		if err := rows.Scan(&d.ID, &d.Nombre, &d.Sigla, &d.Activa, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan dependencia: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza una dependencia.
func (r *DependenciaRepo) Update(ctx context.Context, d *entity.Dependencia) error {
	query := `
		UPDATE dependencias SET nombre = $2, sigla = $3, activa = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, d.ID, d.Nombre, d.Sigla, d.Activa, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update dependencia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una dependencia. Devuelve domain.ErrConflicto si usuarios o
// informes la referencian.
func (r *DependenciaRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dependencias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("delete dependencia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
