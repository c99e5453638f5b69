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

var _ repository.InformeRepository = (*InformeRepo)(nil)

const informeColumns = `id, usuario_id::text, dependencia_id, COALESCE(objetivo, ''),
		COALESCE(criterios, ''), COALESCE(conclusiones, ''), COALESCE(recomendaciones, ''),
		to_char(fecha_auditoria, 'YYYY-MM-DD'), to_char(fecha_seguimiento, 'YYYY-MM-DD'),
		COALESCE(acompanantes, '{}'), COALESCE(periodo, ''), validado, created_at, updated_at`

// InformeRepo implementación del puerto InformeRepository sobre PostgreSQL.
type InformeRepo struct {
	pool *pgxpool.Pool
}

// NewInformeRepository construye el adaptador de persistencia para informes.
func NewInformeRepository(pool *pgxpool.Pool) *InformeRepo {
	return &InformeRepo{pool: pool}
}

// Create persiste un informe y devuelve la fila con el ID generado.
func (r *InformeRepo) Create(ctx context.Context, inf *entity.InformeAuditoria) (*entity.InformeAuditoria, error) {
	query := `
		INSERT INTO informes_auditoria
			(usuario_id, dependencia_id, objetivo, criterios, conclusiones, recomendaciones,
			 fecha_auditoria, fecha_seguimiento, acompanantes, periodo, validado, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7::date, $8::date, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		inf.UsuarioID, inf.DependenciaID, inf.Objetivo, inf.Criterios, inf.Conclusiones,
		inf.Recomendaciones, inf.FechaAuditoria, inf.FechaSeguimiento, inf.Acompanantes,
		inf.Periodo, inf.Validado, inf.CreatedAt, inf.UpdatedAt,
	).Scan(&inf.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflicto
		}
		return nil, fmt.Errorf("insert informe: %w", err)
	}
	return inf, nil
}

// GetByID obtiene un informe por ID.
func (r *InformeRepo) GetByID(ctx context.Context, id int) (*entity.InformeAuditoria, error) {
	query := `SELECT ` + informeColumns + ` FROM informes_auditoria WHERE id = $1`
	var inf entity.InformeAuditoria
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inf.ID, &inf.UsuarioID, &inf.DependenciaID, &inf.Objetivo, &inf.Criterios,
		&inf.Conclusiones, &inf.Recomendaciones, &inf.FechaAuditoria, &inf.FechaSeguimiento,
		&inf.Acompanantes, &inf.Periodo, &inf.Validado, &inf.CreatedAt, &inf.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get informe: %w", err)
	}
	return &inf, nil
}

// List lista informes según el filtro, el más reciente primero.
func (r *InformeRepo) List(ctx context.Context, filtro repository.InformeFiltro) ([]*entity.InformeAuditoria, error) {
	query := `SELECT ` + informeColumns + ` FROM informes_auditoria WHERE 1=1`
	args := []interface{}{}
	if filtro.UsuarioID != "" {
		args = append(args, filtro.UsuarioID)
		query += fmt.Sprintf(` AND usuario_id = $%d::uuid`, len(args))
	}
	if filtro.DependenciaID > 0 {
		args = append(args, filtro.DependenciaID)
		query += fmt.Sprintf(` AND dependencia_id = $%d`, len(args))
	}
	if filtro.Periodo != "" {
		args = append(args, filtro.Periodo)
		query += fmt.Sprintf(` AND periodo = $%d`, len(args))
	}
	args = append(args, filtro.Limit, filtro.Offset)
	query += fmt.Sprintf(` ORDER BY fecha_auditoria DESC NULLS LAST, id DESC LIMIT $%d OFFSET $%d`,
		len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list informes: %w", err)
	}
	defer rows.Close()
	var list []*entity.InformeAuditoria
	for rows.Next() {
		var inf entity.InformeAuditoria
		if err := rows.Scan(
			&inf.ID, &inf.UsuarioID, &inf.DependenciaID, &inf.Objetivo, &inf.Criterios,
			&inf.Conclusiones, &inf.Recomendaciones, &inf.FechaAuditoria, &inf.FechaSeguimiento,
			&inf.Acompanantes, &inf.Periodo, &inf.Validado, &inf.CreatedAt, &inf.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan informe: %w", err)
		}
		list = append(list, &inf)
	}
	return list, rows.Err()
}

// Update actualiza un informe.
func (r *InformeRepo) Update(ctx context.Context, inf *entity.InformeAuditoria) error {
	query := `
		UPDATE informes_auditoria
		SET usuario_id = $2::uuid, dependencia_id = $3, objetivo = $4, criterios = $5,
		    conclusiones = $6, recomendaciones = $7, fecha_auditoria = $8::date,
		    fecha_seguimiento = $9::date, acompanantes = $10, periodo = $11,
		    validado = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		inf.ID, inf.UsuarioID, inf.DependenciaID, inf.Objetivo, inf.Criterios,
		inf.Conclusiones, inf.Recomendaciones, inf.FechaAuditoria, inf.FechaSeguimiento,
		inf.Acompanantes, inf.Periodo, inf.Validado, inf.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("update informe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un informe. Devuelve domain.ErrConflicto si hallazgos o
// evaluaciones lo referencian.
func (r *InformeRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM informes_auditoria WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("delete informe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Periodos devuelve los períodos distintos con informes, el más reciente primero.
func (r *InformeRepo) Periodos(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT periodo FROM informes_auditoria
		WHERE periodo IS NOT NULL AND periodo <> ''
		ORDER BY periodo DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list periodos: %w", err)
	}
	defer rows.Close()
	var periodos []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan periodo: %w", err)
		}
		periodos = append(periodos, p)
	}
	return periodos, rows.Err()
}
