package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL.
type PlanRepo struct {
	pool *pgxpool.Pool
}

// NewPlanRepository construye el adaptador del plan de auditoría.
func NewPlanRepository(pool *pgxpool.Pool) *PlanRepo {
	return &PlanRepo{pool: pool}
}

// Create persiste una entrada del plan y devuelve el ID generado.
func (r *PlanRepo) Create(ctx context.Context, p *entity.PlanAuditoria) (*entity.PlanAuditoria, error) {
	query := `
		INSERT INTO plan_auditoria (dependencia_id, periodo, fecha_programada, estado, created_at, updated_at)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		p.DependenciaID, p.Periodo, p.FechaProgramada, p.Estado, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflicto
		}
		return nil, fmt.Errorf("insert plan: %w", err)
	}
	return p, nil
}

// List lista el plan, opcionalmente filtrado por período.
func (r *PlanRepo) List(ctx context.Context, periodo string) ([]*entity.PlanAuditoria, error) {
	query := `
		SELECT id, dependencia_id, COALESCE(periodo, ''),
		       to_char(fecha_programada, 'YYYY-MM-DD'), estado, created_at, updated_at
		FROM plan_auditoria
		WHERE ($1 = '' OR periodo = $1)
		ORDER BY fecha_programada NULLS LAST, id`
	rows, err := r.pool.Query(ctx, query, periodo)
	if err != nil {
		return nil, fmt.Errorf("list plan: %w", err)
	}
	defer rows.Close()
	var list []*entity.PlanAuditoria
	for rows.Next() {
		var p entity.PlanAuditoria
		if err := rows.Scan(
			&p.ID, &p.DependenciaID, &p.Periodo, &p.FechaProgramada, &p.Estado,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una entrada del plan.
func (r *PlanRepo) Update(ctx context.Context, p *entity.PlanAuditoria) error {
	query := `
		UPDATE plan_auditoria
		SET dependencia_id = $2, periodo = $3, fecha_programada = $4::date, estado = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.DependenciaID, p.Periodo, p.FechaProgramada, p.Estado, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entrada del plan.
func (r *PlanRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plan_auditoria WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
