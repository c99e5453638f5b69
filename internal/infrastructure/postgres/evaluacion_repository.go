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

var _ repository.EvaluacionRepository = (*EvaluacionRepo)(nil)

const evaluacionColumns = `id, usuario_id::text, informe_id, to_char(fecha, 'YYYY-MM-DD'),
		conocimiento, metodologia, comunicacion, objetividad, calificacion_final,
		created_at, updated_at`

// EvaluacionRepo implementación del puerto EvaluacionRepository sobre PostgreSQL.
//
// calificacion_final es derivada: el INSERT la calcula como promedio de los
// cuatro criterios en la misma sentencia, reemplazando el procedimiento
// almacenado de recálculo del sistema original.
type EvaluacionRepo struct {
	pool *pgxpool.Pool
}

// NewEvaluacionRepository construye el adaptador de evaluaciones de auditores.
func NewEvaluacionRepository(pool *pgxpool.Pool) *EvaluacionRepo {
	return &EvaluacionRepo{pool: pool}
}

// Create inserta la evaluación con la calificación final calculada en SQL y
// devuelve la fila resultante.
func (r *EvaluacionRepo) Create(ctx context.Context, e *entity.EvaluacionAuditor) (*entity.EvaluacionAuditor, error) {
	query := `
		INSERT INTO evaluaciones_auditores
			(usuario_id, informe_id, fecha, conocimiento, metodologia, comunicacion, objetividad,
			 calificacion_final, created_at, updated_at)
		VALUES ($1::uuid, $2, $3::date, $4, $5, $6, $7,
		        ROUND(($4 + $5 + $6 + $7) / 4.0, 2), $8, $9)
		RETURNING ` + evaluacionColumns
	var out entity.EvaluacionAuditor
	err := r.pool.QueryRow(ctx, query,
		e.UsuarioID, e.InformeID, e.Fecha, e.Conocimiento, e.Metodologia,
		e.Comunicacion, e.Objetividad, e.CreatedAt, e.UpdatedAt,
	).Scan(
		&out.ID, &out.UsuarioID, &out.InformeID, &out.Fecha,
		&out.Conocimiento, &out.Metodologia, &out.Comunicacion, &out.Objetividad,
		&out.CalificacionFinal, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflicto
		}
		return nil, fmt.Errorf("insert evaluacion: %w", err)
	}
	return &out, nil
}

// GetByID obtiene una evaluación por ID.
func (r *EvaluacionRepo) GetByID(ctx context.Context, id int) (*entity.EvaluacionAuditor, error) {
	query := `SELECT ` + evaluacionColumns + ` FROM evaluaciones_auditores WHERE id = $1`
	var e entity.EvaluacionAuditor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.UsuarioID, &e.InformeID, &e.Fecha,
		&e.Conocimiento, &e.Metodologia, &e.Comunicacion, &e.Objetividad,
		&e.CalificacionFinal, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evaluacion: %w", err)
	}
	return &e, nil
}

// List lista evaluaciones; informeID cero lista todas.
func (r *EvaluacionRepo) List(ctx context.Context, informeID int) ([]*entity.EvaluacionAuditor, error) {
	query := `SELECT ` + evaluacionColumns + `
		FROM evaluaciones_auditores
		WHERE ($1 = 0 OR informe_id = $1)
		ORDER BY id`
	rows, err := r.pool.Query(ctx, query, informeID)
	if err != nil {
		return nil, fmt.Errorf("list evaluaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.EvaluacionAuditor
	for rows.Next() {
		var e entity.EvaluacionAuditor
		if err := rows.Scan(
			&e.ID, &e.UsuarioID, &e.InformeID, &e.Fecha,
			&e.Conocimiento, &e.Metodologia, &e.Comunicacion, &e.Objetividad,
			&e.CalificacionFinal, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evaluacion: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ActualizarFecha corrige la fecha de una evaluación; nil limpia el campo.
func (r *EvaluacionRepo) ActualizarFecha(ctx context.Context, id int, fecha *string) error {
	query := `
		UPDATE evaluaciones_auditores SET fecha = $2::date, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, fecha)
	if err != nil {
		return fmt.Errorf("update fecha evaluacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
