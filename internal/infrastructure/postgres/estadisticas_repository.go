package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

var _ repository.EstadisticasRepository = (*EstadisticasRepo)(nil)

// EstadisticasRepo consultas de solo lectura para agregaciones de auditoría.
type EstadisticasRepo struct {
	pool *pgxpool.Pool
}

// NewEstadisticasRepository construye el adaptador de estadísticas.
func NewEstadisticasRepository(pool *pgxpool.Pool) *EstadisticasRepo {
	return &EstadisticasRepo{pool: pool}
}

// ResumenPorDependencia agrupa informes y hallazgos por dependencia y período.
// El porcentaje de validación se calcula en SQL, protegido contra división por cero.
func (r *EstadisticasRepo) ResumenPorDependencia(ctx context.Context, periodo string) ([]repository.ResumenDependencia, error) {
	const query = `
	SELECT
	    d.id                                                            AS dependencia_id,
	    d.nombre                                                        AS dependencia,
	    COALESCE(i.periodo, '')                                         AS periodo,
	    COUNT(DISTINCT i.id)                                            AS informes,
	    COUNT(DISTINCT i.id) FILTER (WHERE i.validado)                  AS validados,
	    COUNT(DISTINCT f.id)                                            AS fortalezas,
	    COUNT(DISTINCT o.id)                                            AS oportunidades,
	    COUNT(DISTINCT n.id)                                            AS no_conformidades,
	    CASE
	        WHEN COUNT(DISTINCT i.id) > 0
	        THEN ROUND(
	            COUNT(DISTINCT i.id) FILTER (WHERE i.validado)::numeric
	            / COUNT(DISTINCT i.id) * 100, 2)
	        ELSE 0
	    END                                                             AS porcentaje_validado
	FROM dependencias d
	JOIN informes_auditoria i ON i.dependencia_id = d.id
	LEFT JOIN fortalezas           f ON f.informe_id = i.id
	LEFT JOIN oportunidades_mejora o ON o.informe_id = i.id
	LEFT JOIN no_conformidades     n ON n.informe_id = i.id
	WHERE ($1 = '' OR i.periodo = $1)
	GROUP BY d.id, d.nombre, i.periodo
	ORDER BY d.nombre, i.periodo`

	rows, err := r.pool.Query(ctx, query, periodo)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.ResumenPorDependencia: %w", err)
	}
	defer rows.Close()

	var results []repository.ResumenDependencia
	for rows.Next() {
		var row repository.ResumenDependencia
		if err := rows.Scan(
			&row.DependenciaID,
			&row.Dependencia,
			&row.Periodo,
			&row.Informes,
			&row.Validados,
			&row.Fortalezas,
			&row.Oportunidades,
			&row.NoConformidades,
			&row.PorcentajeValidado,
		); err != nil {
			return nil, fmt.Errorf("estadisticas.ResumenPorDependencia scan: %w", err)
		}
		results = append(results, row)
	}
	if results == nil {
		results = []repository.ResumenDependencia{}
	}
	return results, rows.Err()
}

// HallazgosPorNumeral agrupa hallazgos por cláusula ISO y tipo, combinando las
// tres tablas con UNION ALL, ordenado por total descendente.
func (r *EstadisticasRepo) HallazgosPorNumeral(ctx context.Context, periodo string) ([]repository.ConteoNumeral, error) {
	const query = `
	WITH hallazgos AS (
	    SELECT f.norma, f.capitulo, f.numeral, 'fortaleza' AS tipo, f.informe_id
	    FROM fortalezas f
	    UNION ALL
	    SELECT o.norma, o.capitulo, o.numeral, 'oportunidad_mejora', o.informe_id
	    FROM oportunidades_mejora o
	    UNION ALL
	    SELECT n.norma, n.capitulo, n.numeral, 'no_conformidad', n.informe_id
	    FROM no_conformidades n
	)
	SELECT
	    COALESCE(h.norma, '')    AS norma,
	    COALESCE(h.capitulo, '') AS capitulo,
	    COALESCE(h.numeral, '')  AS numeral,
	    h.tipo,
	    COUNT(*)                 AS total
	FROM hallazgos h
	JOIN informes_auditoria i ON i.id = h.informe_id
	WHERE ($1 = '' OR i.periodo = $1)
	GROUP BY h.norma, h.capitulo, h.numeral, h.tipo
	ORDER BY total DESC, norma, capitulo, numeral`

	rows, err := r.pool.Query(ctx, query, periodo)
	if err != nil {
		return nil, fmt.Errorf("estadisticas.HallazgosPorNumeral: %w", err)
	}
	defer rows.Close()

	var results []repository.ConteoNumeral
	for rows.Next() {
		var row repository.ConteoNumeral
		if err := rows.Scan(&row.Norma, &row.Capitulo, &row.Numeral, &row.Tipo, &row.Total); err != nil {
			return nil, fmt.Errorf("estadisticas.HallazgosPorNumeral scan: %w", err)
		}
		results = append(results, row)
	}
	if results == nil {
		results = []repository.ConteoNumeral{}
	}
	return results, rows.Err()
}

// TotalesInformes devuelve validados y pendientes del período.
// Usa COALESCE para devolver cero si no hay filas.
func (r *EstadisticasRepo) TotalesInformes(ctx context.Context, periodo string) (validados, pendientes int, err error) {
	const query = `
	SELECT
	    COALESCE(COUNT(*) FILTER (WHERE validado), 0)     AS validados,
	    COALESCE(COUNT(*) FILTER (WHERE NOT validado), 0) AS pendientes
	FROM informes_auditoria
	WHERE ($1 = '' OR periodo = $1)`

	err = r.pool.QueryRow(ctx, query, periodo).Scan(&validados, &pendientes)
	if err != nil {
		return 0, 0, fmt.Errorf("estadisticas.TotalesInformes: %w", err)
	}
	return validados, pendientes, nil
}
