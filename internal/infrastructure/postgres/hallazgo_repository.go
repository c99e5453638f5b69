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

var _ repository.HallazgoRepository = (*HallazgoRepo)(nil)

// tablaHallazgo mapea el tipo de hallazgo a su tabla y a la columna propia de
// la variante. El mapa actúa además como whitelist: nunca se interpola en SQL
// un nombre que no esté aquí.
type tablaHallazgo struct {
	tabla   string
	detalle string
}

var tablasHallazgo = map[string]tablaHallazgo{
	entity.TipoFortaleza:     {tabla: "fortalezas", detalle: "razon"},
	entity.TipoOportunidad:   {tabla: "oportunidades_mejora", detalle: "proposito"},
	entity.TipoNoConformidad: {tabla: "no_conformidades", detalle: "evidencia"},
}

// HallazgoRepo implementación del puerto HallazgoRepository sobre PostgreSQL.
// Los tres tipos comparten columnas base; solo cambia tabla y columna de detalle.
type HallazgoRepo struct {
	pool *pgxpool.Pool
}

// NewHallazgoRepository construye el adaptador de persistencia para hallazgos.
func NewHallazgoRepository(pool *pgxpool.Pool) *HallazgoRepo {
	return &HallazgoRepo{pool: pool}
}

func resolverTabla(tipo string) (tablaHallazgo, error) {
	t, ok := tablasHallazgo[tipo]
	if !ok {
		return tablaHallazgo{}, fmt.Errorf("tipo de hallazgo desconocido %q: %w", tipo, domain.ErrValidacion)
	}
	return t, nil
}

// Create persiste un hallazgo en la tabla de su tipo y devuelve el ID generado.
func (r *HallazgoRepo) Create(ctx context.Context, h *entity.Hallazgo) (*entity.Hallazgo, error) {
	t, err := resolverTabla(h.Tipo)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (informe_id, norma, capitulo, numeral, descripcion, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, t.tabla, t.detalle)
	err = r.pool.QueryRow(ctx, query,
		h.InformeID, h.Norma, h.Capitulo, h.Numeral, h.Descripcion, h.Detalle,
	).Scan(&h.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflicto
		}
		return nil, fmt.Errorf("insert %s: %w", t.tabla, err)
	}
	return h, nil
}

// GetByID obtiene un hallazgo por tipo e ID.
func (r *HallazgoRepo) GetByID(ctx context.Context, tipo string, id int) (*entity.Hallazgo, error) {
	t, err := resolverTabla(tipo)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, informe_id, COALESCE(norma, ''), COALESCE(capitulo, ''),
		       COALESCE(numeral, ''), COALESCE(descripcion, ''), COALESCE(%s, '')
		FROM %s WHERE id = $1`, t.detalle, t.tabla)
	h := entity.Hallazgo{Tipo: tipo}
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.InformeID, &h.Norma, &h.Capitulo, &h.Numeral, &h.Descripcion, &h.Detalle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.tabla, err)
	}
	return &h, nil
}

// ListByInforme lista los hallazgos de un tipo para un informe.
func (r *HallazgoRepo) ListByInforme(ctx context.Context, tipo string, informeID int) ([]*entity.Hallazgo, error) {
	t, err := resolverTabla(tipo)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, informe_id, COALESCE(norma, ''), COALESCE(capitulo, ''),
		       COALESCE(numeral, ''), COALESCE(descripcion, ''), COALESCE(%s, '')
		FROM %s WHERE informe_id = $1 ORDER BY id`, t.detalle, t.tabla)
	rows, err := r.pool.Query(ctx, query, informeID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.tabla, err)
	}
	defer rows.Close()
	var list []*entity.Hallazgo
	for rows.Next() {
		h := entity.Hallazgo{Tipo: tipo}
		if err := rows.Scan(
			&h.ID, &h.InformeID, &h.Norma, &h.Capitulo, &h.Numeral, &h.Descripcion, &h.Detalle,
		); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.tabla, err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza un hallazgo.
func (r *HallazgoRepo) Update(ctx context.Context, h *entity.Hallazgo) error {
	t, err := resolverTabla(h.Tipo)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		UPDATE %s SET norma = $2, capitulo = $3, numeral = $4, descripcion = $5, %s = $6
		WHERE id = $1`, t.tabla, t.detalle)
	tag, err := r.pool.Exec(ctx, query, h.ID, h.Norma, h.Capitulo, h.Numeral, h.Descripcion, h.Detalle)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.tabla, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un hallazgo por tipo e ID.
func (r *HallazgoRepo) Delete(ctx context.Context, tipo string, id int) error {
	t, err := resolverTabla(tipo)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.tabla), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", t.tabla, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
