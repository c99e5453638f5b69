package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxRunner ejecuta operaciones multi-fila dentro de una transacción PostgreSQL.
//
// La operación principal es MigrarUsuarioID: el sistema original la delegaba a
// un procedimiento almacenado porque usuarios.id está referenciado por llaves
// foráneas y el motor cachea la llave, así que un UPDATE directo de la columna
// no es seguro. Aquí se re-expresa como una transacción explícita con
// constraints diferidos que retargetea la llave y todos los dependientes juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// MigrarUsuarioID cambia la llave primaria de un usuario al ID de su identidad
// en el proveedor gestionado, actualizando en la misma transacción todas las
// tablas que la referencian y dejando auth_user_id apuntando a la identidad.
func (r *TxRunner) MigrarUsuarioID(ctx context.Context, usuarioID, nuevoAuthID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Las FK hacia usuarios.id deben estar declaradas DEFERRABLE para que el
	// retarget de padre e hijos se valide al commit y no por sentencia.
	if _, err := tx.Exec(ctx, `SET CONSTRAINTS ALL DEFERRED`); err != nil {
		return fmt.Errorf("deferir constraints: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE usuarios
		SET id = $2::uuid, auth_user_id = $2::uuid, updated_at = now()
		WHERE id = $1::uuid`, usuarioID, nuevoAuthID)
	if err != nil {
		return fmt.Errorf("retarget usuarios.id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("usuario %s no existe", usuarioID)
	}

	dependientes := []struct{ tabla, columna string }{
		{"informes_auditoria", "usuario_id"},
		{"evaluaciones_auditores", "usuario_id"},
		{"encuestas_auditores", "usuario_id"},
	}
	for _, d := range dependientes {
		query := fmt.Sprintf(`UPDATE %s SET %s = $2::uuid WHERE %s = $1::uuid`,
			d.tabla, d.columna, d.columna)
		if _, err := tx.Exec(ctx, query, usuarioID, nuevoAuthID); err != nil {
			return fmt.Errorf("retarget %s.%s: %w", d.tabla, d.columna, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
