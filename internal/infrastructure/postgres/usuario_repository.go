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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id::text, email, COALESCE(password, ''), COALESCE(rol, ''), estado,
		COALESCE(auth_user_id::text, ''), COALESCE(nombre, ''), COALESCE(apellido, ''),
		dependencia_id, created_at, updated_at`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, password, rol, estado, auth_user_id, nombre, apellido, dependencia_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.Password, u.Rol, u.Estado, u.AuthUserID,
		u.Nombre, u.Apellido, u.DependenciaID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE email = $1 LIMIT 1`
	return r.scanOne(ctx, query, email)
}

// GetByAuthUserID obtiene un usuario por su identidad en el proveedor gestionado.
func (r *UsuarioRepo) GetByAuthUserID(ctx context.Context, authUserID string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE auth_user_id = $1::uuid LIMIT 1`
	return r.scanOne(ctx, query, authUserID)
}

// GetByEmailAndPassword compara contra la columna legacy en texto plano; exige
// estado activo. La comparación vive en la base para calcar el flujo legacy.
func (r *UsuarioRepo) GetByEmailAndPassword(ctx context.Context, email, password string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + `
		FROM usuarios WHERE email = $1 AND password = $2 AND estado = 'activo' LIMIT 1`
	return r.scanOne(ctx, query, email, password)
}

// List lista usuarios con paginación.
func (r *UsuarioRepo) List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + `
		FROM usuarios ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanMany(ctx, query, limit, offset)
}

// ListTodos devuelve todos los usuarios (lectura privilegiada para la migración).
func (r *UsuarioRepo) ListTodos(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios ORDER BY created_at`
	return r.scanMany(ctx, query)
}

// Update actualiza un usuario.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios
		SET email = $2, password = $3, rol = $4, estado = $5,
		    auth_user_id = NULLIF($6, '')::uuid, nombre = $7, apellido = $8,
		    dependencia_id = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		u.ID, u.Email, u.Password, u.Rol, u.Estado, u.AuthUserID,
		u.Nombre, u.Apellido, u.DependenciaID, u.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID. Devuelve domain.ErrConflicto si hay
// informes u otras filas que lo referencian.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflicto
		}
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, args ...interface{}) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Email, &u.Password, &u.Rol, &u.Estado, &u.AuthUserID,
		&u.Nombre, &u.Apellido, &u.DependenciaID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

func (r *UsuarioRepo) scanMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Usuario, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Password, &u.Rol, &u.Estado, &u.AuthUserID,
			&u.Nombre, &u.Apellido, &u.DependenciaID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
