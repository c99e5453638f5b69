package repository

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia para usuarios.
// Las consultas que no encuentran fila devuelven (nil, nil); el error se
// reserva para fallos de infraestructura.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetByAuthUserID(ctx context.Context, authUserID string) (*entity.Usuario, error)
	// GetByEmailAndPassword compara contra la columna legacy en texto plano y
	// exige estado activo. Solo la usa el fallback del login.
	GetByEmailAndPassword(ctx context.Context, email, password string) (*entity.Usuario, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Usuario, error)
	// ListTodos devuelve todos los usuarios sin paginar (lectura privilegiada
	// para la migración por lotes).
	ListTodos(ctx context.Context) ([]*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	Delete(ctx context.Context, id string) error
}
