package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/auth"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// UsuarioUseCase casos de uso administrativos sobre usuarios.
//
// El password de CreateUsuarioRequest se escribe en la columna legacy tal
// cual; el proveedor gestionado recibe la identidad en la migración por lotes
// o en el primer login legacy exitoso.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso con el puerto de persistencia.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create crea un usuario activo. Devuelve domain.ErrValidacion si el rol no es
// válido y domain.ErrDuplicado si el email ya existe.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if !entity.RolValido(in.Rol) {
		return nil, domain.ErrValidacion
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:            uuid.New().String(),
		Email:         in.Email,
		Password:      in.Password,
		Rol:           in.Rol,
		Estado:        entity.EstadoActivo,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		DependenciaID: in.DependenciaID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return auth.ToUsuarioResponse(u), nil
}

// List lista usuarios con paginación.
func (uc *UsuarioUseCase) List(ctx context.Context, limit, offset int) (*dto.UsuarioListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUsuarioResponse(u))
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica los campos presentes de la petición. Un rol o estado fuera del
// conjunto permitido devuelve domain.ErrValidacion.
func (uc *UsuarioUseCase) Update(ctx context.Context, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Rol != "" {
		if !entity.RolValido(in.Rol) {
			return nil, domain.ErrValidacion
		}
		u.Rol = in.Rol
	}
	if in.Estado != "" {
		if in.Estado != entity.EstadoActivo && in.Estado != entity.EstadoInactivo {
			return nil, domain.ErrValidacion
		}
		u.Estado = in.Estado
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Nombre != "" {
		u.Nombre = in.Nombre
	}
	if in.Apellido != "" {
		u.Apellido = in.Apellido
	}
	if in.DependenciaID != nil {
		u.DependenciaID = in.DependenciaID
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// Delete elimina un usuario. Devuelve domain.ErrConflicto si está referenciado.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
