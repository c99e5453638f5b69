package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/infrastructure/goauth"
	"github.com/JuanF88/sistema-CGCAI-sub001/pkg/logger"
)

// Migrador retargetea la llave primaria de un usuario al ID de su identidad en
// el proveedor, junto con todas sus referencias. Lo implementa postgres.TxRunner.
type Migrador interface {
	MigrarUsuarioID(ctx context.Context, usuarioID, nuevoAuthID string) error
}

// AuthUseCase implementa el secuenciador de autenticación y la migración por lotes.
//
// El login es un patrón strangler-fig: cada éxito por la ruta legacy es una
// oportunidad de rellenar el proveedor gestionado, de modo que la columna de
// passwords en texto plano pueda retirarse sin un corte masivo.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	provider    goauth.Provider
	migrador    Migrador
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, provider goauth.Provider, migrador Migrador, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{usuarioRepo: usuarioRepo, provider: provider, migrador: migrador, log: log}
}

// Login produce exactamente uno de tres resultados:
//
//  1. Éxito vía proveedor gestionado: el proveedor acepta las credenciales; se
//     carga la fila de usuarios por auth_user_id y se exige estado activo y rol
//     no vacío, o se revoca la sesión y falla con ErrCuentaInactiva.
//  2. Éxito vía fallback legacy: el proveedor rechaza; se busca la fila por
//     email + password en texto plano + estado activo. Si la fila ya referencia
//     una identidad gestionada se rota su password al suministrado (mejor
//     esfuerzo) y se reintenta el login gestionado. Reintento exitoso devuelve
//     la sesión con Migrated=true; si aún falla, éxito degradado con
//     Legacy=true y sin sesión.
//  3. Fallo: ErrCredencialesInvalidas si ninguna ruta coincide; ErrSinRol si la
//     fila coincide pero no tiene rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	sess, err := uc.provider.SignInWithPassword(ctx, in.Email, in.Password)
	if err == nil {
		return uc.loginGestionado(ctx, sess)
	}
	if !errors.Is(err, goauth.ErrCredenciales) {
		// Fallo de infraestructura del proveedor: el fallback legacy sigue
		// siendo autoritativo, así que se continúa con él.
		uc.log.Warn().Err(err).Str("email", in.Email).Msg("proveedor de auth no disponible, intentando ruta legacy")
	}
	return uc.loginLegacy(ctx, in)
}

func (uc *AuthUseCase) loginGestionado(ctx context.Context, sess *goauth.Session) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByAuthUserID(ctx, sess.User.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por identidad: %w", err)
	}
	if u == nil || !u.Activo() || u.Rol == "" {
		// La sesión recién emitida no debe quedar viva para una cuenta inutilizable.
		if err := uc.provider.SignOut(ctx, sess.AccessToken); err != nil {
			uc.log.Warn().Err(err).Msg("no se pudo revocar la sesión de cuenta inactiva")
		}
		return nil, domain.ErrCuentaInactiva
	}
	return &dto.LoginResponse{
		Token:        sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		Usuario:      *ToUsuarioResponse(u),
	}, nil
}

func (uc *AuthUseCase) loginLegacy(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmailAndPassword(ctx, in.Email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("login legacy: %w", err)
	}
	if u == nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	if u.Rol == "" {
		return nil, domain.ErrSinRol
	}

	// Migración oportunista: si la fila ya referencia una identidad gestionada,
	// rotar su password al suministrado. Mejor esfuerzo: un fallo aquí no le
	// quita al usuario el login legacy que ya validó, y es aislado por usuario.
	if u.AuthUserID != "" {
		if err := uc.provider.AdminUpdateUserPassword(ctx, u.AuthUserID, in.Password); err != nil {
			uc.log.Warn().Err(err).Str("usuario", u.ID).Msg("migración de password falló, se continúa con sesión legacy")
		}
	}

	// Reintento gestionado con las mismas credenciales: con el password recién
	// rotado debería entrar. Dos logins concurrentes del mismo usuario pueden
	// rotar ambos; convergen al mismo password, así que no se coordina.
	sess, err := uc.provider.SignInWithPassword(ctx, in.Email, in.Password)
	if err != nil {
		// Sin identidad que actualizar (o rotación fallida): éxito degradado.
		return &dto.LoginResponse{
			Usuario: *ToUsuarioResponse(u),
			Legacy:  true,
		}, nil
	}
	return &dto.LoginResponse{
		Token:        sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		Usuario:      *ToUsuarioResponse(u),
		Migrated:     true,
	}, nil
}

// Logout revoca la sesión en el proveedor. Idempotente: un token ya inválido
// no es un error.
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return uc.provider.SignOut(ctx, accessToken)
}

// MigrarUsuarios crea una identidad gestionada para cada usuario que no tenga
// auth_user_id, con un password descartable y el metadato
// needs_password_migration, y retargetea su llave primaria a la identidad
// nueva. Los fallos por fila son aislados: una fila que falla nunca aborta el
// lote. Devuelve tres buckets disjuntos; cada fila aparece exactamente en uno.
func (uc *AuthUseCase) MigrarUsuarios(ctx context.Context) (*dto.MigracionResponse, error) {
	usuarios, err := uc.usuarioRepo.ListTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios para migración: %w", err)
	}

	out := &dto.MigracionResponse{
		Exitosos: []dto.MigracionItem{},
		Omitidos: []dto.MigracionItem{},
		Errores:  []dto.MigracionItem{},
	}
	for _, u := range usuarios {
		item := dto.MigracionItem{UsuarioID: u.ID, Email: u.Email}

		if u.AuthUserID != "" {
			item.AuthUserID = u.AuthUserID
			out.Omitidos = append(out.Omitidos, item)
			continue
		}

		identidad, err := uc.provider.AdminCreateUser(ctx, u.Email, uuid.New().String(),
			map[string]interface{}{"needs_password_migration": true})
		if err != nil {
			item.Error = err.Error()
			out.Errores = append(out.Errores, item)
			uc.log.Error().Err(err).Str("email", u.Email).Msg("crear identidad gestionada")
			continue
		}
		item.AuthUserID = identidad.ID

		if err := uc.migrador.MigrarUsuarioID(ctx, u.ID, identidad.ID); err != nil {
			item.Error = err.Error()
			out.Errores = append(out.Errores, item)
			uc.log.Error().Err(err).Str("usuario", u.ID).Msg("retargetear id de usuario")
			continue
		}
		out.Exitosos = append(out.Exitosos, item)
	}

	uc.log.Info().
		Int("exitosos", len(out.Exitosos)).
		Int("omitidos", len(out.Omitidos)).
		Int("errores", len(out.Errores)).
		Msg("migración por lotes terminada")
	return out, nil
}

// ToUsuarioResponse mapea la entidad a su DTO público.
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Email:         u.Email,
		Rol:           u.Rol,
		Estado:        u.Estado,
		AuthUserID:    u.AuthUserID,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		DependenciaID: u.DependenciaID,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
