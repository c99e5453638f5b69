package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/pkg/jwt"
)

// Locals keys del guard en Fiber.
const (
	LocalAuthUserID = "auth_user_id"
	LocalEmail      = "email"
	LocalToken      = "token"
	LocalUsuario    = "usuario"
	LocalRol        = "rol"
)

// usuarioResolver es el contrato mínimo que necesita el guard para cargar la
// fila de usuarios. Lo implementa el repositorio; el uso de interfaz evita el
// import circular y permite fakes en tests.
type usuarioResolver interface {
	GetByAuthUserID(ctx context.Context, authUserID string) (*entity.Usuario, error)
}

// AuthMiddleware valida el Bearer Token emitido por el proveedor gestionado y
// extrae auth_user_id y email a c.Locals. Sin sesión válida responde 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		authUserID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAuthUserID, authUserID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// LoadUsuario resuelve la sesión a la fila de usuarios por auth_user_id y la
// deja en c.Locals. Debe usarse DESPUÉS de AuthMiddleware.
//
// Una sesión válida sin fila correspondiente NO es error: el usuario queda nil
// y los handlers privilegiados deben verificar rol por su cuenta (RequireRole).
// Un fallo de infraestructura al consultar responde 503.
func LoadUsuario(resolver usuarioResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authUserID := GetAuthUserID(c)
		if authUserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "auth_user_id no encontrado en el token"})
		}
		u, err := resolver.GetByAuthUserID(c.Context(), authUserID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "USER_LOOKUP_FAILED", Message: "no se pudo resolver el usuario, intente más tarde"})
		}
		if u != nil {
			c.Locals(LocalUsuario, u)
			c.Locals(LocalRol, u.Rol)
		}
		return c.Next()
	}
}

// RequireRole autoriza el acceso si el rol del usuario pertenece a la lista.
// Debe usarse DESPUÉS de LoadUsuario. Sin rol responde 401; rol no permitido, 403.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRole(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el usuario no tiene rol asignado"})
		}
		for _, a := range allowed {
			if rol == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetAuthUserID devuelve el auth_user_id del contexto (después de AuthMiddleware).
func GetAuthUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalAuthUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetToken devuelve el access token crudo del contexto.
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del usuario cargado, o vacío si no hay usuario.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsuario devuelve el usuario cargado por LoadUsuario; puede ser nil.
func GetUsuario(c *fiber.Ctx) *entity.Usuario {
	v := c.Locals(LocalUsuario)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.Usuario)
	return u
}
