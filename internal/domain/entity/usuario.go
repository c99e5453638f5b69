package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolAuditor = "auditor"
	RolGestor  = "gestor"
	RolVisor   = "visor"
)

// Estados válidos para Usuario.
const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// Usuario representa un usuario del sistema de auditorías.
//
// Password es la columna legacy en texto plano: se conserva solo mientras dura
// la migración hacia el proveedor de autenticación gestionado. AuthUserID es la
// referencia a la identidad en ese proveedor; vacío significa aún no migrado.
// Un usuario sin Rol no puede iniciar sesión.
type Usuario struct {
	ID            string
	Email         string
	Password      string // legacy, texto plano; vacío una vez retirada la columna
	Rol           string // admin, auditor, gestor, visor
	Estado        string // activo, inactivo
	AuthUserID    string // identidad en el proveedor gestionado; "" = sin migrar
	Nombre        string
	Apellido      string
	DependenciaID *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Activo indica si el usuario puede autenticarse.
func (u *Usuario) Activo() bool {
	return u.Estado == EstadoActivo
}

// RolValido verifica pertenencia del rol al conjunto permitido.
func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolAuditor, RolGestor, RolVisor:
		return true
	}
	return false
}
