package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUsuarioNotFound       = errors.New("usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrCuentaInactiva        = errors.New("cuenta inactiva o sin asignación")
	ErrSinRol                = errors.New("el usuario no tiene rol asignado")
	ErrNoAutenticado         = errors.New("no autenticado")
	ErrProhibido             = errors.New("acceso denegado")
	ErrValidacion            = errors.New("entrada inválida")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrConflicto             = errors.New("conflicto por referencias existentes")
	ErrUpstream              = errors.New("fallo del servicio externo")
)
