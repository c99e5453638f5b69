package dto

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login.
//
// Token está vacío en una sesión degradada (Legacy=true): el usuario validó
// contra la columna legacy pero aún no tiene identidad en el proveedor.
// Migrated=true indica que este login completó la migración del password.
type LoginResponse struct {
	Token        string          `json:"token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Usuario      UsuarioResponse `json:"usuario"`
	Migrated     bool            `json:"migrated,omitempty"`
	Legacy       bool            `json:"legacy,omitempty"`
}

// MigracionItem resultado individual de la migración por lotes.
type MigracionItem struct {
	UsuarioID  string `json:"usuario_id"`
	Email      string `json:"email"`
	AuthUserID string `json:"auth_user_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// MigracionResponse buckets disjuntos de la migración por lotes: cada fila
// aparece exactamente en uno.
type MigracionResponse struct {
	Exitosos []MigracionItem `json:"exitosos"`
	Omitidos []MigracionItem `json:"omitidos"`
	Errores  []MigracionItem `json:"errores"`
}
