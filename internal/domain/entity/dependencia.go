package entity

import "time"

// Dependencia representa una unidad organizacional auditable.
// La referencian usuarios, informes y el plan de auditoría.
type Dependencia struct {
	ID        int
	Nombre    string
	Sigla     string
	Activa    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
