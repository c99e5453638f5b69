package entity

import "time"

// InformeAuditoria es el informe que un auditor levanta sobre una dependencia.
// Pertenece a exactamente un usuario (auditor) y una dependencia, y es dueño de
// cero o más hallazgos (fortalezas, oportunidades de mejora, no conformidades).
type InformeAuditoria struct {
	ID               int
	UsuarioID        string
	DependenciaID    int
	Objetivo         string
	Criterios        string
	Conclusiones     string
	Recomendaciones  string
	FechaAuditoria   *string // YYYY-MM-DD; nil si no se pudo normalizar
	FechaSeguimiento *string // YYYY-MM-DD; nil = sin seguimiento programado
	Acompanantes     []string
	Periodo          string // ej. "2024-1"
	Validado         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
