package dto

import "github.com/shopspring/decimal"

// ResumenDependenciaDTO conteos de una dependencia en un período.
type ResumenDependenciaDTO struct {
	DependenciaID      int             `json:"dependencia_id"`
	Dependencia        string          `json:"dependencia"`
	Periodo            string          `json:"periodo,omitempty"`
	Informes           int             `json:"informes"`
	Validados          int             `json:"validados"`
	Fortalezas         int             `json:"fortalezas"`
	Oportunidades      int             `json:"oportunidades"`
	NoConformidades    int             `json:"no_conformidades"`
	PorcentajeValidado decimal.Decimal `json:"porcentaje_validado"`
}

// EstadisticasResponse agregación general del período.
type EstadisticasResponse struct {
	Periodo      string                  `json:"periodo,omitempty"`
	Validados    int                     `json:"validados"`
	Pendientes   int                     `json:"pendientes"`
	Dependencias []ResumenDependenciaDTO `json:"dependencias"`
}

// ConteoNumeralDTO conteo de hallazgos por cláusula ISO y tipo.
type ConteoNumeralDTO struct {
	Norma    string `json:"norma"`
	Capitulo string `json:"capitulo"`
	Numeral  string `json:"numeral"`
	Tipo     string `json:"tipo"`
	Total    int    `json:"total"`
}

// HallazgosAgregadosResponse agregación de hallazgos por numeral ISO.
type HallazgosAgregadosResponse struct {
	Periodo string             `json:"periodo,omitempty"`
	Items   []ConteoNumeralDTO `json:"items"`
}

// PeriodosResponse períodos con informes registrados.
type PeriodosResponse struct {
	Periodos []string `json:"periodos"`
}
