package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ResumenDependencia conteos de informes y hallazgos de una dependencia.
type ResumenDependencia struct {
	DependenciaID      int
	Dependencia        string
	Periodo            string
	Informes           int
	Validados          int
	Fortalezas         int
	Oportunidades      int
	NoConformidades    int
	PorcentajeValidado decimal.Decimal
}

// ConteoNumeral conteo de hallazgos por cláusula ISO y tipo.
type ConteoNumeral struct {
	Norma    string
	Capitulo string
	Numeral  string
	Tipo     string
	Total    int
}

// EstadisticasRepository consultas de solo lectura para agregaciones.
type EstadisticasRepository interface {
	// ResumenPorDependencia agrupa informes y hallazgos por dependencia.
	// periodo vacío agrega todos los períodos.
	ResumenPorDependencia(ctx context.Context, periodo string) ([]ResumenDependencia, error)
	// HallazgosPorNumeral agrupa hallazgos por cláusula ISO (norma, capítulo,
	// numeral) y tipo, ordenados por total descendente.
	HallazgosPorNumeral(ctx context.Context, periodo string) ([]ConteoNumeral, error)
	// TotalesInformes devuelve validados y pendientes del período.
	TotalesInformes(ctx context.Context, periodo string) (validados, pendientes int, err error)
}
