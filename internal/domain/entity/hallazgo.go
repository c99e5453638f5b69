package entity

// Tipos de hallazgo. Cada tipo vive en su propia tabla pero comparte la
// estructura base: referencia a cláusula ISO (norma, capítulo, numeral) más
// descripción y un campo propio del tipo.
const (
	TipoFortaleza     = "fortaleza"
	TipoOportunidad   = "oportunidad_mejora"
	TipoNoConformidad = "no_conformidad"
)

// TipoHallazgoValido verifica pertenencia al conjunto de tipos conocidos.
func TipoHallazgoValido(tipo string) bool {
	switch tipo {
	case TipoFortaleza, TipoOportunidad, TipoNoConformidad:
		return true
	}
	return false
}

// Hallazgo es un hallazgo de auditoría asociado a un informe.
//
// Detalle es el campo propio de cada variante: razón en fortalezas, propósito
// en oportunidades de mejora y evidencia en no conformidades.
type Hallazgo struct {
	ID          int
	InformeID   int
	Tipo        string
	Norma       string // ej. "ISO 9001:2015"
	Capitulo    string
	Numeral     string
	Descripcion string
	Detalle     string
}
