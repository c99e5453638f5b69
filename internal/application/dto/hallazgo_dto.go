package dto

// CreateHallazgoRequest entrada para crear un hallazgo bajo un informe.
// El campo variante depende del tipo: razon (fortaleza), proposito
// (oportunidad de mejora) o evidencia (no conformidad); los otros dos se
// ignoran.
type CreateHallazgoRequest struct {
	Norma       string `json:"norma" validate:"required"`
	Capitulo    string `json:"capitulo" validate:"required"`
	Numeral     string `json:"numeral" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
	Razon       string `json:"razon"`
	Proposito   string `json:"proposito"`
	Evidencia   string `json:"evidencia"`
}

// UpdateHallazgoRequest entrada para actualizar un hallazgo.
type UpdateHallazgoRequest struct {
	Norma       string `json:"norma"`
	Capitulo    string `json:"capitulo"`
	Numeral     string `json:"numeral"`
	Descripcion string `json:"descripcion"`
	Razon       string `json:"razon"`
	Proposito   string `json:"proposito"`
	Evidencia   string `json:"evidencia"`
}

// HallazgoResponse salida de un hallazgo. Solo se emite el campo variante
// que corresponde al tipo.
type HallazgoResponse struct {
	ID          int    `json:"id"`
	InformeID   int    `json:"informe_id"`
	Tipo        string `json:"tipo"`
	Norma       string `json:"norma"`
	Capitulo    string `json:"capitulo"`
	Numeral     string `json:"numeral"`
	Descripcion string `json:"descripcion"`
	Razon       string `json:"razon,omitempty"`
	Proposito   string `json:"proposito,omitempty"`
	Evidencia   string `json:"evidencia,omitempty"`
}

// HallazgoListResponse listado de hallazgos de un informe.
type HallazgoListResponse struct {
	Items []HallazgoResponse `json:"items"`
}
