package dto

import (
	"strings"
	"time"
)

// formatosFecha formatos que las vistas históricamente enviaron al servidor.
var formatosFecha = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// CoerceFecha normaliza una fecha de entrada al formato canónico YYYY-MM-DD.
// Una cadena vacía o imposible de interpretar devuelve nil, nunca error: una
// fecha inválida se guarda como NULL.
func CoerceFecha(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			out := t.Format("2006-01-02")
			return &out
		}
	}
	return nil
}
