package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuitarTildes(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Gestión", "gestion"},
		{"EVALUACIÓN", "evaluacion"},
		{"Vicerrectoría Académica", "vicerrectoria academica"},
		{"Diseño", "diseno"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, quitarTildes(c.entrada), "entrada: %q", c.entrada)
	}
}
