package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceFecha(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		salida  string
	}{
		{"ya canonica", "2024-03-01", "2024-03-01"},
		{"rfc3339", "2024-03-01T10:00:00Z", "2024-03-01"},
		{"timestamp sin zona", "2024-03-01T10:00:00", "2024-03-01"},
		{"dia/mes/anio", "01/03/2024", "2024-03-01"},
		{"con espacios", "  2024-03-01  ", "2024-03-01"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := CoerceFecha(c.entrada)
			require.NotNil(t, got)
			assert.Equal(t, c.salida, *got)
		})
	}
}

func TestCoerceFecha_InvalidaDevuelveNil(t *testing.T) {
	for _, entrada := range []string{"", "   ", "no es fecha", "2024-13-45", "31-02-2024"} {
		assert.Nil(t, CoerceFecha(entrada), "entrada: %q", entrada)
	}
}
