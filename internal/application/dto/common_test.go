package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPage(t *testing.T) {
	casos := []struct {
		nombre string
		in     PageRequest
		out    PageRequest
	}{
		{"cero toma defaults", PageRequest{}, PageRequest{Limit: 20, Offset: 0}},
		{"limite excesivo se acota", PageRequest{Limit: 500, Offset: 40}, PageRequest{Limit: 100, Offset: 40}},
		{"offset negativo se corrige", PageRequest{Limit: 10, Offset: -5}, PageRequest{Limit: 10, Offset: 0}},
		{"valores validos se conservan", PageRequest{Limit: 50, Offset: 100}, PageRequest{Limit: 50, Offset: 100}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			c.in.DefaultPage()
			assert.Equal(t, c.out, c.in)
		})
	}
}
