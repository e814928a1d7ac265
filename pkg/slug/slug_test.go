package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Smart Home", "smart-home"},
		{"punctuation", "Gadgets & Gear!", "gadgets-gear"},
		{"extra whitespace", "  Desk   Toys  ", "desk-toys"},
		{"already slugged", "travel-gear", "travel-gear"},
		{"digits", "Top 10 Finds", "top-10-finds"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.in))
		})
	}
}
