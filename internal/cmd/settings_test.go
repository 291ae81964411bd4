package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyValues(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"r", []string{"r"}},
		{"!, ctrl+r", []string{"!", "ctrl+r"}},
		{" up ,, k ", []string{"up", "k"}},
		{",", []string{","}},
		{"  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeyValues(tt.input))
		})
	}
}
