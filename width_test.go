package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptWidth(t *testing.T) {
	tests := []struct {
		prompt string
		want   int
	}{
		{"", 0},
		{"$> ", 3},
		{"日> ", 4},
		{"日本語$ ", 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, promptWidth(tt.prompt), "prompt %q", tt.prompt)
	}
}
