package soundboard_test

import (
	"testing"

	"soundbored/internal/soundboard"

	"github.com/stretchr/testify/assert"
)

func TestResolveAlias(t *testing.T) {
	table := map[string]string{
		"explode": "ame_hates_minecraft",
		"chain":   "explode",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alias resolves", "explode", "ame_hates_minecraft"},
		{"lookup is lowercased", "EXPLODE", "ame_hates_minecraft"},
		{"canonical name is identity", "ame_hates_minecraft", "ame_hates_minecraft"},
		{"unknown name unchanged", "doot", "doot"},
		{"unknown name lowercased", "DOOT", "doot"},
		{"one hop only", "chain", "explode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, soundboard.ResolveAlias(table, tt.input))
		})
	}
}
