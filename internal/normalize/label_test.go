package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelLabels(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"legacy dual bunk compound expands to three labels",
			"GrandLiner 2/3BK",
			[]string{"GrandLiner", "GrandLiner 2BK", "GrandLiner 3BK"},
		},
		{
			"compound survives case and spacing variants",
			"  grandliner   2/3bk ",
			[]string{"GrandLiner", "GrandLiner 2BK", "GrandLiner 3BK"},
		},
		{
			"multi-word label gets base token plus full label",
			"Voyager 450",
			[]string{"Voyager", "Voyager 450"},
		},
		{
			"single token stays single",
			"Voyager",
			[]string{"Voyager"},
		},
		{
			"empty yields nothing",
			"   ",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModelLabels(tt.raw))
		})
	}
}

func TestBaseLabel(t *testing.T) {
	assert.Equal(t, "Voyager 450", BaseLabel("Voyager  450"))
	assert.Equal(t, "GrandLiner", BaseLabel("GrandLiner 2/3BK"))
	assert.Equal(t, "", BaseLabel(""))
}
