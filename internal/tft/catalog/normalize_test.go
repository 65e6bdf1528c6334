package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Sunfire Board", "sunfire board"},
		{"right single quote", "Pandora’s Items", "pandoras items"},
		{"left single quote", "Pandora‘s Items", "pandoras items"},
		{"backtick", "Pandora`s Items", "pandoras items"},
		{"plain apostrophe", "Pandora's Items", "pandoras items"},
		{"no apostrophe", "Pandoras Items", "pandoras items"},
		{"collapses whitespace", "  Component   Grab  Bag ", "component grab bag"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestNearestName(t *testing.T) {
	db := &DB{Augments: map[string]Augment{
		"Sunfire Board":      {Score: 66},
		"Component Grab Bag": {Score: 62},
		"Pandora's Items":    {Score: 58},
	}}

	got, ok := db.NearestName("Sunfire Bord")
	assert.True(t, ok)
	assert.Equal(t, "Sunfire Board", got)

	// Punctuation variants are distance zero after normalization.
	got, ok = db.NearestName("Pandora’s Items")
	assert.True(t, ok)
	assert.Equal(t, "Pandora's Items", got)

	_, ok = db.NearestName("Completely Unrelated Augment")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	db := &DB{Augments: map[string]Augment{
		"Exiles":        {},
		"Blue Battery":  {},
		"Sunfire Board": {},
	}}
	assert.Equal(t, []string{"Blue Battery", "Exiles", "Sunfire Board"}, db.Names())
}
