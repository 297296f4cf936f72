package services_test

import (
	"testing"

	"github.com/sbilibin2017/dream-social/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "crystal castle",
			text: "I saw a crystal castle floating above clouds",
			want: []string{"crystal", "castle", "floating", "above", "clouds"},
		},
		{
			name: "punctuation and case",
			text: "Castle! CASTLE, castle's... crystal-lake",
			want: []string{"castle", "castles", "crystallake"},
		},
		{
			name: "symbols stripped",
			text: "dream+castle $money <<ocean>> night_sky",
			want: []string{"dreamcastle", "money", "ocean", "night_sky"},
		},
		{
			name: "only short words",
			text: "I saw a cat fly by the sea",
			want: []string{},
		},
		{
			name: "exactly five runes kept, four dropped",
			text: "dream tree",
			want: []string{"dream"},
		},
		{
			name: "multibyte runes counted as characters",
			text: "ночью замок",
			want: []string{"ночью", "замок"},
		},
		{
			name: "empty",
			text: "   ",
			want: []string{},
		},
		{
			name: "percent stripped, underscore kept",
			text: "100%_magic",
			want: []string{"100_magic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.ExtractKeywords(tt.text))
		})
	}
}
