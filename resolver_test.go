package translit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacement(t *testing.T) {
	tests := []struct {
		name     string
		c        rune
		expected string
	}{
		{
			name:     "latin small e with acute",
			c:        'é',
			expected: "e",
		},
		{
			name:     "han character with trailing space",
			c:        '北',
			expected: "Bei ",
		},
		{
			name:     "full block to hash",
			c:        '█',
			expected: "#",
		},
		{
			name:     "cyrillic soft sign to apostrophe",
			c:        'ь',
			expected: "'",
		},
		{
			name:     "private use area unmapped",
			c:        '\uE000',
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, replacement(tt.c))
		})
	}
}

// Every replacement handed out for the BMP must be pure ASCII - the
// whole output invariant rests on the table honoring this.
func TestReplacementASCIIOnly(t *testing.T) {
	for c := rune(0x80); c <= maxBMP; c++ {
		rep := replacement(c)
		for i := 0; i < len(rep); i++ {
			if rep[i] > 0x7F {
				t.Fatalf("replacement for %U contains non-ASCII byte 0x%02X", c, rep[i])
			}
		}
	}
}
