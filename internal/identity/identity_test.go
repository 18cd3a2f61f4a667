package identity_test

import (
	"math"
	"testing"

	"github.com/nfrund/avatarkit/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var palette = []string{
	"#0", "#1", "#2", "#3", "#4", "#5", "#6", "#7", "#8", "#9",
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int32
	}{
		{name: "empty", in: "", want: 0},
		{name: "single char", in: "a", want: 97},
		{name: "two chars", in: "ab", want: 3105},
		{name: "no overflow", in: "hello", want: 99162322},
		{name: "wraps negative", in: "Hello World", want: -862545276},
		{name: "wraps to min int32", in: "polygenelubricants", want: math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.Hash(tt.in))
		})
	}
}

func TestHash_UsesUTF16CodeUnits(t *testing.T) {
	// U+1F600 is a surrogate pair (0xD83D 0xDE00) in UTF-16.
	want := int32(0xDE00) + ((int32(0xD83D) << 5) - int32(0xD83D))
	assert.Equal(t, want, identity.Hash("\U0001F600"))
}

func TestColorFor(t *testing.T) {
	t.Run("empty name selects first entry", func(t *testing.T) {
		assert.Equal(t, "#0", identity.ColorFor("", palette))
	})

	t.Run("min int32 hash does not overflow abs", func(t *testing.T) {
		// abs(-2147483648) % 10 == 8
		assert.Equal(t, "#8", identity.ColorFor("polygenelubricants", palette))
	})

	t.Run("negative hash uses absolute value", func(t *testing.T) {
		// abs(-862545276) % 10 == 6
		assert.Equal(t, "#6", identity.ColorFor("Hello World", palette))
	})

	t.Run("deterministic", func(t *testing.T) {
		names := []string{"Ada Lovelace", "Jane Doe", "Cher", "  spaced  out ", "Zoë"}
		for _, name := range names {
			first := identity.ColorFor(name, palette)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, identity.ColorFor(name, palette), name)
			}
		}
	})

	t.Run("always within palette", func(t *testing.T) {
		names := []string{"a", "Hello World", "polygenelubricants", "x y z", "日本語の名前"}
		for n := 1; n <= len(palette); n++ {
			sub := palette[:n]
			for _, name := range names {
				assert.Contains(t, sub, identity.ColorFor(name, sub))
			}
		}
	})

	t.Run("empty palette", func(t *testing.T) {
		_, err := identity.Pick("Ada", nil)
		require.ErrorIs(t, err, identity.ErrEmptyPalette)
		assert.Panics(t, func() { identity.ColorFor("Ada", nil) })
	})
}

func TestInitialsFor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "two words", in: "Jane Doe", want: "JD"},
		{name: "single word", in: "Cher", want: "C"},
		{name: "empty", in: "", want: ""},
		{name: "only spaces", in: "   ", want: ""},
		{name: "three words truncated", in: "Ada King Lovelace", want: "AK"},
		{name: "lowercase", in: "ada lovelace", want: "AL"},
		{name: "extra whitespace", in: "  grace   hopper ", want: "GH"},
		{name: "tabs and newlines", in: "alan\tmathison\nturing", want: "AM"},
		{name: "non ascii", in: "élodie ünal", want: "ÉÜ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.InitialsFor(tt.in))
		})
	}
}
