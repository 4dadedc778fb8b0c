package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagEmoji(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"FR", "🇫🇷"},
		{"fr", "🇫🇷"},
		{"jP", "🇯🇵"},
		{"US", "🇺🇸"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, FlagEmoji(tt.code))
		})
	}
}

func TestFlagEmoji_CodePoints(t *testing.T) {
	runes := []rune(FlagEmoji("de"))
	if assert.Len(t, runes, 2) {
		assert.Equal(t, 'D'+127397, runes[0])
		assert.Equal(t, 'E'+127397, runes[1])
	}
}

func TestFlagEmoji_Deterministic(t *testing.T) {
	assert.Equal(t, FlagEmoji("JP"), FlagEmoji("JP"))
}

func TestFlagEmoji_MalformedCodeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		got := FlagEmoji("1x?")
		assert.Len(t, []rune(got), 3)
	})
}
