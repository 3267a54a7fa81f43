package battlesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{"lowercases", "Annika", "annika"},
		{"strips punctuation", "Ann-Ika", "annika"},
		{"strips spaces", "Big Bob 99", "bigbob99"},
		{"keeps digits", "2021", "2021"},
		{"strips non-ascii", "Pokémon Fan", "pokmonfan"},
		{"only punctuation", "-_- !", ""},
		{"empty", "", ""},
		{"already an id", "annika", "annika"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToID(tt.input))
		})
	}
}

func TestToID_Idempotent(t *testing.T) {
	inputs := []string{"Annika", "Ann-Ika", " B o b ", "Ünïcödé", "x_Y_z 123", "", "!!!", "ALLCAPS"}
	for _, s := range inputs {
		once := ToID(s)
		assert.Equal(t, once, ToID(string(once)), "ToID not idempotent for %q", s)
	}
}

func TestToID_CaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, ToID("annika"), ToID("Ann-Ika"))
	assert.Equal(t, ToID("annika"), ToID("ANNIKA"))
	assert.Equal(t, ToID("annika"), ToID("a.n.n.i.k.a"))
}
