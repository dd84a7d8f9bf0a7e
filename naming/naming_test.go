package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yrbane/acidgrid/style"
)

func TestTitleDeterministic(t *testing.T) {
	for _, id := range style.IDs() {
		a := Title(id, 42)
		b := Title(id, 42)
		assert.Equal(t, a, b, id)
		assert.NotEmpty(t, a, id)
	}
}

func TestTitleVariesWithSeed(t *testing.T) {
	seen := map[string]bool{}
	for seed := int64(1); seed <= 20; seed++ {
		seen[Title("techno", seed)] = true
	}
	assert.Greater(t, len(seen), 10, "twenty seeds should give more than ten distinct titles")
}

func TestTitleUnknownStyleFallsBack(t *testing.T) {
	assert.NotEmpty(t, Title("polka", 7))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Burning Paradise", "Burning_Paradise"},
		{"DESTROY THE KICK", "DESTROY_THE_KICK"},
		{"exp_sequence", "exp_sequence"},
		{"Ocean at Dawn 042", "Ocean_at_Dawn_042"},
		{"  weird/name?  ", "weirdname"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.title), tt.title)
	}
}
