package seed

import (
	"os"
	"path/filepath"
	"testing"

	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	pairs, err := Load("")

	require.NoError(t, err)
	assert.Len(t, pairs, 10)
	assert.Contains(t, pairs, domain.WordPair{Target: "Hello", Translation: "Привет"})
	assert.Contains(t, pairs, domain.WordPair{Target: "Friend", Translation: "Друг"})

	seen := map[string]bool{}
	for _, p := range pairs {
		key := domain.NormalizeWord(p.Target)
		assert.False(t, seen[key], "duplicate seed word %s", key)
		seen[key] = true
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  - target: Moon\n    translation: Луна\n"), 0o600))

	pairs, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{{Target: "Moon", Translation: "Луна"}}, pairs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "invalid yaml", input: "words: ["},
		{name: "no words", input: "words: []"},
		{name: "empty document", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}
