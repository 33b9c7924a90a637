package seed

import (
	_ "embed"
	"fmt"
	"os"

	"wordtrainer/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWords []byte

type file struct {
	Words []domain.WordPair `yaml:"words"`
}

// Load returns the shared dictionary. An empty path selects the built-in list.
func Load(path string) ([]domain.WordPair, error) {
	data := defaultWords
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes a seed document
func Parse(data []byte) ([]domain.WordPair, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("seed has no words")
	}
	return f.Words, nil
}
