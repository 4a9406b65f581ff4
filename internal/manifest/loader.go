package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmpty = errors.New("manifest has no assets")

type file struct {
	Assets Manifest `yaml:"assets"`
}

// Load reads a YAML manifest from path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func Parse(data []byte) (Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(f.Assets) == 0 {
		return nil, ErrEmpty
	}
	return f.Assets, nil
}

// Resolve returns the manifest stored at path, or Default when path is empty.
func Resolve(path string) (Manifest, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
