package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

// candidates are tried in order when Load is given a directory.
var candidates = []string{"package.json", "package.yaml", "package.yml"}

// FileLoader implements domain.ManifestLoader by reading manifests from disk.
type FileLoader struct{}

func New() *FileLoader { return &FileLoader{} }

// Load reads the manifest at location, which may be a package directory or
// the manifest file itself.
func (l *FileLoader) Load(location string) (*domain.Manifest, error) {
	path, err := resolve(location)
	if err != nil {
		return nil, &domain.ManifestLoadError{Location: location, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ManifestLoadError{Location: path, Err: err}
	}

	fields, err := decode(path, data)
	if err != nil {
		return nil, &domain.ManifestLoadError{Location: path, Err: err}
	}
	return domain.NewManifest(fields), nil
}

func resolve(location string) (string, error) {
	info, err := os.Stat(location)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %v", domain.ErrManifestNotFound, err)
		}
		return "", err
	}
	if !info.IsDir() {
		return location, nil
	}

	for _, name := range candidates {
		path := filepath.Join(location, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: none of %s in %s", domain.ErrManifestNotFound, strings.Join(candidates, ", "), location)
}

func decode(path string, data []byte) (map[string]any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %s: unexpected data after top-level value", filepath.Base(path))
		}
	}

	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, domain.ErrInvalidManifest
	}
	return fields, nil
}
