package localize

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader retrieves the catalogs used to seed a CatalogSet.
type Loader interface {
	Load() (Catalogs, error)
}

// LoaderFunc adapters allow bare functions to implement the Loader interface.
type LoaderFunc func() (Catalogs, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (Catalogs, error) {
	return fn()
}

// FileLoader reads locale catalogs from JSON, YAML, or TOML files. Each file
// holds a locale→key→text mapping; later files merge over earlier ones.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Catalogs, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("localize: no loader paths configured")
	}

	catalogs := make(Catalogs)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("localize: read %s: %w", path, err)
		}

		src, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("localize: decode %s: %w", path, err)
		}
		mergeCatalogs(catalogs, src)
	}

	return catalogs, nil
}

func decodeCatalogFile(path string, data []byte) (map[string]map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]map[string]string
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	for locale, catalog := range raw {
		if locale == "" {
			return nil, fmt.Errorf("empty locale name")
		}
		for key := range catalog {
			if key == "" {
				return nil, fmt.Errorf("empty key in locale %q", locale)
			}
		}
	}

	return raw, nil
}

func mergeCatalogs(dst Catalogs, src map[string]map[string]string) {
	for locale, catalog := range src {
		bucket, ok := dst[locale]
		if !ok {
			bucket = make(Catalog, len(catalog))
			dst[locale] = bucket
		}
		for key, value := range catalog {
			bucket[key] = value
		}
	}
}

// NewCatalogSetFromLoader hydrates a CatalogSet using the provided loader.
func NewCatalogSetFromLoader(loader Loader) (*CatalogSet, error) {
	if loader == nil {
		return NewCatalogSet(nil), nil
	}

	catalogs, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewCatalogSet(catalogs), nil
}
