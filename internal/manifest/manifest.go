package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Object kinds a documentation build hands over
const (
	KindModule    = "module"
	KindClass     = "class"
	KindFunction  = "function"
	KindMethod    = "method"
	KindException = "exception"
	KindAttribute = "attribute"
	KindData      = "data"
)

var validKinds = map[string]bool{
	KindModule:    true,
	KindClass:     true,
	KindFunction:  true,
	KindMethod:    true,
	KindException: true,
	KindAttribute: true,
	KindData:      true,
}

// Object is a single documented object
type Object struct {
	Kind      string `yaml:"kind" json:"kind"`
	Name      string `yaml:"name" json:"name"`
	Docstring string `yaml:"docstring" json:"docstring"`
}

// Manifest lists the documented objects of one build
type Manifest struct {
	Objects []Object `yaml:"objects" json:"objects"`
}

// FormatFor returns "json" for .json files and "yaml" for everything else
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

// Load reads and validates a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse decodes a manifest in the given format and validates it
func Parse(data []byte, format string) (*Manifest, error) {
	var m Manifest

	switch format {
	case "json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	return &m, nil
}

// Validate checks that every object has a known kind and a unique name
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Objects))
	for i, obj := range m.Objects {
		if obj.Name == "" {
			return fmt.Errorf("object %d: name cannot be empty", i)
		}
		if !validKinds[obj.Kind] {
			return fmt.Errorf("object %q: invalid kind '%s'", obj.Name, obj.Kind)
		}
		if seen[obj.Name] {
			return fmt.Errorf("object %q: duplicate name", obj.Name)
		}
		seen[obj.Name] = true
	}
	return nil
}

// Marshal encodes the manifest in the given format
func (m *Manifest) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal manifest: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal manifest: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}
}

// Save writes the manifest to path, picking the format from its extension
func (m *Manifest) Save(path string) error {
	data, err := m.Marshal(FormatFor(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

// Find returns the object with the given qualified name
func (m *Manifest) Find(name string) (*Object, bool) {
	for i := range m.Objects {
		if m.Objects[i].Name == name {
			return &m.Objects[i], true
		}
	}
	return nil, false
}
