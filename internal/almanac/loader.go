package almanac

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"range-remapper/internal/remap"
)

// Format selects an almanac encoding.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// LoadFile reads an almanac, choosing the decoder by format. FormatAuto
// picks YAML for .yaml/.yml files and text otherwise.
func LoadFile(path string, format Format) (*Document, error) {
	if format == "" || format == FormatAuto {
		format = detectFormat(path)
	}

	switch format {
	case FormatText:
		return ParseTextFile(path)
	case FormatYAML:
		return LoadYAMLFile(path)
	default:
		return nil, fmt.Errorf("unknown almanac format %q", format)
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadYAMLFile loads and parses a YAML almanac from the given path.
func LoadYAMLFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac %s: %w", path, err)
	}

	return ParseYAML(data)
}

// ParseYAML parses YAML data into a Document.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}

	for i := range doc.Stages {
		if doc.Stages[i].Name == "" {
			doc.Stages[i].Name = fmt.Sprintf("stage-%d", i+1)
		}

		if doc.Stages[i].Mappings == nil {
			doc.Stages[i].Mappings = []remap.Mapping{}
		}
	}
}

// MarshalYAML serializes a Document to YAML.
func MarshalYAML(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteYAMLFile writes a Document to the given path as YAML.
func WriteYAMLFile(doc *Document, path string) error {
	data, err := MarshalYAML(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write almanac %s: %w", path, err)
	}

	return nil
}
