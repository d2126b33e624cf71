package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/techclock/internal/models"
)

// Format is a settings document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from a file extension, defaulting to JSON
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Export encodes the current record
func (s *Store) Export(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s.current, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s.current); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Import decodes a document onto the defaults, validates it and persists
// it. Fields missing from the document take their default value.
func (s *Store) Import(data []byte, format Format) (models.Settings, error) {
	incoming := models.DefaultSettings()

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &incoming)
	case FormatYAML:
		err = yaml.Unmarshal(data, &incoming)
	default:
		return s.current, fmt.Errorf("unsupported import format %q", format)
	}
	if err != nil {
		return s.current, fmt.Errorf("parsing %s settings: %w", format, err)
	}

	return s.Replace(incoming)
}
