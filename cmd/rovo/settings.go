package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/rovo/diagnostic"
	"go.jacobcolvin.com/rovo/report"
)

const defaultSettingsFile = ".rovo.yaml"

// Settings is the content of a rovo settings file. Each field supplies the
// default for the flag of the same name.
type Settings struct {
	Format string   `json:"format,omitempty" jsonschema:"report output format" yaml:"format,omitempty"`
	Color  string   `json:"color,omitempty"  jsonschema:"text output color mode" yaml:"color,omitempty"`
	FailOn string   `json:"failOn,omitempty" jsonschema:"lowest severity that fails rovo check" yaml:"failOn,omitempty"`
	Rules  []string `json:"rules,omitempty"  jsonschema:"validation rules to enable, in run order" yaml:"rules,omitempty"`
	Jobs   int      `json:"jobs,omitempty"   jsonschema:"number of files processed concurrently" yaml:"jobs,omitempty"`
}

// SettingsSchema returns the JSON Schema that settings files are validated
// against.
func SettingsSchema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[Settings](nil)
	if err != nil {
		return nil, fmt.Errorf("infer settings schema: %w", err)
	}

	s.Title = "rovo settings"
	s.Properties["format"].Enum = enum(report.AllFormats())
	s.Properties["color"].Enum = enum(report.AllColorModes())
	s.Properties["failOn"].Enum = enum(severityStrings())
	s.Properties["rules"].Items.Enum = enum(diagnostic.DefaultRegistry().Names())
	s.Properties["jobs"].Minimum = jsonschema.Ptr(1.0)

	return s, nil
}

var resolvedSettingsSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	s, err := SettingsSchema()
	if err != nil {
		return nil, err
	}

	return s.Resolve(nil)
})

// loadSettings reads the settings file at path. An empty path reads
// [defaultSettingsFile] when it exists.
func loadSettings(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = defaultSettingsFile
	}

	data, err := os.ReadFile(path) //nolint:gosec // Settings path comes from a CLI flag.
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil
		}

		return Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s, err := parseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return s, nil
}

// parseSettings validates YAML data against [SettingsSchema] and decodes it.
func parseSettings(data []byte) (Settings, error) {
	var s Settings

	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return s, fmt.Errorf("parse yaml: %w", err)
	}

	if len(bytes.TrimSpace(jsonData)) == 0 {
		return s, nil
	}

	var doc any

	err = json.Unmarshal(jsonData, &doc)
	if err != nil {
		return s, fmt.Errorf("parse yaml: %w", err)
	}

	if doc == nil {
		return s, nil
	}

	resolved, err := resolvedSettingsSchema()
	if err != nil {
		return s, err
	}

	err = resolved.Validate(doc)
	if err != nil {
		return s, err
	}

	err = yaml.UnmarshalWithOptions(data, &s, yaml.Strict())
	if err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}

	return s, nil
}

func enum(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}

	return out
}
