// Package loader reads the animal data file and decodes it into generic
// structured data.
//
// JSON is the primary format. Data files are often hand edited, so this
// package uses github.com/tidwall/jsonc to strip comments and trailing
// commas before parsing with the standard encoding/json library. Files with
// a .yaml or .yml extension are decoded with gopkg.in/yaml.v3 instead.
//
// The loader does not enforce the shape of the data; that is the job of
// model.ParseCollection.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/zoopage/internal/model"
)

// Format identifies the syntax of a data file.
type Format string

const (
	// FormatJSON is JSON, with JSONC comments tolerated.
	FormatJSON Format = "JSON"

	// FormatYAML is YAML 1.2.
	FormatYAML Format = "YAML"
)

// DetectFormat picks the decoder for a path based on its extension.
// Anything that is not .yaml/.yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the file at path and decodes its contents.
//
// Errors are *model.Error values:
//   - KindNotFound when path does not resolve to a file
//   - KindMalformed when the contents are not valid JSON/YAML
//   - KindIO for any other read failure
//
// There is a single attempt per call and no side effects.
func Load(path string) (any, error) {
	// os.ReadFile handles the open-read-close lifecycle in one call, so
	// the file is released regardless of the outcome.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.WrapError(model.KindNotFound,
				fmt.Sprintf("the file at %s was not found", path), err)
		}
		return nil, model.WrapError(model.KindIO,
			fmt.Sprintf("failed to read %s", path), err)
	}

	format := DetectFormat(path)
	value, err := Decode(data, format)
	if err != nil {
		return nil, model.WrapError(model.KindMalformed,
			fmt.Sprintf("the file at %s is not a valid %s file", path, format), err)
	}
	return value, nil
}

// Decode parses raw bytes in the given format into generic values:
// sequences become []any, mappings become map[string]any.
func Decode(data []byte, format Format) (any, error) {
	var value any

	if format == FormatYAML {
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		return value, nil
	}

	// jsonc.ToJSON turns comments into whitespace, so an otherwise
	// empty file still fails below with a syntax error.
	clean := jsonc.ToJSON(data)

	if err := json.Unmarshal(clean, &value); err != nil {
		return nil, err
	}
	return value, nil
}
