// Package config resolves the file paths used by a zoopage run.
//
// Values come from three layers, lowest priority first:
//  1. Built-in defaults (animals_data.json, animals_template.html, animals.html)
//  2. An optional YAML file (zoopage.yaml, or the path given with --config)
//  3. Command-line flags
//
// The YAML file is decoded with gopkg.in/yaml.v3. Unknown keys are
// rejected so that a typo does not silently fall back to a default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/zoopage/internal/model"
)

// Default file names, relative to the working directory.
const (
	DefaultDataFile     = "animals_data.json"
	DefaultTemplateFile = "animals_template.html"
	DefaultOutputFile   = "animals.html"

	// DefaultConfigFile is read when present; its absence is not an error.
	DefaultConfigFile = "zoopage.yaml"
)

// Paths holds the three files a run touches.
type Paths struct {
	// Data is the animal data file (JSON, JSONC or YAML).
	Data string `yaml:"data"`

	// Template is the page template containing the placeholder.
	Template string `yaml:"template"`

	// Output is where the finished page is written. Unused by the
	// text report.
	Output string `yaml:"output"`
}

// Default returns the fixed paths used by the default entry point.
func Default() Paths {
	return Paths{
		Data:     DefaultDataFile,
		Template: DefaultTemplateFile,
		Output:   DefaultOutputFile,
	}
}

// Merge returns p with every non-empty field of override applied on top.
func (p Paths) Merge(override Paths) Paths {
	if override.Data != "" {
		p.Data = override.Data
	}
	if override.Template != "" {
		p.Template = override.Template
	}
	if override.Output != "" {
		p.Output = override.Output
	}
	return p
}

// Load reads a YAML config file and merges it over the defaults.
//
// When path is empty, DefaultConfigFile is tried and silently skipped if it
// does not exist. An explicitly named file that is missing is a
// model.KindNotFound error; invalid YAML is model.KindMalformed.
func Load(path string) (Paths, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return Paths{}, model.WrapError(model.KindNotFound,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return Paths{}, model.WrapError(model.KindIO,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	fileValues, err := Parse(data)
	if err != nil {
		return Paths{}, model.WrapError(model.KindMalformed,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}
	return Default().Merge(fileValues), nil
}

// Parse decodes YAML config bytes. An empty document yields zero Paths.
func Parse(data []byte) (Paths, error) {
	var p Paths

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Paths{}, err
	}
	return p, nil
}
