// Package compose splices rendered content into the static page template
// and writes the finished page.
//
// This is a single literal substitution, not a templating language: every
// occurrence of Placeholder is replaced with the same content.
package compose

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/mmr-tortoise/zoopage/internal/model"
)

// Placeholder is the token in the template that receives the cards.
const Placeholder = "__REPLACE_ANIMALS_INFO__"

// PageMode is the permission of a newly created page. An existing page
// keeps its own permissions.
const PageMode fs.FileMode = 0o644

// Substitute replaces every occurrence of Placeholder in template with
// content.
func Substitute(template, content string) string {
	return strings.ReplaceAll(template, Placeholder, content)
}

// HasPlaceholder reports whether template contains Placeholder at all.
func HasPlaceholder(template string) bool {
	return strings.Contains(template, Placeholder)
}

// Page is the result of a successful composition.
type Page struct {
	// Path is where the page was written.
	Path string

	// Size is the number of bytes written.
	Size int

	// Substituted is false when the template had no placeholder and was
	// written through unchanged.
	Substituted bool
}

// Compose reads the template at templatePath, substitutes content for the
// placeholder and writes the result to outputPath, replacing any existing
// file.
//
// The write goes through natefinch/atomic (temp file + rename), so a failed
// run leaves the previous page intact. A new page gets PageMode; an
// existing one keeps its mode. Running Compose twice with the same
// inputs produces byte-identical output.
//
// A missing template is reported as model.KindNotFound; every other
// failure is model.KindIO.
func Compose(content, templatePath, outputPath string) (*Page, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, model.WrapError(model.KindNotFound,
				fmt.Sprintf("template file not found at: %s", templatePath), err)
		}
		return nil, model.WrapError(model.KindIO,
			"an error occurred during HTML file creation", err)
	}

	template := string(raw)
	page := Substitute(template, content)

	mode := PageMode
	if info, err := os.Stat(outputPath); err == nil {
		mode = info.Mode().Perm()
	}

	if err := atomic.WriteFile(outputPath, strings.NewReader(page)); err != nil {
		return nil, model.WrapError(model.KindIO,
			"an error occurred during HTML file creation", err)
	}
	// atomic renames a 0600 temp file into place.
	if err := os.Chmod(outputPath, mode); err != nil {
		return nil, model.WrapError(model.KindIO,
			"an error occurred during HTML file creation", err)
	}

	return &Page{
		Path:        outputPath,
		Size:        len(page),
		Substituted: HasPlaceholder(template),
	}, nil
}
