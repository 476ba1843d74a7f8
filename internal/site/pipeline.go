// Package site wires the loader, renderers and compositor together for a
// single run.
//
// Every failure is handled at the boundary where it occurs: it is logged
// once and the remaining steps are skipped. Nothing is returned to the
// caller except a Result describing what happened, so a run always
// completes normally.
package site

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/mmr-tortoise/zoopage/internal/compose"
	"github.com/mmr-tortoise/zoopage/internal/config"
	"github.com/mmr-tortoise/zoopage/internal/loader"
	"github.com/mmr-tortoise/zoopage/internal/model"
	"github.com/mmr-tortoise/zoopage/internal/render"
)

// Pipeline holds the collaborators shared by a run.
type Pipeline struct {
	// Logger receives every error and progress message.
	Logger *slog.Logger

	// Out is the console sink for the text report.
	Out io.Writer
}

// New creates a Pipeline. A nil logger discards all messages.
func New(logger *slog.Logger, out io.Writer) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{Logger: logger, Out: out}
}

// Result summarizes a run for callers and tests.
type Result struct {
	// Records is the number of animals rendered.
	Records int

	// Written is true when the HTML page was written.
	Written bool

	// Bytes is the size of the written page.
	Bytes int

	// Err is the first failure encountered, already logged.
	Err error
}

// Build runs load → render HTML → compose.
//
// Rendering is skipped when there is no data (a load failure, or an empty
// or null document). Composition is skipped when the rendered fragment is
// empty.
func (p *Pipeline) Build(paths config.Paths) Result {
	data, err := p.load(paths.Data)
	if err != nil || data == nil {
		return Result{Err: err}
	}

	content, records, err := render.RenderHTML(data)
	if err != nil {
		p.logNotAList(paths.Data)
		return Result{Err: err}
	}
	if content == "" {
		p.Logger.Debug("nothing to compose", "path", paths.Data)
		return Result{}
	}
	p.Logger.Debug("rendered animal cards", "count", records)

	page, err := compose.Compose(content, paths.Template, paths.Output)
	if err != nil {
		p.logError(err)
		return Result{Records: records, Err: err}
	}
	if !page.Substituted {
		p.Logger.Warn("template has no placeholder, page written unchanged",
			"template", paths.Template, "placeholder", compose.Placeholder)
	}

	p.Logger.Info("successfully created HTML file",
		"path", page.Path, "size", humanize.Bytes(uint64(page.Size)))
	return Result{Records: records, Written: true, Bytes: page.Size}
}

// Report runs load → render text → print to Out.
func (p *Pipeline) Report(paths config.Paths) Result {
	data, err := p.load(paths.Data)
	if err != nil || data == nil {
		return Result{Err: err}
	}

	records, err := render.Report(p.Out, data)
	switch {
	case errors.Is(err, model.ErrNotACollection):
		p.logNotAList(paths.Data)
		return Result{Err: err}
	case err != nil:
		p.Logger.Error("failed to print report", "error", err)
		return Result{Records: records, Err: err}
	}
	return Result{Records: records}
}

// load reads the data file. It returns nil data without an error when
// there is nothing to render: empty documents ([], {}, null, "") count as
// no data, matching a truthiness check on the decoded value.
func (p *Pipeline) load(path string) (any, error) {
	data, err := loader.Load(path)
	if err != nil {
		p.logError(err)
		return nil, err
	}
	if isEmpty(data) {
		p.Logger.Debug("data file is empty", "path", path)
		return nil, nil
	}
	return data, nil
}

func (p *Pipeline) logNotAList(path string) {
	p.Logger.Error("the JSON data is not a list, processing cannot continue", "path", path)
}

func (p *Pipeline) logError(err error) {
	p.Logger.Error(err.Error(), "kind", model.KindOf(err).String())
}

func isEmpty(data any) bool {
	switch v := data.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}
