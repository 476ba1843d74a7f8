package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/zoopage/internal/model"
)

func TestDefault(t *testing.T) {
	p := Default()
	assert.Equal(t, "animals_data.json", p.Data)
	assert.Equal(t, "animals_template.html", p.Template)
	assert.Equal(t, "animals.html", p.Output)
}

func TestPaths_Merge(t *testing.T) {
	got := Default().Merge(Paths{Output: "public/index.html"})

	assert.Equal(t, Paths{
		Data:     DefaultDataFile,
		Template: DefaultTemplateFile,
		Output:   "public/index.html",
	}, got)
}

// TestLoad_Explicit verifies that values from a named file override the
// defaults while unspecified keys keep their default.
func TestLoad_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: data/zoo.yaml\noutput: public/zoo.html\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Paths{
		Data:     "data/zoo.yaml",
		Template: DefaultTemplateFile,
		Output:   "public/zoo.html",
	}, got)
}

// TestLoad_ExplicitMissing verifies a named but missing file is an error.
func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

// TestLoad_ImplicitMissing verifies that the default config file is
// optional. The test switches into an empty directory so no zoopage.yaml
// can be found.
func TestLoad_ImplicitMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

// TestLoad_ImplicitPresent verifies zoopage.yaml is picked up from the
// working directory.
func TestLoad_ImplicitPresent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("template: page.html\n"), 0o644))
	t.Chdir(dir)

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "page.html", got.Template)
	assert.Equal(t, DefaultDataFile, got.Data)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Paths
		wantErr bool
	}{
		{name: "empty document", input: "", want: Paths{}},
		{name: "all keys", input: "data: a.json\ntemplate: t.html\noutput: o.html\n", want: Paths{Data: "a.json", Template: "t.html", Output: "o.html"}},
		{name: "unknown key", input: "dataa: a.json\n", wantErr: true},
		{name: "not a mapping", input: "- a\n- b\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
