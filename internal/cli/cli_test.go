// cli_test.go runs the commands end to end against files in
// a temporary directory.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testData     = `[{"name": "Lion", "characteristics": {"diet": "Carnivore"}, "locations": ["Africa"]}]`
	testTemplate = "<ul>\n__REPLACE_ANIMALS_INFO__\n</ul>\n"
)

// runCLI executes the root command with args and returns stdout and
// stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// siteDir creates a working directory holding the default data and
// template files and switches into it.
func siteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals_data.json"), []byte(testData), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "animals_template.html"), []byte(testTemplate), 0o644))
	t.Chdir(dir)
	return dir
}

// TestRoot_DefaultsToBuild verifies the bare command writes animals.html
// from the fixed default paths.
func TestRoot_DefaultsToBuild(t *testing.T) {
	dir := siteDir(t)

	_, stderr, err := runCLI(t)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dir, "animals.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `<div class="card__title">Lion</div>`)
	assert.Contains(t, stderr, "successfully created HTML file")
}

func TestBuild_OutputFlag(t *testing.T) {
	dir := siteDir(t)
	out := filepath.Join(dir, "index.html")

	_, _, err := runCLI(t, "build", "--output", out)
	require.NoError(t, err)

	assert.FileExists(t, out)
	assert.NoFileExists(t, filepath.Join(dir, "animals.html"))
}

// TestBuild_MissingDataExitsCleanly verifies that a missing data file is
// logged but is not a command error.
func TestBuild_MissingDataExitsCleanly(t *testing.T) {
	t.Chdir(t.TempDir())

	_, stderr, err := runCLI(t, "build")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=ERROR")
	assert.Contains(t, stderr, "animals_data.json was not found")
}

func TestReport_PrintsToStdout(t *testing.T) {
	dir := siteDir(t)

	stdout, _, err := runCLI(t, "report")
	require.NoError(t, err)
	assert.Equal(t, "Name: Lion\nDiet: Carnivore\nLocation: Africa\n", stdout)
	assert.NoFileExists(t, filepath.Join(dir, "animals.html"))
}

// TestReport_RejectsPageFlags verifies that flags which only affect the
// written page are not accepted by the report command.
func TestReport_RejectsPageFlags(t *testing.T) {
	dir := siteDir(t)

	for _, flag := range []string{"--output", "--template"} {
		t.Run(flag, func(t *testing.T) {
			_, _, err := runCLI(t, "report", flag, "x.html")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown flag: "+flag)
		})
	}
	assert.NoFileExists(t, filepath.Join(dir, "x.html"))
}

func TestRoot_AcceptsPageFlags(t *testing.T) {
	dir := siteDir(t)

	_, _, err := runCLI(t, "--output", "root.html")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "root.html"))
}

// TestConfigFile verifies that zoopage.yaml is honoured and that flags
// override it.
func TestConfigFile(t *testing.T) {
	dir := siteDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zoopage.yaml"), []byte("output: from-config.html\n"), 0o644))

	_, _, err := runCLI(t, "build")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "from-config.html"))

	_, _, err = runCLI(t, "build", "--output", "from-flag.html")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "from-flag.html"))
}

// TestConfigFile_ExplicitMissing verifies that naming a missing config
// file is a command error.
func TestConfigFile_ExplicitMissing(t *testing.T) {
	siteDir(t)

	_, _, err := runCLI(t, "build", "--config", "missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestVerbose_EnablesDebug(t *testing.T) {
	siteDir(t)

	_, stderr, err := runCLI(t, "build", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
}

func TestLogLevelEnv(t *testing.T) {
	siteDir(t)
	t.Setenv(logLevelEnv, "error")

	_, stderr, err := runCLI(t, "build")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=INFO")
}
