package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
)

// resetReportFlags clears flag state left behind by a previous
// Execute call in the same process.
func resetReportFlags(t *testing.T) {
	t.Helper()

	reportFiles = nil
	reportName = ""
	reportSort = ""
	reportLimit = 0
	reportFormat = ""
	configPath = ""
	verboseFlag = false

	for _, name := range []string{"files", "report", "sort", "limit", "format"} {
		flag := reportCmd.Flags().Lookup(name)
		require.NotNil(t, flag)
		flag.Changed = false
	}
	for _, name := range []string{"verbose", "config"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag)
		flag.Changed = false
	}
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// noConfig returns a path to a config file that does not exist, so
// tests never pick up a developer's real ~/.brandstat/config.toml.
func noConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetReportFlags(t)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReportCmd_Use(t *testing.T) {
	assert.Equal(t, "report", reportCmd.Use)
	assert.Equal(t, "Run a report over product CSV files", reportCmd.Short)
}

func TestReportCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", "name,brand,price,rating\niPhone 15,Apple,999,4.8\niPhone 14,Apple,799,4.7\n")
	b := writeCSV(t, dir, "b.csv", "name,brand,price,rating\nGalaxy S24,Samsung,899,4.6\n")

	out, err := execute(t, "report", "--files", a, "--files", b, "--config", noConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "apple")
	assert.Contains(t, out, "4.75")
	assert.Contains(t, out, "samsung")
	assert.Contains(t, out, "4.60")

	// Default sort is avg_rating descending: apple before samsung.
	assert.Less(t, strings.Index(out, "apple"), strings.Index(out, "samsung"))
}

func TestReportCmd_SortByBrand(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nZ Flip,Zebra,100,5\nAir,Apple,100,1\n")

	out, err := execute(t, "report", "--files", f, "--sort", "brand", "--config", noConfig(t))
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "apple"), strings.Index(out, "zebra"))
}

func TestReportCmd_Limit(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\nB,Banana,1,4\n")

	out, err := execute(t, "report", "--files", f, "--limit", "1", "--config", noConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "apple")
	assert.NotContains(t, out, "banana")
}

func TestReportCmd_LimitZeroRendersHeadersOnly(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\n")

	out, err := execute(t, "report", "--files", f, "--limit", "0", "--config", noConfig(t))
	require.NoError(t, err)

	assert.Contains(t, out, "brand")
	assert.Contains(t, out, "avg_rating")
	assert.NotContains(t, out, "apple")
}

func TestReportCmd_NegativeLimit(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\n")

	_, err := execute(t, "report", "--files", f, "--limit", "-2", "--config", noConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
}

func TestReportCmd_NoFiles(t *testing.T) {
	_, err := execute(t, "report", "--config", noConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
}

func TestReportCmd_UnknownReport(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\n")

	_, err := execute(t, "report", "--files", f, "--report", "nope", "--config", noConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
	assert.Contains(t, err.Error(), "nope")
}

func TestReportCmd_UnknownSortKey(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\n")

	_, err := execute(t, "report", "--files", f, "--sort", "price", "--config", noConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
}

func TestReportCmd_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\n")

	_, err := execute(t, "report", "--files", f, "--format", "latex", "--config", noConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))
}

func TestReportCmd_SchemaErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price\nA,Apple,1\n")

	_, err := execute(t, "report", "--files", f, "--config", noConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchema))
}

func TestReportCmd_ConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nUnknown device,NoName,,\n")
	cfg := writeCSV(t, dir, "config.toml", "placeholder = \"missing\"\nsort = \"brand\"\n")

	out, err := execute(t, "report", "--files", f, "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "missing")
	assert.NotContains(t, out, "N/A")
}

func TestReportCmd_FlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	f := writeCSV(t, dir, "f.csv", "name,brand,price,rating\nA,Apple,1,5\n")
	cfg := writeCSV(t, dir, "config.toml", "report = \"nope\"\n")

	// The config file names an unknown report, but the flag wins.
	out, err := execute(t, "report", "--files", f, "--report", "average-rating", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "apple")
}
