package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-c/raptor/codec"
	"github.com/mr-c/raptor/correction"
	"github.com/mr-c/raptor/threshold"
)

const scenarioKey = "correction_fa_17_fffff_3f847ae147ae147b_3fa999999999999a.bin"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(t.Context(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func decodeReport(t *testing.T, out string) tableReport {
	t.Helper()
	var r tableReport
	require.NoError(t, codec.Default.Unmarshal([]byte(out), &r))
	return r
}

func TestCompute(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "raptor.index")

	out, _, err := runCLI(t, "compute", "-index", index, "-pattern", "250", "-window", "23",
		"-kmer", "20", "-fpr", "0.05", "-p-max", "0.01", "-log-level", "error", "-json")
	require.NoError(t, err)

	r := decodeReport(t, out)
	assert.Equal(t, scenarioKey, r.Key)
	assert.Equal(t, 57, r.Minimal)
	assert.Equal(t, 228, r.Maximal)
	assert.Len(t, r.Corrections, 172)

	_, err = os.Stat(filepath.Join(dir, scenarioKey))
	require.NoError(t, err)

	out, _, err = runCLI(t, "inspect", "-json", filepath.Join(dir, scenarioKey))
	require.NoError(t, err)
	assert.Equal(t, r, decodeReport(t, out))

	out, _, err = runCLI(t, "inspect", filepath.Join(dir, scenarioKey))
	require.NoError(t, err)
	assert.Contains(t, out, scenarioKey)
	assert.Contains(t, strings.Fields(out), "172")
}

func TestCompute_NoCache(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "compute", "-index", filepath.Join(dir, "raptor.index"), "-pattern", "100",
		"-window", "24", "-kmer", "19", "-p-max", "0.01", "-no-cache", "-json", "-log-level", "error")
	require.NoError(t, err)

	r := decodeReport(t, out)
	assert.Equal(t, 13, r.Minimal)
	assert.Equal(t, 77, r.Maximal)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompute_Layout(t *testing.T) {
	dir := t.TempDir()
	layoutFile := filepath.Join(dir, "layout.txt")
	require.NoError(t, os.WriteFile(layoutFile, []byte(
		"##CONFIG:\n##{\"chopper_config\": {\"k\": 20, \"window_size\": 23, \"num_hash_functions\": 2, \"false_positive_rate\": 0.05}}\n##ENDCONFIG\n",
	), 0o600))

	out, _, err := runCLI(t, "compute", "-index", filepath.Join(dir, "raptor.index"), "-layout", layoutFile,
		"-pattern", "250", "-p-max", "0.01", "-json", "-log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, scenarioKey, decodeReport(t, out).Key)

	// An explicit k-mer size wins over the layout with a warning.
	_, stderr, err := runCLI(t, "compute", "-index", filepath.Join(dir, "raptor.index"), "-layout", layoutFile,
		"-pattern", "250", "-kmer", "19", "-p-max", "0.01", "-no-cache", "-log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, stderr, "differs from k-mer size in the layout file")
}

func TestCompute_Minimiser(t *testing.T) {
	dir := t.TempDir()
	minimiser := filepath.Join(dir, "bin1.minimiser")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin1.header"), []byte(strings.Repeat("1", 20)+" 23\n"), 0o600))

	out, _, err := runCLI(t, "compute", "-index", filepath.Join(dir, "raptor.index"), "-minimiser", minimiser,
		"-pattern", "250", "-p-max", "0.01", "-json", "-log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, scenarioKey, decodeReport(t, out).Key)

	for _, flag := range []string{"-kmer", "-window", "-shape"} {
		value := "20"
		if flag == "-shape" {
			value = "11111"
		}
		_, _, err := runCLI(t, "compute", "-minimiser", minimiser, "-pattern", "250", flag, value, "-no-cache")
		assert.ErrorContains(t, err, "cannot set "+flag+" when using -minimiser")
	}

	_, _, err = runCLI(t, "compute", "-minimiser", filepath.Join(dir, "missing.minimiser"), "-pattern", "250", "-no-cache")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompute_Thresholds(t *testing.T) {
	args := []string{"compute", "-pattern", "250", "-window", "23", "-kmer", "20", "-fpr", "0.05",
		"-p-max", "0.01", "-no-cache", "-log-level", "error"}

	out, _, err := runCLI(t, append(args, "-json", "-base", "3")...)
	require.NoError(t, err)

	r := decodeReport(t, out)
	require.Len(t, r.Thresholds, 172)
	for i, c := range r.Corrections {
		assert.Equal(t, 3+c, r.Thresholds[i], "minimizers=%d", r.Minimal+i)
	}
	assert.Equal(t, uint64(13), r.Thresholds[100-r.Minimal])
	assert.Equal(t, uint64(3), r.Thresholds[len(r.Thresholds)-1])

	out, _, err = runCLI(t, append(args, "-base", "0")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "minimizers  correction  threshold")
	// Zero corrections still require one hit.
	assert.Equal(t, []string{"228", "0", "1"}, strings.Fields(lines[len(lines)-1]))

	_, _, err = runCLI(t, append(args, "-base", "1,2")...)
	assert.ErrorIs(t, err, threshold.ErrInvalid)

	_, _, err = runCLI(t, append(args, "-base", "x")...)
	assert.ErrorContains(t, err, "-base")
}

func TestCompute_Errors(t *testing.T) {
	_, _, err := runCLI(t, "compute", "-pattern", "250", "-window", "20", "-kmer", "20", "-no-cache")
	assert.ErrorIs(t, err, correction.ErrConfiguration)

	_, _, err = runCLI(t, "compute", "-window", "23")
	assert.Error(t, err)

	_, _, err = runCLI(t, "compute", "-pattern", "250", "-window", "23", "-store", "tape")
	assert.ErrorContains(t, err, "unknown store")

	out, _, err := runCLI(t, "compute", "-pattern", "250", "-window", "20", "-threshold-override")
	require.NoError(t, err)
	assert.Contains(t, out, "threshold override")
}

func TestWarm(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "raptor.index")

	_, _, err := runCLI(t, "compute", "-index", index, "-pattern", "250", "-window", "23",
		"-p-max", "0.01", "-log-level", "error")
	require.NoError(t, err)

	out, _, err := runCLI(t, "warm", "-index", index, "-pattern", "250", "-window", "23",
		"-fpr-list", "0.01, 0.05", "-pmax-list", "0.01", "-jobs", "2", "-log-level", "error", "-compression", "zstd")
	require.NoError(t, err)
	assert.Equal(t, "tables: 2, loaded: 1, built: 1, rebuilt: 0, unstored: 0\n", out)

	out, _, err = runCLI(t, "inspect", "-list", "-dir", dir)
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Len(t, names, 2)
	assert.Contains(t, names, scenarioKey)

	_, _, err = runCLI(t, "warm", "-pattern", "250", "-window", "23", "-fpr-list", "0.01,x")
	assert.Error(t, err)
}

func TestInspect_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, scenarioKey)
	require.NoError(t, os.WriteFile(bad, []byte("RCOR but not really"), 0o600))

	_, _, err := runCLI(t, "inspect", bad)
	assert.True(t, correction.IsStale(err))

	_, _, err = runCLI(t, "inspect")
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Usage(t *testing.T) {
	_, stderr, err := runCLI(t)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr, "Usage: raptor-correction")

	_, _, err = runCLI(t, "frobnicate")
	assert.ErrorIs(t, err, errUsage)

	out, _, err := runCLI(t, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "compute")
}

func TestParseUints(t *testing.T) {
	got, err := parseUints("3, 4,5")
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 4, 5}, got)

	_, err = parseUints("-1")
	assert.Error(t, err)
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0.01,0.05 ,0.3")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01, 0.05, 0.3}, got)

	got, err = parseFloats("")
	require.NoError(t, err)
	assert.Nil(t, got)
}
