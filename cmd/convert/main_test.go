package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsUnknownFormat(t *testing.T) {
	assert.Equal(t, 2, run([]string{"-format", "yaml"}))
	assert.Equal(t, 2, run([]string{"-no-such-flag"}))
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "structured_output.json")

	code := run([]string{"-in", filepath.Join(dir, "missing.pdf"), "-out", out, "-ocr=false"})

	assert.Equal(t, 1, code)
	assert.NoFileExists(t, out)
}

func TestRunConvertsFixture(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "structured_output.json")

	code := run([]string{"-in", "../../service/testdata/timetable.pdf", "-out", out, "-month", "0", "-year", "2025", "-ocr=false"})
	require.Equal(t, 0, code)

	// the fixture rows are too short to parse, so the result is an empty array
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
