package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnguyen2187/souls-savior/dcx"
	"github.com/thanhnguyen2187/souls-savior/dcx/dcxtest"
	"github.com/thanhnguyen2187/souls-savior/dcx/derror"
)

var helloWorld = []byte("hello world")

func writeFile(t *testing.T, dir string, name string, bs []byte) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func TestCheckExistence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.dcx", helloWorld)
	assert.True(t, CheckExistence(path))
	assert.False(t, CheckExistence(filepath.Join(dir, "b.dcx")))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.dcx", dcxtest.NewDeflate(helloWorld).Bytes()),
		filepath.Join(dir, "missing.dcx"),
		writeFile(t, dir, "c.dcx", dcxtest.NewZstd(helloWorld).Bytes()),
	}

	results := Inspect(paths, false)
	require.Len(t, results, 3)

	assert.Equal(t, paths[0], results[0].Path)
	require.NoError(t, results[0].Err)
	format, _ := results[0].Summary.Get("format")
	assert.Equal(t, "DFLT", format)

	var target derror.ErrIO
	assert.ErrorAs(t, results[1].Err, &target)

	require.NoError(t, results[2].Err)
	format, _ = results[2].Summary.Get("format")
	assert.Equal(t, "ZSTD", format)
}

func TestStartInspecting(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.dcx", dcxtest.NewDeflate(helloWorld).Bytes()),
		writeFile(t, dir, "b.dcx", []byte("DCX\x00")),
	}

	var buf bytes.Buffer
	failed := StartInspecting(&buf, paths, true)
	assert.Equal(t, 1, failed)

	var printed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &printed))
	assert.Equal(t, paths[0], printed["path"])
	header := printed["header"].(map[string]any)
	assert.Equal(t, "DCX_DFLT_11000_44_9", header["type"])
}

func TestStartExtracting(t *testing.T) {
	dir := t.TempDir()
	from := writeFile(t, dir, "a.dcx", dcxtest.NewDeflate(helloWorld).Bytes())
	to := filepath.Join(dir, "a.bin")

	require.NoError(t, StartExtracting(from, to, false))
	bs, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, helloWorld, bs)

	assert.ErrorIs(t, StartExtracting(from, to, false), ErrDestinationExisted)
	assert.NoError(t, StartExtracting(from, to, true))
	assert.ErrorIs(t, StartExtracting(filepath.Join(dir, "b.dcx"), to, true), ErrSourceMissing)

	err = StartExtracting(from, filepath.Join(dir, "c.bin"), false, dcx.WithMaxUncompressedSize(4))
	var target derror.ErrLimitExceeded
	assert.ErrorAs(t, err, &target)
}
