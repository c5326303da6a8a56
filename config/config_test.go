package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxxedu/flusty/errors"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultRustEntry, cfg.RustEntry)
	assert.Equal(t, DefaultDartOut, cfg.DartOut)
	assert.Equal(t, DefaultLibName, cfg.LibName)
	assert.Equal(t, DefaultRootModule, cfg.RootModule)
	assert.Equal(t, DefaultMarkers, cfg.Markers)
	assert.Equal(t, dir, cfg.Root())
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	src := `
rust_entry = "rust/src"
lib_name = "mylib"
markers = ["ffi", "export"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(src), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "rust/src", cfg.RustEntry)
	assert.Equal(t, "mylib", cfg.LibName)
	assert.Equal(t, []string{"ffi", "export"}, cfg.Markers)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultDartOut, cfg.DartOut)
	assert.Equal(t, DefaultRootModule, cfg.RootModule)
}

func TestLoadWalksUpToProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(`lib_name = "deep"`), 0o644))
	nested := filepath.Join(root, "native", "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "deep", cfg.LibName)
	assert.Equal(t, root, cfg.Root())
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("rust_entry = [broken"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestConfigPaths(t *testing.T) {
	cfg := Default("/proj")
	assert.Equal(t, filepath.Join("/proj", DefaultRustEntry), cfg.RustEntryPath())
	assert.Equal(t, filepath.Join("/proj", DefaultDartOut), cfg.DartOutPath())
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := Default(dir)
	original.LibName = "roundtrip"
	original.Markers = []string{"marked"}
	require.NoError(t, original.Write(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", loaded.LibName)
	assert.Equal(t, []string{"marked"}, loaded.Markers)
	assert.Equal(t, original.RustEntry, loaded.RustEntry)
}
