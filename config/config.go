// Package config loads and writes flusty project configuration.
//
// A project is rooted at the nearest ancestor directory containing
// flusty.toml; when no config file exists, defaults apply.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/wxxedu/flusty/errors"
)

// ConfigFileName is the per-project configuration file.
const ConfigFileName = "flusty.toml"

// Defaults.
const (
	DefaultRustEntry  = "native/src"
	DefaultDartOut    = "lib/gen"
	DefaultLibName    = "flusty"
	DefaultRootModule = "lib"
)

// DefaultMarkers is the attribute identifier set that marks declarations for
// export.
var DefaultMarkers = []string{"flusty"}

// Config is the per-project configuration. All paths are relative to the
// project root.
type Config struct {
	// RustEntry is the directory holding the root module's source.
	RustEntry string `mapstructure:"rust_entry" toml:"rust_entry"`
	// DartOut is the directory the generated Dart file is written to.
	DartOut string `mapstructure:"dart_out" toml:"dart_out"`
	// LibName is the dynamic library base name.
	LibName string `mapstructure:"lib_name" toml:"lib_name"`
	// RootModule is the root module name (the file <rust_entry>/<name>.rs).
	RootModule string `mapstructure:"root_module" toml:"root_module"`
	// Markers are the attribute identifiers that select declarations.
	Markers []string `mapstructure:"markers" toml:"markers"`

	root string // resolved project root
}

// Default returns a configuration with every field at its default, rooted at
// dir.
func Default(dir string) *Config {
	return &Config{
		RustEntry:  DefaultRustEntry,
		DartOut:    DefaultDartOut,
		LibName:    DefaultLibName,
		RootModule: DefaultRootModule,
		Markers:    append([]string(nil), DefaultMarkers...),
		root:       dir,
	}
}

// Load discovers the project root by walking up from dir and reads
// flusty.toml through viper. A missing file yields the defaults rooted at
// dir.
func Load(dir string) (*Config, error) {
	root, found := findRoot(dir)
	if !found {
		return Default(dir), nil
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(root, ConfigFileName))
	v.SetConfigType("toml")
	v.SetDefault("rust_entry", DefaultRustEntry)
	v.SetDefault("dart_out", DefaultDartOut)
	v.SetDefault("lib_name", DefaultLibName)
	v.SetDefault("root_module", DefaultRootModule)
	v.SetDefault("markers", DefaultMarkers)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "read %s: %v", ConfigFileName, err)
	}
	cfg := &Config{root: root}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decode %s: %v", ConfigFileName, err)
	}
	return cfg, nil
}

// findRoot walks up from dir looking for flusty.toml.
func findRoot(dir string) (string, bool) {
	path, err := filepath.Abs(dir)
	if err != nil {
		return dir, false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, ConfigFileName)); err == nil {
			return path, true
		}
		parent := filepath.Dir(path)
		if parent == path {
			return dir, false
		}
		path = parent
	}
}

// Root returns the resolved project root directory.
func (c *Config) Root() string { return c.root }

// RustEntryPath returns the absolute source entry directory.
func (c *Config) RustEntryPath() string { return filepath.Join(c.root, c.RustEntry) }

// DartOutPath returns the absolute output directory.
func (c *Config) DartOutPath() string { return filepath.Join(c.root, c.DartOut) }

// Write serializes the configuration to <dir>/flusty.toml.
func (c *Config) Write(dir string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}
