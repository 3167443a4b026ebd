// Package config finds, parses and merges qrforge's CLI defaults with
// the built-in ones, following the same encoding/json plus
// reflect-based merge pattern this module's teacher uses for its own
// configuration: only the fields present in the user file override
// the defaults.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"

	"github.com/ironsmile/qrforge/src/tables"
)

// ConfigName is the file name a user configuration is looked for
// under, in $HOME/.qrforge and in the current working directory.
const ConfigName = "qrforge.json"

// Config holds the CLI's defaults for encode/decode/fix operations.
type Config struct {
	ModulePixelSize int            `json:"module_pixel_size"`
	QuietZone       int            `json:"quiet_zone"`
	Level           tables.ECLevel `json:"error_correction"`
	Charset         string         `json:"charset"`
	OutputDir       string         `json:"output_dir"`
}

// MergedConfig mirrors Config with every field a pointer, so that a
// partially-specified user file can be merged on top of Default
// without a present-but-zero field being indistinguishable from an
// absent one.
type MergedConfig struct {
	ModulePixelSize *int            `json:"module_pixel_size"`
	QuietZone       *int            `json:"quiet_zone"`
	Level           *tables.ECLevel `json:"error_correction"`
	Charset         *string         `json:"charset"`
	OutputDir       *string         `json:"output_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ModulePixelSize: 8,
		QuietZone:       4,
		Level:           tables.M,
		Charset:         "UTF-8",
		OutputDir:       ".",
	}
}

// FindAndParse loads the default configuration and merges the user's
// own qrforge.json on top of it, if one is found under any of
// UserConfigPaths. A missing user file is not an error.
func (cfg *Config) FindAndParse() error {
	*cfg = Default()

	for _, path := range UserConfigPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var merged MergedConfig
		if err := json.Unmarshal(data, &merged); err != nil {
			return err
		}
		cfg.merge(&merged)
		return nil
	}
	return nil
}

// merge copies every non-nil field of m onto cfg.
func (cfg *Config) merge(m *MergedConfig) {
	cfgVal := reflect.ValueOf(cfg).Elem()
	mergedVal := reflect.ValueOf(m).Elem()

	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		if mergedField.Kind() != reflect.Ptr || mergedField.IsNil() {
			continue
		}
		cfgVal.Field(i).Set(mergedField.Elem())
	}
}

// UserConfigPaths lists, in lookup order, the paths a user
// configuration file may live at.
func UserConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".qrforge", ConfigName))
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, ConfigName))
	}
	return paths
}

// Load is a convenience wrapper that builds and parses a Config,
// logging (not failing) any user-file parse error.
func Load() Config {
	var cfg Config
	if err := cfg.FindAndParse(); err != nil {
		log.Printf("config: %v, using defaults", err)
		cfg = Default()
	}
	return cfg
}
