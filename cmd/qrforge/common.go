package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/ironsmile/qrforge/src/config"
	"github.com/ironsmile/qrforge/src/diag"
	"github.com/ironsmile/qrforge/src/tables"
	"github.com/ironsmile/qrforge/src/version"
)

// osFs is the afero filesystem every subcommand reads and writes
// through, so that the render and bitmap packages stay testable
// against afero.NewMemMapFs() while the CLI itself talks to the real
// disk.
var osFs = afero.NewOsFs()

// sink is the diagnostics sink every subcommand threads through to
// encode/decode/fix. quiet selects diag.Null, which discards every
// event; otherwise events go to the standard logger.
func sink(quiet bool) diag.Sink {
	if quiet {
		return diag.Null{}
	}
	return diag.Log{L: nil}
}

// parseLevel turns a one-letter level flag into a tables.ECLevel,
// falling back to def when s is empty.
func parseLevel(s string, def tables.ECLevel) (tables.ECLevel, error) {
	switch strings.ToUpper(s) {
	case "":
		return def, nil
	case "L":
		return tables.L, nil
	case "M":
		return tables.M, nil
	case "Q":
		return tables.Q, nil
	case "H":
		return tables.H, nil
	default:
		return 0, fmt.Errorf("invalid error correction level %q, want one of l, m, q, h", s)
	}
}

func printVersion() {
	version.Print(os.Stdout)
}

func loadConfig() config.Config {
	return config.Load()
}
