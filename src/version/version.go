// Package version provides build version information for qrforge.
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of qrforge. It is set during building.
var Version = "dev-unreleased"

// Print writes plain text version information to out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "qrforge %s\n", Version)
	fmt.Fprintf(out, "Build with %s\n", runtime.Version())
}
