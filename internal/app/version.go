package app

import (
	"fmt"
	"io"
)

// Version is the application version. It can be overridden at build time:
//
//	go build -ldflags "-X github.com/agbru/mathmon/internal/app.Version=1.2.3"
var Version = "1.0.0"

// HasVersionFlag reports whether the version flag appears in the arguments.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "mathmon version %s\n", Version)
}
