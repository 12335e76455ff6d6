package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/petribench/internal/config"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/agbru/petribench/internal/app.Version=v1.2.3".
var Version = "dev"

// PrintVersion writes the program name, version and Go runtime to out.
func PrintVersion(out io.Writer, program config.Program) {
	fmt.Fprintf(out, "%s %s (%s %s/%s)\n", program, Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
