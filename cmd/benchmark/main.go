// Command benchmark allocates synthetic records, computes a Fibonacci
// sequence and sieves primes to produce a measurable memory/CPU workload.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/petribench/internal/app"
	"github.com/agbru/petribench/internal/config"
	apperrors "github.com/agbru/petribench/internal/errors"
)

func main() {
	application, err := app.New(config.ProgramBenchmark, os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCodeFor(err))
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
