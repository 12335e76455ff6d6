package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/petribench/internal/errors"
	"github.com/agbru/petribench/internal/fizzbuzz"
)

// runFizzBuzz prints the FizzBuzz classification of [Config.Low, Config.High].
func (a *Application) runFizzBuzz(ctx context.Context, out io.Writer) int {
	_, span := a.tracer.Start(ctx, "fizzbuzz", trace.WithAttributes(
		attribute.Int("petribench.from", a.Config.Low),
		attribute.Int("petribench.to", a.Config.High),
	))
	defer span.End()

	if err := fizzbuzz.Run(out, a.Config.Low, a.Config.High); err != nil {
		return a.fail(span, apperrors.OutputError{Target: "stdout", Cause: err})
	}
	return apperrors.ExitSuccess
}
