// Package format holds pure string formatting helpers shared by the report
// and progress displays.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a duration for display: microseconds below
// one millisecond, whole milliseconds below one second, and the default
// representation rounded to the millisecond otherwise.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
