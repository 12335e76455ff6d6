//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts a terminal spinner so that progress display can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// newSpinner builds the spinner behind IterationProgress. The spinner only
// animates when its file is a terminal; for any other writer it checks
// os.Stdout, so a file such as os.Stderr is passed through as the file.
var newSpinner = func(out io.Writer) Spinner {
	opt := spinner.WithWriter(out)
	if f, ok := out.(*os.File); ok {
		opt = spinner.WithWriterFile(f)
	}
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, opt)
	return &realSpinner{s}
}

// IterationProgress reports how many workload iterations have completed.
// It writes to its own writer, normally stderr, never to the measured stdout.
type IterationProgress struct {
	spinner Spinner
	total   int
}

// NewIterationProgress creates a progress display for total iterations.
func NewIterationProgress(out io.Writer, total int) *IterationProgress {
	return &IterationProgress{spinner: newSpinner(out), total: total}
}

// Start begins the animation at zero completed iterations.
func (p *IterationProgress) Start() {
	p.spinner.UpdateSuffix(FormatIterationProgress(0, p.total))
	p.spinner.Start()
}

// Update records that done iterations have completed.
func (p *IterationProgress) Update(done int) {
	p.spinner.UpdateSuffix(FormatIterationProgress(done, p.total))
}

// Stop halts the animation and clears the line.
func (p *IterationProgress) Stop() {
	p.spinner.Stop()
}

// FormatIterationProgress renders " [bar] done/total (pct%)".
func FormatIterationProgress(done, total int) string {
	var frac float64
	if total > 0 {
		frac = float64(done) / float64(total)
	}
	return fmt.Sprintf(" %s %d/%d (%.0f%%)", progressBar(frac, ProgressBarWidth), done, total, frac*100)
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
