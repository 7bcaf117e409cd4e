package progress

import (
	"io"
	"log"

	"github.com/schollz/progressbar/v3"
)

// Mode selects a Reporter implementation.
type Mode string

const (
	ModeNone Mode = "none"
	ModeLog  Mode = "log"
	ModeBar  Mode = "bar"
)

// Reporter provides progress feedback while pages are written.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// New returns the Reporter for mode. Bars are drawn on w; log lines go to
// logger. An empty or unknown mode reports nothing.
func New(mode Mode, w io.Writer, logger *log.Logger) Reporter {
	switch mode {
	case ModeBar:
		return &BarReporter{Out: w}
	case ModeLog:
		return &LogReporter{Logger: logger}
	}
	return Nop{}
}

// BarReporter displays a progress bar.
type BarReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Writing pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LogReporter prints line-by-line progress suitable for CI logs.
type LogReporter struct {
	Logger *log.Logger
	total  int
}

func (r *LogReporter) Start(total int) {
	r.total = total
	r.printf("writing %d pages", total)
}

func (r *LogReporter) Update(current int, message string) {
	r.printf("[%d/%d] %s", current, r.total, message)
}

func (r *LogReporter) Finish() {
	r.printf("site generation complete")
}

func (r *LogReporter) printf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
