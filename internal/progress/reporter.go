package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while a batch of scenes is generated.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a CIReporter when the CI or GITHUB_ACTIONS environment
// variable is set, and a TerminalReporter otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return NewCIReporter(os.Stderr)
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Generating scenes"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(message)
	_ = r.bar.Set(current)
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per step, suitable for CI logs.
type CIReporter struct {
	out   io.Writer
	total int
}

// NewCIReporter returns a CIReporter writing to out.
func NewCIReporter(out io.Writer) *CIReporter {
	return &CIReporter{out: out}
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.out, "Generating %d scenes\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.out, "Scene generation complete")
}

// Nop discards all progress updates.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
