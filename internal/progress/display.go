package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Display renders step progress. On a TTY a spinner runs on errOut while a step
// is in flight; otherwise the step line is printed once to out.
type Display struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	out          io.Writer
	errOut       io.Writer
	spinner      *spinner.Spinner
}

// NewDisplay creates a display writing results to out and the spinner to errOut.
func NewDisplay(caps TerminalCapabilities, out, errOut io.Writer) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
		errOut:       errOut,
	}
}

// Start begins displaying progress for a step.
func (d *Display) Start(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}
	d.Stop()

	msg := buildStepMessage(step)
	if d.capabilities.IsTTY {
		d.spinner = spinner.New(spinner.CharSets[d.symbols.SpinnerSet], 100*time.Millisecond)
		d.spinner.Writer = d.errOut
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
		return nil
	}
	fmt.Fprintln(d.out, msg+"...")
	return nil
}

// Complete stops the spinner and prints a success line. detail may be empty.
func (d *Display) Complete(step Step, detail string) {
	d.finish(checkmark(d.symbols, d.capabilities.SupportsColor), step, detail)
}

// Warn stops the spinner and prints an attention line.
func (d *Display) Warn(step Step, detail string) {
	d.finish(warningMark(d.symbols, d.capabilities.SupportsColor), step, detail)
}

// Fail stops the spinner and prints the error.
func (d *Display) Fail(step Step, err error) {
	d.finish(failureMark(d.symbols, d.capabilities.SupportsColor), step, err.Error())
}

func (d *Display) finish(mark string, step Step, detail string) {
	d.Stop()
	line := fmt.Sprintf("%s %s", mark, buildStepMessage(step))
	if detail != "" {
		line += ": " + detail
	}
	fmt.Fprintln(d.out, line)
}

// Stop halts the spinner without printing a result. Use it before prompting.
func (d *Display) Stop() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// IsTTY reports whether the display animates a spinner.
func (d *Display) IsTTY() bool {
	return d.capabilities.IsTTY
}
