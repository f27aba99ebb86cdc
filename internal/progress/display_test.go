// Package progress tests step rendering and symbol selection.
// Related: internal/progress/display.go
// Tags: progress, display, spinner, tty
package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		step    Step
		wantErr bool
	}{
		"valid":           {step: Step{Name: "install", Number: 1, Total: 3}},
		"last step":       {step: Step{Name: "install", Number: 3, Total: 3}},
		"empty name":      {step: Step{Number: 1, Total: 1}, wantErr: true},
		"zero number":     {step: Step{Name: "x", Total: 1}, wantErr: true},
		"zero total":      {step: Step{Name: "x", Number: 1}, wantErr: true},
		"number too high": {step: Step{Name: "x", Number: 4, Total: 3}, wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tt.step.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStep)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDisplay_NonTTY(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	d := NewDisplay(TerminalCapabilities{}, &out, &errOut)
	step := Step{Name: "validate settings", Number: 2, Total: 3}

	require.NoError(t, d.Start(step))
	d.Complete(step, "ok")
	d.Warn(Step{Name: "install hook", Number: 3, Total: 3}, "declined")
	d.Fail(step, errors.New("boom"))

	assert.Equal(t,
		"[2/3] validate settings...\n"+
			"[OK] [2/3] validate settings: ok\n"+
			"[WARN] [3/3] install hook: declined\n"+
			"[FAIL] [2/3] validate settings: boom\n",
		out.String())
	assert.Empty(t, errOut.String())
}

func TestDisplay_StartRejectsInvalidStep(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	d := NewDisplay(TerminalCapabilities{}, &out, &out)
	assert.ErrorIs(t, d.Start(Step{}), ErrInvalidStep)
	assert.Empty(t, out.String())
}

func TestDisplay_TTYSpinnerStops(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	d := NewDisplay(TerminalCapabilities{IsTTY: true, SupportsUnicode: true}, &out, &errOut)
	step := Step{Name: "install hook", Number: 1, Total: 1}

	require.NoError(t, d.Start(step))
	d.Complete(step, "")
	assert.Nil(t, d.spinner)
	assert.Equal(t, "✓ [1/1] install hook\n", out.String())
}

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✓", SelectSymbols(TerminalCapabilities{SupportsUnicode: true}).Checkmark)
	assert.Equal(t, "[OK]", SelectSymbols(TerminalCapabilities{}).Checkmark)
}

func TestMarksColor(t *testing.T) {
	t.Parallel()

	syms := SelectSymbols(TerminalCapabilities{SupportsUnicode: true})
	assert.Equal(t, "✓", checkmark(syms, false))
	assert.Equal(t, "\x1b[32m✓\x1b[0m", checkmark(syms, true))
	assert.Equal(t, "\x1b[31m✗\x1b[0m", failureMark(syms, true))
}

func TestIsTerminal_Nil(t *testing.T) {
	t.Parallel()
	assert.False(t, IsTerminal(nil))
}
