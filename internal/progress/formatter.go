package progress

import (
	"fmt"

	"github.com/fatih/color"
)

// formatStepCounter returns the [N/Total] step counter string
func formatStepCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

func buildStepMessage(step Step) string {
	return fmt.Sprintf("%s %s", formatStepCounter(step.Number, step.Total), step.Name)
}

// paint applies attr to s when color is supported.
func paint(s string, supportsColor bool, attr color.Attribute) string {
	c := color.New(attr)
	if supportsColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func checkmark(symbols Symbols, supportsColor bool) string {
	return paint(symbols.Checkmark, supportsColor, color.FgGreen)
}

func failureMark(symbols Symbols, supportsColor bool) string {
	return paint(symbols.Failure, supportsColor, color.FgRed)
}

func warningMark(symbols Symbols, supportsColor bool) string {
	return paint(symbols.Warning, supportsColor, color.FgYellow)
}
