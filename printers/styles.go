package printers

import (
	"fmt"

	"github.com/arunsworld/nstimes"
	"github.com/fatih/color"
)

var (
	red       = color.New(color.FgRed, color.Bold).SprintFunc()
	cyan      = color.New(color.FgCyan, color.Bold).SprintFunc()
	cancelled = color.New(color.FgRed, color.Bold, color.CrossedOut).SprintFunc()
)

// formatTime shows the planned time with the delay, if any, marked in red: 10:00+5.
func formatTime(t nstimes.Time) string {
	result := t.Planned.Format("15:04")
	if t.Delayed() {
		result += red(fmt.Sprintf("%+d", t.DelayMinutes()))
	}
	return result
}
