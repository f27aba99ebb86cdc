// Package health runs the environment checks behind 'claudehooks doctor'.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/ariel-frischer/claudehooks/internal/claude"
	"github.com/ariel-frischer/claudehooks/internal/notify"
	"github.com/dustin/go-humanize"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

func (r *HealthReport) add(c CheckResult) {
	r.Checks = append(r.Checks, c)
	if !c.Passed {
		r.Passed = false
	}
}

// Checker holds what the checks inspect. LookPath defaults to exec.LookPath.
type Checker struct {
	Manager  *claude.Manager
	Sender   notify.Sender
	LookPath func(string) (string, error)
}

// RunHealthChecks runs all health checks and returns a report
func (c Checker) RunHealthChecks() *HealthReport {
	report := &HealthReport{Passed: true}
	report.add(c.CheckClaudeCLI())
	report.add(c.CheckSettingsDir())
	report.add(c.CheckSettingsFile())
	report.add(c.CheckNotifier())
	report.add(c.CheckNotificationTools())
	report.add(c.CheckHook())
	return report
}

// CheckClaudeCLI checks if the claude executable is available
func (c Checker) CheckClaudeCLI() CheckResult {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("claude"); err != nil {
		return CheckResult{Name: "Claude CLI", Message: "Claude CLI not found in PATH"}
	}
	return CheckResult{Name: "Claude CLI", Passed: true, Message: "Claude CLI found"}
}

// CheckSettingsDir checks that the Claude Code settings directory exists.
func (c Checker) CheckSettingsDir() CheckResult {
	if !c.Manager.InstalledPrerequisite() {
		return CheckResult{Name: "Claude settings dir", Message: c.Manager.Dir() + " does not exist"}
	}
	return CheckResult{Name: "Claude settings dir", Passed: true, Message: c.Manager.Dir()}
}

// CheckSettingsFile checks that settings.json is absent or a readable JSON object.
func (c Checker) CheckSettingsFile() CheckResult {
	if err := c.Manager.Validate(); err != nil {
		return CheckResult{Name: "settings.json", Message: err.Error()}
	}
	path := c.Manager.FilePath()
	info, err := os.Stat(path)
	if err != nil {
		return CheckResult{Name: "settings.json", Passed: true, Message: path + " (not created yet)"}
	}
	return CheckResult{
		Name:   "settings.json",
		Passed: true,
		Message: fmt.Sprintf("%s (%s, modified %s)",
			path, humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime())),
	}
}

// CheckNotifier checks that the notifier resolves to an executable file.
func (c Checker) CheckNotifier() CheckResult {
	report, _ := c.Manager.Inspect()
	if !report.NotifierFound {
		return CheckResult{Name: "Notifier", Message: c.Manager.Identity().AppName() + " notifier executable not found"}
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(report.NotifierPath)
		if err != nil {
			return CheckResult{Name: "Notifier", Message: err.Error()}
		}
		if info.Mode().Perm()&0o111 == 0 {
			return CheckResult{Name: "Notifier", Message: report.NotifierPath + " is not executable"}
		}
	}
	return CheckResult{Name: "Notifier", Passed: true, Message: report.NotifierPath}
}

// CheckNotificationTools checks that the platform can show desktop notifications.
func (c Checker) CheckNotificationTools() CheckResult {
	if c.Sender == nil || !(c.Sender.VisualAvailable() || c.Sender.SoundAvailable()) {
		return CheckResult{
			Name:    "Notification tools",
			Message: fmt.Sprintf("no notification tool available on %s", notify.Platform()),
		}
	}
	return CheckResult{Name: "Notification tools", Passed: true, Message: "available on " + notify.Platform()}
}

// CheckHook checks that the hook is installed and points at the current notifier.
func (c Checker) CheckHook() CheckResult {
	switch {
	case !c.Manager.IsConfigured():
		return CheckResult{Name: "Hook", Message: "not installed (run 'claudehooks install')"}
	case c.Manager.NeedsUpdate():
		return CheckResult{Name: "Hook", Message: "stale or duplicated (run 'claudehooks repair')"}
	default:
		return CheckResult{Name: "Hook", Passed: true, Message: "installed"}
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string
	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}
	return output
}
