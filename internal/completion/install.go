package completion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Action describes what Install or Uninstall did.
type Action string

const (
	ActionInstalled Action = "installed"
	ActionUpdated   Action = "updated"
	ActionSkipped   Action = "skipped"
	ActionRemoved   Action = "removed"
)

// Result is the outcome of an Install or Uninstall.
type Result struct {
	Shell      Shell
	Path       string
	BackupPath string
	Action     Action
}

// PermissionError indicates a permission-related failure during installation
type PermissionError struct {
	Path      string
	Operation string
	Err       error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: cannot %s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

// IsPermissionError checks if an error is a PermissionError
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

// Installer writes completions below HomeDir. Generate renders the completion
// script for standalone targets.
type Installer struct {
	HomeDir  string
	GOOS     string
	Generate func(Shell, io.Writer) error
	now      func() time.Time
}

func (i *Installer) clock() time.Time {
	if i.now != nil {
		return i.now()
	}
	return time.Now()
}

// Install sets up completions for shell. An rc file that already carries the
// marked block is left alone; a standalone script is always rewritten.
func (i *Installer) Install(shell Shell) (Result, error) {
	target := TargetFor(shell, i.HomeDir, i.GOOS)
	if target.Standalone {
		return i.installScript(target)
	}
	return i.installBlock(target)
}

func (i *Installer) installScript(target Target) (Result, error) {
	if i.Generate == nil {
		return Result{}, errors.New("no completion generator configured")
	}
	var script bytes.Buffer
	if err := i.Generate(target.Shell, &script); err != nil {
		return Result{}, fmt.Errorf("generating %s completion: %w", target.Shell, err)
	}

	action := ActionInstalled
	if _, err := os.Stat(target.Path); err == nil {
		action = ActionUpdated
	}
	if err := writeFile(target.Path, script.Bytes()); err != nil {
		return Result{}, err
	}
	return Result{Shell: target.Shell, Path: target.Path, Action: action}, nil
}

func (i *Installer) installBlock(target Target) (Result, error) {
	content, err := readFile(target.Path)
	if err != nil {
		return Result{}, err
	}
	if hasBlock(content) {
		return Result{Shell: target.Shell, Path: target.Path, Action: ActionSkipped}, nil
	}

	backup, err := i.backup(target.Path, content)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	buf.Write(content)
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		buf.WriteByte('\n')
	}
	buf.WriteString("\n" + Block(target.Shell))
	if err := writeFile(target.Path, buf.Bytes()); err != nil {
		return Result{}, err
	}
	return Result{Shell: target.Shell, Path: target.Path, BackupPath: backup, Action: ActionInstalled}, nil
}

// Uninstall removes what Install added for shell. Nothing to remove is
// reported as ActionSkipped.
func (i *Installer) Uninstall(shell Shell) (Result, error) {
	target := TargetFor(shell, i.HomeDir, i.GOOS)
	result := Result{Shell: target.Shell, Path: target.Path, Action: ActionSkipped}

	if target.Standalone {
		err := os.Remove(target.Path)
		switch {
		case err == nil:
			result.Action = ActionRemoved
		case errors.Is(err, os.ErrNotExist):
		default:
			return Result{}, wrapFSError(err, target.Path, "remove")
		}
		return result, nil
	}

	content, err := readFile(target.Path)
	if err != nil {
		return Result{}, err
	}
	stripped, found := stripBlock(content)
	if !found {
		return result, nil
	}
	backup, err := i.backup(target.Path, content)
	if err != nil {
		return Result{}, err
	}
	if err := writeFile(target.Path, stripped); err != nil {
		return Result{}, err
	}
	result.Action = ActionRemoved
	result.BackupPath = backup
	return result, nil
}

// backup stores content next to path as path.claudehooks-backup-TIMESTAMP.
// Empty content needs no backup.
func (i *Installer) backup(path string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}
	backupPath := fmt.Sprintf("%s.claudehooks-backup-%s", path, i.clock().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", wrapFSError(err, backupPath, "write")
	}
	return backupPath, nil
}

func hasBlock(content []byte) bool {
	return bytes.Contains(content, []byte(StartMarker))
}

// stripBlock removes the marked block and the blank line Install put before it.
func stripBlock(content []byte) ([]byte, bool) {
	lines := strings.SplitAfter(string(content), "\n")
	out := make([]string, 0, len(lines))
	inBlock, found := false, false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == StartMarker:
			inBlock, found = true, true
			if n := len(out); n > 0 && strings.TrimSpace(out[n-1]) == "" {
				out = out[:n-1]
			}
		case inBlock && trimmed == EndMarker:
			inBlock = false
		case !inBlock:
			out = append(out, line)
		}
	}
	return []byte(strings.Join(out, "")), found
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapFSError(err, path, "read")
	}
	return content, nil
}

func writeFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapFSError(err, filepath.Dir(path), "create directory")
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return wrapFSError(err, path, "write")
	}
	return nil
}

func wrapFSError(err error, path, op string) error {
	if errors.Is(err, os.ErrPermission) {
		return &PermissionError{Path: path, Operation: op, Err: err}
	}
	return fmt.Errorf("failed to %s %s: %w", op, path, err)
}
