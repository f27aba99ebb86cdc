// Package notifier locates the hook executable that gets written into Claude Code
// settings. The default layout installs it next to the running binary, or inside
// the application bundle on macOS.
package notifier

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultName is the file name of the notifier executable.
const DefaultName = "claude-notifier"

// Resolve locates DefaultName relative to the running executable.
func Resolve() (string, bool) {
	return NewResolver(DefaultName)()
}

// NewResolver returns a resolver that looks for the executable called name
// relative to the running binary.
func NewResolver(name string) func() (string, bool) {
	return func() (string, bool) {
		exe, err := DetectBinaryLocation()
		if err != nil {
			return "", false
		}
		return find(Candidates(exe, name, runtime.GOOS))
	}
}

// Fixed returns a resolver that reports path when it names an existing regular
// file. An empty path never resolves.
func Fixed(path string) func() (string, bool) {
	return func() (string, bool) {
		if path == "" {
			return "", false
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", false
		}
		return find([]string{abs})
	}
}

// DetectBinaryLocation returns the absolute path to the current executable
// with symlinks resolved.
func DetectBinaryLocation() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(exePath)
	if err != nil {
		return "", err
	}

	return resolved, nil
}

// Candidates lists where the notifier may live for a binary at exe, in lookup order.
// Inside a macOS bundle (…/Foo.app/Contents/MacOS/foo) the bundle's MacOS and
// Helpers directories are searched first.
func Candidates(exe, name, goos string) []string {
	if goos == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		name += ".exe"
	}

	dir := filepath.Dir(exe)
	var out []string
	if goos == "darwin" {
		if contents, ok := bundleContents(dir); ok {
			out = append(out,
				filepath.Join(contents, "MacOS", name),
				filepath.Join(contents, "Helpers", name),
			)
		}
	}

	sibling := filepath.Join(dir, name)
	for _, c := range out {
		if c == sibling {
			return out
		}
	}
	return append(out, sibling)
}

// bundleContents returns the Contents directory of the .app bundle containing dir.
func bundleContents(dir string) (string, bool) {
	for d := dir; ; {
		if strings.HasSuffix(d, ".app") {
			return filepath.Join(d, "Contents"), true
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", false
		}
		d = parent
	}
}

func find(candidates []string) (string, bool) {
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return c, true
	}
	return "", false
}
