package claude

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// document is the decoded settings file. Numbers stay json.Number so values
// written by other tools round-trip exactly.
type document = map[string]any

// readDocument loads the settings file. A missing file is reported as
// exists=false with a nil error.
func readDocument(path string) (doc document, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: reading %s: %w", ErrSettingsUnreadable, path, err)
	}

	doc, err = decodeDocument(data)
	if err != nil {
		return nil, true, fmt.Errorf("%w: parsing %s: %w", ErrSettingsCorrupted, path, err)
	}
	return doc, true, nil
}

// decodeDocument parses data as exactly one JSON object. encoding/json would
// replace invalid UTF-8 with U+FFFD, so such files are rejected up front.
func decodeDocument(data []byte) (document, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("file is not valid UTF-8")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("file is empty")
		}
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, want object", jsonTypeName(v))
	}
	return obj, nil
}

// encodeDocument renders doc with sorted keys, two-space indentation, no HTML
// escaping and a trailing newline.
func encodeDocument(doc document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("serializing settings: %w", err)
	}
	return buf.Bytes(), nil
}

// writeDocument creates the parent directory if needed and replaces the
// settings file atomically.
func writeDocument(path string, doc document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + rename.
// The mode of an existing file is kept. A symlinked file is written through
// to its target so the link survives.
func atomicWrite(filePath string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(filePath); err == nil {
		filePath = resolved
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(filePath); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(filePath)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filePath, err)
	}

	tmpPath = ""
	return nil
}

// objectField returns obj[key] when it is a JSON object.
func objectField(obj map[string]any, key string) (map[string]any, bool) {
	v, ok := obj[key].(map[string]any)
	return v, ok
}

// arrayField returns obj[key] when it is a JSON array.
func arrayField(obj map[string]any, key string) ([]any, bool) {
	v, ok := obj[key].([]any)
	return v, ok
}

// stringField returns obj[key] when it is a JSON string.
func stringField(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key].(string)
	return v, ok
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
