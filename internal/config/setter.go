package config

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrEmptyKeyPath is returned when an empty key path is provided.
var ErrEmptyKeyPath = errors.New("empty key path")

// SetConfigValue validates value against the schema for key and writes it to
// the JSON config file at filePath, keeping the file's other keys.
// Creates the file if it doesn't exist.
func SetConfigValue(filePath, key, value string) error {
	if key == "" {
		return ErrEmptyKeyPath
	}
	parsed, err := ValidateValue(key, value)
	if err != nil {
		return fmt.Errorf("validating value: %w", err)
	}

	k, err := loadFile(filePath)
	if err != nil {
		return err
	}
	if err := k.Set(key, parsed.Parsed); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return writeKoanf(filePath, k)
}

// UnsetConfigValue removes key from the config file so the default applies again.
// A missing file or key is not an error.
func UnsetConfigValue(filePath, key string) error {
	if key == "" {
		return ErrEmptyKeyPath
	}
	if _, err := GetKeySchema(key); err != nil {
		return err
	}
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	k, err := loadFile(filePath)
	if err != nil {
		return err
	}
	if !k.Exists(key) {
		return nil
	}
	k.Delete(key)
	return writeKoanf(filePath, k)
}

// UnknownKeys lists keys in the config file at filePath that claudehooks does
// not recognize, typically typos. A missing file has none.
func UnknownKeys(filePath string) ([]string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	}
	k, err := loadFile(filePath)
	if err != nil {
		return nil, err
	}
	var unknown []string
	for _, key := range k.Keys() {
		if _, ok := KnownKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	return unknown, nil
}

// loadFile reads one JSON config file; a missing file yields an empty instance.
func loadFile(filePath string) (*koanf.Koanf, error) {
	k := koanf.New(".")
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return k, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := k.Load(file.Provider(filePath), json.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return k, nil
}

// writeKoanf serializes k as indented JSON and replaces filePath atomically.
func writeKoanf(filePath string, k *koanf.Koanf) error {
	compact, err := k.Marshal(json.Parser())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var out bytes.Buffer
	if err := stdjson.Indent(&out, compact, "", "  "); err != nil {
		return fmt.Errorf("formatting config: %w", err)
	}
	out.WriteByte('\n')
	if err := writeAtomically(filePath, out.Bytes()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// writeAtomically writes content to a file atomically using a temporary file and rename.
// Creates parent directories if they don't exist.
func writeAtomically(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpFile, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	tmpPath = ""
	return nil
}
