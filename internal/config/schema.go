package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeInt
	TypeDuration
	TypeString
	TypeEnum
	TypeList
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeDuration:
		return "duration"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	case TypeList:
		return "list"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Dotted key path (e.g., "notifications.enabled")
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
}

// KnownKeys is the registry of all known configuration keys with their schemas.
// Defaults live in GetDefaults.
var KnownKeys = map[string]ConfigKeySchema{
	"app_name": {
		Path:        "app_name",
		Type:        TypeString,
		Description: "Application name reported when the notifier cannot be found",
	},
	"identifiers": {
		Path:        "identifiers",
		Type:        TypeList,
		Description: "Comma-separated substrings that mark a hook command as this application's",
	},
	"kind": {
		Path:          "kind",
		Type:          TypeEnum,
		AllowedValues: []string{"UserPromptSubmit", "PreToolUse"},
		Description:   "Hook event the notifier is registered for",
	},
	"matcher": {
		Path:        "matcher",
		Type:        TypeString,
		Description: "Tool name matched by a PreToolUse hook (e.g., ExitPlanMode)",
	},
	"timeout": {
		Path:        "timeout",
		Type:        TypeInt,
		Description: "Seconds Claude Code waits for a PreToolUse hook; 0 omits the field",
	},
	"settings_dir": {
		Path:        "settings_dir",
		Type:        TypeString,
		Description: "Claude Code settings directory",
	},
	"notifier_path": {
		Path:        "notifier_path",
		Type:        TypeString,
		Description: "Explicit notifier executable; skips discovery when set",
	},
	"notifier_name": {
		Path:        "notifier_name",
		Type:        TypeString,
		Description: "Notifier file name searched for next to the claudehooks binary",
	},
	"lock_timeout": {
		Path:        "lock_timeout",
		Type:        TypeDuration,
		Description: "How long to wait for the settings lock (e.g., 10s)",
	},
	"notifications.enabled": {
		Path:        "notifications.enabled",
		Type:        TypeBool,
		Description: "Enable or disable all notifications",
	},
	"notifications.type": {
		Path:          "notifications.type",
		Type:          TypeEnum,
		AllowedValues: []string{"sound", "visual", "both"},
		Description:   "Notification output type",
	},
	"notifications.sound_file": {
		Path:        "notifications.sound_file",
		Type:        TypeString,
		Description: "Custom sound file played for sound notifications",
	},
	"notifications.log_file": {
		Path:        "notifications.log_file",
		Type:        TypeString,
		Description: "File claude-notifier writes debug logs to (rotated at 1 MB)",
	},
	"notifications.on_user_prompt_submit": {
		Path:        "notifications.on_user_prompt_submit",
		Type:        TypeBool,
		Description: "Notify when a prompt is submitted",
	},
	"notifications.on_pre_tool_use": {
		Path:        "notifications.on_pre_tool_use",
		Type:        TypeBool,
		Description: "Notify before a matched tool runs",
	},
	"notifications.max_prompt_length": {
		Path:        "notifications.max_prompt_length",
		Type:        TypeInt,
		Description: "Truncate prompt text in notifications to this many characters; 0 disables",
	},
	"notifications.timeout": {
		Path:        "notifications.timeout",
		Type:        TypeDuration,
		Description: "Give up on a notification after this long (e.g., 5s)",
	},
}

// SortedKeys returns the known key paths in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ParsedValue represents a configuration value after validation.
type ParsedValue struct {
	Raw    string      // Original string input from user
	Parsed interface{} // Value converted to correct type
	Type   ConfigValueType
}

// ValidateValue validates a value against the schema for a given key.
// Returns the parsed value or an error with details about what's wrong.
func ValidateValue(key, value string) (ParsedValue, error) {
	schema, err := GetKeySchema(key)
	if err != nil {
		return ParsedValue{}, err
	}
	return validateAgainstSchema(schema, value)
}

func validateAgainstSchema(schema ConfigKeySchema, value string) (ParsedValue, error) {
	switch schema.Type {
	case TypeBool:
		return parseBoolValue(value)
	case TypeInt:
		return parseIntValue(value)
	case TypeDuration:
		return parseDurationValue(value)
	case TypeEnum:
		return parseEnumValue(schema, value)
	case TypeList:
		return parseListValue(value)
	case TypeString:
		return ParsedValue{Raw: value, Parsed: value, Type: TypeString}, nil
	default:
		return ParsedValue{}, fmt.Errorf("unsupported type: %v", schema.Type)
	}
}

func parseBoolValue(value string) (ParsedValue, error) {
	switch strings.ToLower(value) {
	case "true":
		return ParsedValue{Raw: value, Parsed: true, Type: TypeBool}, nil
	case "false":
		return ParsedValue{Raw: value, Parsed: false, Type: TypeBool}, nil
	default:
		return ParsedValue{}, fmt.Errorf("invalid boolean: %q (expected true or false)", value)
	}
}

func parseIntValue(value string) (ParsedValue, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return ParsedValue{}, fmt.Errorf("invalid integer: %q", value)
	}
	return ParsedValue{Raw: value, Parsed: n, Type: TypeInt}, nil
}

func parseDurationValue(value string) (ParsedValue, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return ParsedValue{}, fmt.Errorf("invalid duration: %q (examples: 500ms, 5s, 1m)", value)
	}
	return ParsedValue{Raw: value, Parsed: d.String(), Type: TypeDuration}, nil
}

func parseEnumValue(schema ConfigKeySchema, value string) (ParsedValue, error) {
	for _, allowed := range schema.AllowedValues {
		if value == allowed {
			return ParsedValue{Raw: value, Parsed: value, Type: TypeEnum}, nil
		}
	}
	return ParsedValue{}, fmt.Errorf(
		"invalid value: %q (valid options: %s)",
		value,
		strings.Join(schema.AllowedValues, ", "),
	)
}

// parseListValue splits a comma-separated list, dropping blank items.
func parseListValue(value string) (ParsedValue, error) {
	items := splitList(value)
	if len(items) == 0 {
		return ParsedValue{}, fmt.Errorf("invalid list: %q (expected comma-separated values)", value)
	}
	return ParsedValue{Raw: value, Parsed: items, Type: TypeList}, nil
}

func splitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
