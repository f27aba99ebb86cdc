package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ariel-frischer/claudehooks/internal/notify"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

var validate = newValidator()

// newValidator reports fields by their koanf key instead of the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateConfigValues validates configuration values against expected types and constraints.
// Returns nil if valid, or a ValidationError with field information if invalid.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				FilePath: filePath,
				Field:    fieldPath(fe),
				Message:  describe(fe),
			}
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if cfg.Kind == "UserPromptSubmit" && cfg.Matcher != "" {
		return &ValidationError{
			FilePath: filePath,
			Field:    "matcher",
			Message:  "only applies to PreToolUse hooks",
		}
	}

	if !notify.ValidOutputType(string(cfg.Notifications.Type)) {
		return &ValidationError{
			FilePath: filePath,
			Field:    "notifications.type",
			Message:  "must be one of: sound, visual, both",
		}
	}

	if cfg.Notifications.MaxPromptLength < 0 {
		return &ValidationError{
			FilePath: filePath,
			Field:    "notifications.max_prompt_length",
			Message:  "must not be negative",
		}
	}

	if cfg.Notifications.Timeout < 0 {
		return &ValidationError{
			FilePath: filePath,
			Field:    "notifications.timeout",
			Message:  "must not be negative",
		}
	}

	if cfg.LockTimeout <= 0 {
		return &ValidationError{
			FilePath: filePath,
			Field:    "lock_timeout",
			Message:  "must be positive",
		}
	}

	return nil
}

// fieldPath strips the struct name from the namespace: Configuration.identifiers[0] -> identifiers[0].
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required for PreToolUse hooks"
	case "required_without":
		return "is required when notifier_path is not set"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
