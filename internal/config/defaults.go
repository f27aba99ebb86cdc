package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"app_name":      "claudehooks",
		"identifiers":   []string{"claude-notifier"},
		"kind":          "UserPromptSubmit",
		"matcher":       "",
		"timeout":       10,
		"settings_dir":  "~/.claude",
		"notifier_path": "",
		"notifier_name": "claude-notifier",
		"lock_timeout":  "10s",

		"notifications.enabled":               true,
		"notifications.type":                  "visual",
		"notifications.sound_file":            "",
		"notifications.on_user_prompt_submit": true,
		"notifications.on_pre_tool_use":       true,
		"notifications.max_prompt_length":     80,
		"notifications.timeout":               "5s",
		"notifications.log_file":              "",
	}
}
