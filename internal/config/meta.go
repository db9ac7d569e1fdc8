package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// New Settings fields show up automatically.
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "HotkeysConfig" {
		return map[string]string{
			"paste":        "CTRL + V",
			"show_history": "CTRL + ALT + H",
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			case "ssh_port":
				return DefaultSSHPort
			}
			return 10
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "platform":
			return DefaultPlatform
		case "ssh_host":
			return DefaultSSHHost
		default:
			return "example"
		}
	}

	return nil
}
