package lang

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Default represents the fallback language code used when no explicit language
// is configured. The value follows BCP 47 conventions.
const Default = "en"

var errEmptyCode = errors.New("language code cannot be empty")

// Normalize validates the provided language code and returns it in a
// canonicalised form (lowercase language, uppercase region). Supported formats
// follow the common `ll` or `ll-RR` pattern.
func Normalize(code string) (string, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if trimmed == "" {
		return "", errEmptyCode
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid language code %q", code)
	}

	language := strings.ToLower(parts[0])
	if len(language) < 2 || len(language) > 8 || !isLetters(language) {
		return "", fmt.Errorf("invalid language code %q", code)
	}

	if len(parts) == 1 {
		return language, nil
	}

	region := parts[1]
	if len(region) < 2 || len(region) > 3 || !isLetters(region) {
		return "", fmt.Errorf("invalid language region in %q", code)
	}

	return language + "-" + strings.ToUpper(region), nil
}

// OrDefault normalises code and falls back to Default when it is invalid.
func OrDefault(code string) string {
	normalized, err := Normalize(code)
	if err != nil {
		return Default
	}
	return normalized
}

func isLetters(value string) bool {
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
