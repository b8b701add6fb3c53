package api

import (
	"regexp"
	"strings"
)

// 与原站一致的宽松邮箱校验：非空 local@domain.tld
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// lengthBetween reports whether the trimmed value is within [min, max] runes.
func lengthBetween(value string, min, max int) bool {
	n := len([]rune(strings.TrimSpace(value)))
	return n >= min && n <= max
}

// oneOf reports whether value matches an allowed option exactly.
func oneOf(value string, options []string) bool {
	for _, option := range options {
		if value == option {
			return true
		}
	}
	return false
}

// fieldErrors accumulates per-field validation messages.
type fieldErrors map[string]string

func (e fieldErrors) add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e fieldErrors) ok() bool {
	return len(e) == 0
}
