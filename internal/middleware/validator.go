package middleware

import (
	"strings"
)

// Input sanitization utilities. Analysis input is deliberately never rejected
// for being an odd URL: the pipeline produces a verdict for any string. We only
// strip control bytes and bound lengths.

const maxURLLength = 2048

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// SanitizeURL trims and bounds a raw product URL
func SanitizeURL(raw string) string {
	s := SanitizeString(raw)
	if len(s) > maxURLLength {
		s = s[:maxURLLength]
	}
	return s
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

// ValidatePage validates page number
func ValidatePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// ValidateDays validates days parameter
func ValidateDays(days int) int {
	if days <= 0 {
		return 7 // default
	}
	if days > 365 {
		return 365 // max 1 year
	}
	return days
}
