package utils

import (
	"strings"
	"unicode"
)

// MaskSecret hides all but the last four characters of an API key.
// Empty input stays empty so clients can tell "unset" from "set".
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:3] + "..." + secret[len(secret)-4:]
}

// IsMasked reports whether the value looks like output of MaskSecret
func IsMasked(value string) bool {
	return strings.Contains(value, "...") || (value != "" && strings.Trim(value, "*") == "")
}

// StripWhitespace removes every whitespace rune from s
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
