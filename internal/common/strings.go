package common

import (
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// LowerFirst returns s with its first rune lowercased ("DivTime" -> "divTime").
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// IsExported reports whether s starts with an upper-case letter.
func IsExported(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
