package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases an identifier and drops separators, so that
// "MetersPerSecond", "meters_per_second" and "meters-per-second" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// SnakeCase converts an identifier to snake_case: "LinearVelocity" becomes
// "linear_velocity".
func SnakeCase(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "MetersPerSecond" -> ["Meters", "Per", "Second"]
//   - "kilometersPerHour" -> ["kilometers", "Per", "Hour"]
//   - "PSIGauge" -> ["PSI", "Gauge"]
//   - "square_feet" -> ["square", "feet"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Handle separators - start a new token
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}

// TokenizeIdent splits an identifier into lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}
