package bridge

import (
	"strings"
	"unicode"
)

// SnakeCase converts an identifier to lower snake_case by splitting on
// uppercase-letter boundaries. Acronym runs stay together ("HTTPServer" ->
// "http_server"). Input that is already snake case is returned unchanged.
func SnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				if runes[i-1] != '_' {
					result.WriteRune('_')
				}
			}
		}
		result.WriteRune(r)
	}

	return strings.ToLower(result.String())
}

// PascalCase converts an identifier to PascalCase: each snake segment is
// capitalized.
func PascalCase(s string) string {
	parts := strings.FieldsFunc(SnakeCase(s), func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		result.WriteRune(unicode.ToUpper(runes[0]))
		result.WriteString(string(runes[1:]))
	}

	return result.String()
}

// CamelCase converts an identifier to lowerCamelCase: PascalCase with the
// first character lowered.
func CamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return pascal
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
