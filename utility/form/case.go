package form

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseParser splits an identifier into lowercase segments on uppercase letters
// and underscores.
func CaseParser(s string) []string {
	if s == "" {
		return []string{}
	}

	var segments []string
	var current strings.Builder

	for i, r := range s {
		if i == 0 {
			current.WriteRune(unicode.ToLower(r))
			continue
		}

		// * split on uppercase letters or underscores
		if unicode.IsUpper(r) || r == '_' {
			if current.Len() > 0 {
				segments = append(segments, current.String())
				current.Reset()
			}
			// * skip underscores
			if r != '_' {
				current.WriteRune(unicode.ToLower(r))
			}
		} else {
			current.WriteRune(r)
		}
	}

	// * add last segment
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// ToPascalCase converts an identifier to pascal case
func ToPascalCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	caser := cases.Title(language.English)
	var result strings.Builder
	for _, segment := range segments {
		if segment != "" {
			result.WriteString(caser.String(segment))
		}
	}

	return result.String()
}

// ToSnakeCase converts an identifier to snake case
func ToSnakeCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	return strings.Join(segments, "_")
}
