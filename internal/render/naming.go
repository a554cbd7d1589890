package render

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words at separators and case boundaries:
// "fieldTestEntity" → [field Test Entity], "XMLHttp_request" → [XML Http request].
func Words(s string) []string {
	var (
		words   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if unicode.IsUpper(r) && len(current) > 0 {
			prev := current[len(current)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}

// PascalCase joins the words of s with each word title-cased:
// "foo" → "Foo", "FOO" → "Foo", "field_test-entity" → "FieldTestEntity".
func PascalCase(s string) string {
	title := cases.Title(language.Und)

	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// CamelCase is PascalCase with a lower-cased first word.
func CamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	b.WriteString(lower.String(words[0]))
	for _, w := range words[1:] {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// LowerFirst lower-cases the first rune only.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Plural returns the English plural of a singular noun for the common
// regular forms: entity → entities, box → boxes, foo → foos.
func Plural(s string) string {
	if s == "" {
		return s
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !strings.ContainsRune("aeiou", rune(lower[len(lower)-2])):
		return s[:len(s)-1] + matchCase(s, "ies")
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "sh"):
		return s + matchCase(s, "es")
	default:
		return s + matchCase(s, "s")
	}
}

// matchCase upper-cases suffix when s ends in an upper-case letter.
func matchCase(s, suffix string) string {
	r, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsUpper(r) {
		return strings.ToUpper(suffix)
	}
	return suffix
}

// JSONString quotes s as a JSON string literal.
func JSONString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
