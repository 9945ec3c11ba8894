package query

import (
	"regexp"
	"strings"
	"unicode"
)

// emailRe matches syntactically plausible email addresses. PostgreSQL's
// text search parser recognizes emails as single tokens, so they must
// reach the engine untouched by the character filter.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// IsEmail reports whether term looks like an email address
func IsEmail(term string) bool {
	return emailRe.MatchString(term)
}

// FilterTerm removes illegal characters from a single search term.
// Email addresses are returned unchanged. For everything else, runs of
// characters outside Unicode letters/digits and outside the query
// syntax set are collapsed to a single space and the result is trimmed.
func FilterTerm(term string) string {
	if IsEmail(term) {
		return term
	}

	var sb strings.Builder
	space := false
	for _, ch := range term {
		if legalTermRune(ch) {
			if space && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			space = false
			sb.WriteRune(ch)
			continue
		}
		space = true
	}
	return sb.String()
}

func legalTermRune(ch rune) bool {
	if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
		return true
	}
	// Structural characters the grammar consumes downstream.
	switch ch {
	case '"', '(', ')', '|', '-':
		return true
	}
	return false
}

// Normalize cleans raw query text before parsing: hyphens between words
// split compound terms, hyphens at the start of a word are kept as the
// negation marker, and each whitespace-separated token is filtered.
// Returns the empty string when nothing survives.
func Normalize(raw string) string {
	q := splitInternalHyphens(strings.TrimSpace(raw))

	var parts []string
	for _, part := range strings.Fields(q) {
		filtered := strings.TrimSpace(FilterTerm(part))
		if filtered != "" {
			parts = append(parts, filtered)
		}
	}
	return strings.Join(parts, " ")
}

// splitInternalHyphens converts every hyphen with a non-space character
// on both sides into a space. A hyphen preceded by start-of-string or
// whitespace is left alone: that is the negation operator. Neighbors are
// judged against the input, so "a--b" splits on both hyphens.
func splitInternalHyphens(s string) string {
	in := []rune(s)
	out := make([]rune, len(in))
	copy(out, in)
	for i, ch := range in {
		if ch != '-' {
			continue
		}
		if i == 0 || unicode.IsSpace(in[i-1]) {
			continue
		}
		if i+1 >= len(in) || unicode.IsSpace(in[i+1]) {
			continue
		}
		out[i] = ' '
	}
	return string(out)
}
