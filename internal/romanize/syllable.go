package romanize

import (
	"strings"
	"unicode"
)

// Syllable is one parsed syllable of a word part. Text holds the
// lowercased syllable (initial+final); Remainder holds the unparsed
// tail of the word part in its original casing, which the chunker
// feeds back into the parser until nothing is left.
type Syllable struct {
	Text      string
	Initial   string
	Final     string
	Remainder string
	Valid     bool

	// Diagnostics explains why the syllable is invalid. Empty for
	// valid syllables.
	Diagnostics []string

	// Casing of the source text, captured per syllable so conversion
	// can restore it on the converted form.
	Uppercase   bool
	Capitalized bool

	// Leading separator on the source part. Stripped records whether
	// the separator was removed before parsing; Wade-Giles keeps a
	// leading apostrophe as part of the syllable text.
	LeadApostrophe bool
	LeadDash       bool
	Stripped       bool
}

// bare returns the syllable text without any leading apostrophe mark,
// which is what contraction matching and joining operate on.
func (s Syllable) bare() string {
	return stripLeadingApostrophes(s.Text)
}

// restoreCase reapplies the source casing to a converted syllable.
func (s Syllable) restoreCase(text string) string {
	if s.Uppercase {
		return strings.ToUpper(text)
	}
	if s.Capitalized {
		return capitalize(text)
	}
	return text
}

// capitalize uppercases the first letter and lowercases the rest, so a
// title-cased source stays title-cased after conversion even when the
// converted form starts with an apostrophe (e.g. Ch'ang).
func capitalize(s string) string {
	rs := []rune(strings.ToLower(s))
	for i, r := range rs {
		if unicode.IsLetter(r) {
			rs[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(rs)
}

// isUpperWord reports whether rs contains a letter and every letter in
// it is uppercase.
func isUpperWord(rs []rune) bool {
	seen := false
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		seen = true
	}
	return seen
}

// isTitleWord reports whether rs starts with an uppercase letter
// followed only by lowercase letters.
func isTitleWord(rs []rune) bool {
	first := true
	seen := false
	for _, r := range rs {
		if !unicode.IsLetter(r) {
			continue
		}
		seen = true
		if first {
			if !unicode.IsUpper(r) {
				return false
			}
			first = false
			continue
		}
		if !unicode.IsLower(r) {
			return false
		}
	}
	return seen && !first
}

// letterRunes extracts just the letters of s, used for word-level
// casing checks where separators should not count.
func letterRunes(s string) []rune {
	var out []rune
	for _, r := range s {
		if unicode.IsLetter(r) {
			out = append(out, r)
		}
	}
	return out
}
