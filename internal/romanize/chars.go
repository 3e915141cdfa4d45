package romanize

import "strings"

// Character classes shared by the segmentation walk and the chunker.
// Vowels include the diacritic forms that survive NFC normalization;
// v is accepted as a keyboard substitute for ü.
const (
	vowelChars      = "aeiouüvêŭ"
	apostropheChars = "'’‘ʼʻ`"
	dashChars       = "-–—"
)

func isVowel(r rune) bool {
	return strings.ContainsRune(vowelChars, r)
}

func isApostrophe(r rune) bool {
	return strings.ContainsRune(apostropheChars, r)
}

func isDash(r rune) bool {
	return strings.ContainsRune(dashChars, r)
}

// normalizeApostrophes folds every apostrophe variant to the ASCII form
// so table lookups succeed regardless of which mark the source text used.
func normalizeApostrophes(s string) string {
	return strings.Map(func(r rune) rune {
		if isApostrophe(r) {
			return '\''
		}
		return r
	}, s)
}

// stripLeadingApostrophes removes apostrophe marks from the front of s.
func stripLeadingApostrophes(s string) string {
	return strings.TrimLeft(s, apostropheChars)
}
