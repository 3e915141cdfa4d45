package romanize

import "strings"

// engine holds the per-method walk shared by both strategies: find the
// initial by scanning to the first vowel, then grow the final one rune
// at a time, settling boundary ties against the validity table.
type engine struct {
	m   Method
	tbl *Table
}

// findInitial scans for the first vowel; everything before it is the
// initial. A leading vowel means a vowel-onset syllable (no initial).
// Separators bound the initial early: an apostrophe ends it, and in
// Wade-Giles the apostrophe itself belongs to the initial (p', ch').
func (e *engine) findInitial(text []rune) []rune {
	for i, r := range text {
		if isVowel(r) {
			return text[:i]
		}
		if isApostrophe(r) {
			if e.m == WadeGiles {
				return text[:i+1]
			}
			return text[:i]
		}
		if isDash(r) {
			return text[:i]
		}
	}
	return text
}

// vowelCase decides whether the final can keep growing past the vowel
// at index i. It keeps growing while some final in the inventory still
// extends the current prefix under this initial; when no candidate is
// left the final ends just before i. The ok result is false when the
// walk should continue.
func (e *engine) vowelCase(text []rune, i int, initial string) (string, bool) {
	if i+1 == len(text) {
		return string(text), true
	}
	prefix := string(text[:i+1])
	for _, fin := range e.tbl.Finals() {
		if strings.HasPrefix(fin, prefix) && e.tbl.Valid(initial, fin) {
			return "", false
		}
	}
	if i == 0 {
		// No final starts here; keep scanning so the whole run is
		// reported as one invalid syllable rather than split apart.
		return "", false
	}
	return string(text[:i]), true
}

// consonantCase ends the final at a consonant, settling the special
// boundaries: er may absorb the consonant r, and n may extend to ng.
// Ties go to the shorter form when the following text needs the
// consonant to start its own syllable, which is what segments
// "changan" as chan+gan rather than chang+an.
func (e *engine) consonantCase(text []rune, i int, initial string) string {
	remainder := len(text) - i - 1

	if i > 0 && text[i-1] == 'e' && text[i] == 'r' {
		if remainder == 0 || !isVowel(text[i+1]) {
			return string(text[:i+1])
		}
	}

	if text[i] == 'n' {
		ng := remainder > 0 && text[i+1] == 'g'
		validNG := ng && (remainder == 1 || !isVowel(text[i+2]) || !e.tbl.Valid(initial, string(text[:i+1])))
		if validNG {
			return string(text[:i+2])
		}
		if ng {
			return string(text[:i+1])
		}
		validN := remainder == 0 || !isVowel(text[i+1]) || !e.tbl.Valid(initial, string(text[:i]))
		if validN {
			return string(text[:i+1])
		}
		return string(text[:i])
	}

	return string(text[:i])
}

// walkFinal runs the vowel/consonant walk over text until a boundary
// decision is reached; text with no boundary is a single final.
func (e *engine) walkFinal(text []rune, initial string) string {
	for i, r := range text {
		if isVowel(r) {
			if fin, ok := e.vowelCase(text, i, initial); ok {
				return fin
			}
			continue
		}
		return e.consonantCase(text, i, initial)
	}
	return string(text)
}
