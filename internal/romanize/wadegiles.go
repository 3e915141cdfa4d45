package romanize

// wadeGilesStrategy segments Wade-Giles. Boundaries are ambiguous when
// the text carries no separators, so the final is found by search
// against the validity table rather than by the shared walk: candidate
// finals are tried longest first, with a one-step lookahead that the
// remaining text can still begin a syllable.
type wadeGilesStrategy struct {
	engine
}

func (w *wadeGilesStrategy) method() Method { return WadeGiles }
func (w *wadeGilesStrategy) table() *Table  { return w.tbl }

func (w *wadeGilesStrategy) findFinal(text []rune, initial string) string {
	// An apostrophe marks the next syllable's aspirated initial, so
	// the final ends before it. The marked form may pull trailing
	// consonants with it (linp'ing is lin+p'ing, not linp+'ing); back
	// off over consonants until the final validates.
	for i, r := range text {
		if !isApostrophe(r) {
			continue
		}
		fin := text[:i]
		for len(fin) > 0 && !w.tbl.Valid(initial, string(fin)) {
			if isVowel(fin[len(fin)-1]) {
				break
			}
			fin = fin[:len(fin)-1]
		}
		if len(fin) == 0 {
			return string(text[:i])
		}
		return string(fin)
	}

	if initial != "" {
		best := ""
		haveBest := false
		for end := len(text); end >= 1; end-- {
			fin := text[:end]
			if !w.tbl.Valid(initial, string(fin)) {
				continue
			}
			rest := text[end:]
			if len(rest) == 0 {
				return string(fin)
			}
			if !haveBest && w.canStartSyllable(rest) {
				best = string(fin)
				haveBest = true
			}
		}
		if haveBest {
			return best
		}
		return string(text)
	}

	// Vowel onset: the candidate covers the whole first syllable, so
	// try lengths shortest first and validate the candidate as a full
	// syllable (erhai is erh+ai, not er+hai).
	for end := 2; end <= len(text); end++ {
		cand := text[:end]
		if !w.wholeSyllable(cand) {
			continue
		}
		rest := text[end:]
		if len(rest) == 0 || w.canStartSyllable(rest) {
			return string(cand)
		}
	}
	return string(text)
}

// wholeSyllable reports whether text is exactly one valid syllable
// under some initial+final decomposition, longest initial first.
func (w *wadeGilesStrategy) wholeSyllable(text []rune) bool {
	s := string(text)
	for _, ini := range w.tbl.InitialsByLength() {
		if len(s) > len(ini) && s[:len(ini)] == ini {
			if w.tbl.Valid(ini, s[len(ini):]) {
				return true
			}
		}
	}
	return len(text) > 0 && isVowel(text[0]) && w.tbl.Valid("", s)
}

// canStartSyllable is the lookahead: the text begins with a known
// initial or a vowel, so a further syllable is at least possible.
func (w *wadeGilesStrategy) canStartSyllable(text []rune) bool {
	if len(text) == 0 {
		return false
	}
	s := string(text)
	for _, ini := range w.tbl.InitialsByLength() {
		if len(s) >= len(ini) && s[:len(ini)] == ini {
			return true
		}
	}
	return isVowel(text[0])
}
