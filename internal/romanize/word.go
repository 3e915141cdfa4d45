package romanize

import "strings"

// English contractions that may trail a romanized name, e.g. Chang's.
// They are preserved through conversion rather than treated as failed
// syllables, but only in cherry-pick mode where mixed text is expected.
var contractions = map[string]bool{
	"s":  true,
	"d":  true,
	"ll": true,
}

// sepPrefix restores the separator a syllable carried in the source.
func sepPrefix(s Syllable) string {
	if s.LeadApostrophe && s.Stripped {
		return "'"
	}
	if s.LeadDash {
		return "-"
	}
	return ""
}

// needsApostrophe reports whether pinyin orthography requires an
// apostrophe between prev and cur: the next syllable starts with a
// vowel and the previous one ends ambiguously (vowel, er, n or ng).
func needsApostrophe(prev, cur string) bool {
	if prev == "" || cur == "" {
		return false
	}
	cr := []rune(cur)
	if !isVowel(cr[0]) {
		return false
	}
	pr := []rune(prev)
	last := pr[len(pr)-1]
	return isVowel(last) || strings.HasSuffix(prev, "er") || last == 'n' || strings.HasSuffix(prev, "ng")
}

// renderWord rebuilds one word in the target method. In skip mode
// (cherry-pick) a word converts only when it fully parses — or ends in
// a known contraction — and is not an English stopword; everything
// else passes through with its separators restored. Outside skip mode
// every syllable is pushed through conversion and failures surface as
// inline markers.
func (p *Processor) renderWord(syls []Syllable, conv *converter, to Method, skip bool) string {
	if len(syls) == 0 {
		return ""
	}

	var preview strings.Builder
	for _, s := range syls {
		preview.WriteString(sepPrefix(s))
		preview.WriteString(s.Text)
	}

	allValid := true
	for _, s := range syls {
		if !s.Valid {
			allValid = false
			break
		}
	}

	last := syls[len(syls)-1]
	contraction := skip && last.LeadApostrophe &&
		contractions[normalizeApostrophes(last.bare())]
	if contraction {
		for _, s := range syls[:len(syls)-1] {
			if !s.Valid {
				contraction = false
				break
			}
		}
	}

	_, stopword := p.stop[preview.String()]
	convertible := (allValid || contraction) && !stopword

	// Convert or keep each syllable, then restore its casing.
	texts := make([]string, len(syls))
	for i, s := range syls {
		switch {
		case !skip:
			texts[i] = conv.syllable(s.Text)
		case convertible && s.Valid:
			texts[i] = conv.syllable(s.Text)
		default:
			texts[i] = s.Text
		}
		texts[i] = s.restoreCase(texts[i])
	}

	if !convertible {
		var b strings.Builder
		for i, s := range syls {
			b.WriteString(sepPrefix(s))
			b.WriteString(texts[i])
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(texts[0])
	for i := 1; i < len(texts); i++ {
		lastSyl := i == len(texts)-1
		switch {
		case contraction && lastSyl:
			b.WriteString("'")
			b.WriteString(stripLeadingApostrophes(texts[i]))
		case to == WadeGiles:
			b.WriteString("-")
			b.WriteString(texts[i])
		case needsApostrophe(strings.ToLower(texts[i-1]), strings.ToLower(texts[i])):
			b.WriteString("'")
			b.WriteString(texts[i])
		default:
			b.WriteString(texts[i])
		}
	}
	return b.String()
}
