package romanize

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// The chunker works in two passes: a coarse split that separates words
// from everything else, then a per-word fine split at separators. The
// letter class includes ü so that tokens like yüan stay whole.
const letterClass = `[a-zA-ZüÜ]`

var (
	// A word is letter runs joined by single apostrophes or dashes.
	wordRe = regexp.MustCompile(letterClass + `+(?:['’‘ʼʻ` + "`" + `\-–—]` + letterClass + `+)*`)

	// In skip mode the text between words is kept for verbatim output.
	wordOrOtherRe = regexp.MustCompile(wordRe.String() + `|[^a-zA-ZüÜ]+`)

	// Fine split for pinyin: separators lead the following part.
	finePinyinRe = regexp.MustCompile(letterClass + `+|['’‘ʼʻ` + "`" + `\-–—]` + letterClass + `+`)

	// Fine split for Wade-Giles: apostrophes are part of syllables
	// (aspiration marks), so only dashes start a new part.
	fineWadeGilesRe = regexp.MustCompile(`[a-zA-ZüÜ'’‘ʼʻ` + "`" + `]+|[\-–—][a-zA-ZüÜ'’‘ʼʻ` + "`" + `]+`)

	letterRe = regexp.MustCompile(`^` + letterClass)
)

// Chunk is one unit of chunked text: either a word with its parsed
// syllables, or a run of non-word text kept for verbatim output.
type Chunk struct {
	// Text is the source text of the chunk.
	Text string
	// Syllables is nil for non-word chunks.
	Syllables []Syllable
}

// IsWord reports whether the chunk is a word.
func (c Chunk) IsWord() bool {
	return c.Syllables != nil
}

// coarseSplit breaks text into words, or into words and the runs
// between them when keepOther is set. Input is NFC-normalized first so
// ü arrives precomposed.
func coarseSplit(text string, keepOther bool) []string {
	text = norm.NFC.String(text)
	if keepOther {
		return wordOrOtherRe.FindAllString(text, -1)
	}
	return wordRe.FindAllString(text, -1)
}

// fineSplit breaks a word at its separators. Each separator stays
// attached to the front of the part it introduces, so the parser can
// record it and output can restore it. A word with no separators is
// returned as a single part.
func fineSplit(word string, m Method) []string {
	re := finePinyinRe
	if m == WadeGiles {
		re = fineWadeGilesRe
	}
	parts := re.FindAllString(word, -1)
	if len(parts) <= 1 {
		return []string{word}
	}
	return parts
}

// chunk splits text and parses every word part into syllables.
func (p *Processor) chunk(text string, keepOther bool) []Chunk {
	var out []Chunk
	for _, seg := range coarseSplit(text, keepOther) {
		if !letterRe.MatchString(seg) {
			out = append(out, Chunk{Text: seg})
			continue
		}
		var syls []Syllable
		for _, part := range fineSplit(seg, p.strat.method()) {
			rest := part
			for rest != "" {
				s := p.parse(rest)
				syls = append(syls, s)
				rest = s.Remainder
			}
		}
		p.obs.WordAssembled(seg, syls)
		out = append(out, Chunk{Text: seg, Syllables: syls})
	}
	return out
}
