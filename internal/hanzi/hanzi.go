// Package hanzi romanizes Chinese character text into pinyin, as a
// front end to the conversion pipeline: characters become toneless
// pinyin words that the converter can then carry into Wade-Giles.
package hanzi

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Romanizer converts hanzi runs into pinyin.
type Romanizer struct {
	args gopinyin.Args
}

// NewRomanizer creates a romanizer. With tones set, syllables carry
// tone marks (zhōng); otherwise they come out bare for downstream
// segmentation and conversion.
func NewRomanizer(tones bool) *Romanizer {
	args := gopinyin.NewArgs()
	if tones {
		args.Style = gopinyin.Tone
	} else {
		args.Style = gopinyin.Normal
	}
	return &Romanizer{args: args}
}

// Romanize converts every han rune of text to pinyin, leaving other
// runes in place. Consecutive characters form one word; a space
// separates the romanized word from adjacent non-han text.
func (r *Romanizer) Romanize(text string) string {
	var b strings.Builder
	inWord := false
	for _, ru := range text {
		if !unicode.Is(unicode.Han, ru) {
			if inWord {
				b.WriteRune(' ')
				inWord = false
			}
			b.WriteRune(ru)
			continue
		}
		syls := gopinyin.Pinyin(string(ru), r.args)
		if len(syls) == 0 || len(syls[0]) == 0 {
			// Not in the dictionary; pass the character through.
			if inWord {
				b.WriteRune(' ')
				inWord = false
			}
			b.WriteRune(ru)
			continue
		}
		if inWord || (b.Len() > 0 && !endsInSpace(b.String())) {
			b.WriteRune(' ')
		}
		b.WriteString(syls[0][0])
		inWord = true
	}
	return b.String()
}

// StripTones removes tone marks from pinyin, mapping each marked vowel
// back to its base letter.
func StripTones(s string) string {
	return strings.Map(func(r rune) rune {
		if base, ok := toneMarks[r]; ok {
			return base
		}
		return r
	}, s)
}

func endsInSpace(s string) bool {
	return strings.HasSuffix(s, " ")
}

// toneMarks maps each tone-marked vowel to its base form.
var toneMarks = map[rune]rune{
	'ā': 'a', 'á': 'a', 'ǎ': 'a', 'à': 'a',
	'ē': 'e', 'é': 'e', 'ě': 'e', 'è': 'e',
	'ī': 'i', 'í': 'i', 'ǐ': 'i', 'ì': 'i',
	'ō': 'o', 'ó': 'o', 'ǒ': 'o', 'ò': 'o',
	'ū': 'u', 'ú': 'u', 'ǔ': 'u', 'ù': 'u',
	'ǖ': 'ü', 'ǘ': 'ü', 'ǚ': 'ü', 'ǜ': 'ü',
}
