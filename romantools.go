// Package romantools converts and analyzes Mandarin romanization text.
// It supports Hanyu Pinyin and Wade-Giles: splitting text into
// syllables, validating it, converting between the two systems, and
// cherry-picking romanized terms out of mixed English prose.
//
// The functions here are string-tagged conveniences over the
// internal/romanize engine; method tags are "py" and "wg".
package romantools

import (
	"github.com/JHGFD82/RoManTools/internal/romanize"
)

// Segment splits text into words and each word into syllables.
func Segment(text, method string) ([][]string, error) {
	p, err := processor(method)
	if err != nil {
		return nil, err
	}
	return p.Segment(text), nil
}

// Validate reports whether every syllable of text is valid under the
// given method.
func Validate(text, method string) (bool, error) {
	p, err := processor(method)
	if err != nil {
		return false, err
	}
	return p.Validate(text), nil
}

// SyllableCount returns the syllable count of each word in text; words
// with invalid syllables count as zero.
func SyllableCount(text, method string) ([]int, error) {
	p, err := processor(method)
	if err != nil {
		return nil, err
	}
	return p.SyllableCounts(text), nil
}

// Convert converts the whole of text from one method to the other.
func Convert(text, from, to string) (string, error) {
	p, err := processor(from)
	if err != nil {
		return "", err
	}
	target, err := romanize.ParseMethod(to)
	if err != nil {
		return "", err
	}
	return p.Convert(text, target)
}

// CherryPick converts only the words of text that fully parse in the
// source method, leaving surrounding prose untouched.
func CherryPick(text, from, to string) (string, error) {
	p, err := processor(from)
	if err != nil {
		return "", err
	}
	target, err := romanize.ParseMethod(to)
	if err != nil {
		return "", err
	}
	return p.CherryPick(text, target)
}

// Detect returns the method tags under which text fully parses.
func Detect(text string) ([]string, error) {
	ms, err := romanize.Detect(text)
	if err != nil {
		return nil, err
	}
	tags := make([]string, len(ms))
	for i, m := range ms {
		tags[i] = m.String()
	}
	return tags, nil
}

func processor(method string) (*romanize.Processor, error) {
	m, err := romanize.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return romanize.New(m)
}
