package romanize

// strategy is the per-system segmentation behavior. The set is closed:
// each supported method has exactly one implementation, chosen by
// strategyFor. Custom schemes plug in as tables, not as strategies.
type strategy interface {
	method() Method
	table() *Table

	// findInitial and findFinal split one syllable off the front of a
	// lowercased word part. findFinal receives the text after the
	// initial (the whole part for vowel-onset syllables).
	findInitial(text []rune) []rune
	findFinal(text []rune, initial string) string
}

// strategyFor builds the strategy for a method, backed by tab.
func strategyFor(m Method, tab *Table) strategy {
	e := engine{m: m, tbl: tab}
	if m == WadeGiles {
		return &wadeGilesStrategy{engine: e}
	}
	return &pinyinStrategy{engine: e}
}
