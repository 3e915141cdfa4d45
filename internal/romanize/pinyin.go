package romanize

// pinyinStrategy segments pinyin. Pinyin boundaries are decidable by
// the shared walk alone: initials are unambiguous and the only ties
// (er, n/ng) are settled in consonantCase.
type pinyinStrategy struct {
	engine
}

func (p *pinyinStrategy) method() Method { return Pinyin }
func (p *pinyinStrategy) table() *Table  { return p.tbl }

func (p *pinyinStrategy) findFinal(text []rune, initial string) string {
	return p.walkFinal(text, initial)
}
