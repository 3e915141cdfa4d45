package romanize

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/JHGFD82/RoManTools/internal/data"
)

// DefaultCacheSize bounds the per-processor parse and conversion
// caches. Romanized text repeats syllables heavily, so even a small
// cache removes most repeated work.
const DefaultCacheSize = 4096

// Processor segments, validates and converts text in one romanization
// system. A Processor is not safe for concurrent use; create one per
// goroutine.
type Processor struct {
	strat strategy
	obs   Observer
	stop  map[string]struct{}

	cacheSize  int
	parseCache map[string]Syllable

	// converters by target method, built on first use.
	converters map[Method]*converter
}

// Option configures a Processor.
type Option func(*Processor)

// WithObserver installs an observer receiving engine hooks.
func WithObserver(o Observer) Option {
	return func(p *Processor) {
		if o != nil {
			p.obs = o
		}
	}
}

// WithCacheSize bounds the internal caches. A size of zero disables
// caching.
func WithCacheSize(n int) Option {
	return func(p *Processor) {
		if n >= 0 {
			p.cacheSize = n
		}
	}
}

// WithTable substitutes the validity table, allowing user-supplied
// schemes loaded from YAML to drive segmentation.
func WithTable(t *Table) Option {
	return func(p *Processor) {
		if t != nil {
			p.strat = strategyFor(p.strat.method(), t)
		}
	}
}

// New builds a Processor for the given method.
func New(m Method, opts ...Option) (*Processor, error) {
	tab, err := loadTable(m)
	if err != nil {
		return nil, err
	}
	stop, err := data.LoadStopwords()
	if err != nil {
		return nil, err
	}
	p := &Processor{
		strat:      strategyFor(m, tab),
		stop:       stop,
		obs:        nopObserver{},
		cacheSize:  DefaultCacheSize,
		converters: make(map[Method]*converter),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.parseCache = make(map[string]Syllable)
	return p, nil
}

// Method returns the processor's romanization system.
func (p *Processor) Method() Method {
	return p.strat.method()
}

// parse splits one syllable off the front of a word part, recording
// casing and any leading separator. The remainder keeps its original
// casing for the next round.
func (p *Processor) parse(orig string) Syllable {
	if s, ok := p.parseCache[orig]; ok {
		p.obs.SyllableParsed(s)
		return s
	}

	s := Syllable{}
	text := []rune(strings.ToLower(orig))
	origRunes := []rune(orig)
	if len(text) == 0 {
		return s
	}

	s.LeadApostrophe = isApostrophe(text[0])
	s.LeadDash = isDash(text[0])
	letters := letterRunes(orig)
	s.Uppercase = isUpperWord(letters)
	s.Capitalized = isTitleWord(letters)

	// Pinyin separators are orthography, not syllable text; strip
	// them. Wade-Giles keeps a leading apostrophe with the syllable.
	if (s.LeadApostrophe && p.Method() != WadeGiles) || s.LeadDash {
		text = text[1:]
		origRunes = origRunes[1:]
		s.Stripped = true
	}

	initial := string(p.strat.findInitial(text))
	var final string
	if initial == "" {
		final = p.strat.findFinal(text, "")
	} else {
		final = p.strat.findFinal(text[len([]rune(initial)):], initial)
	}
	p.obs.InitialFound(orig, initial)
	p.obs.FinalFound(orig, final)

	full := initial + final
	if full == "" && len(text) > 0 {
		full = string(text[:1])
		final = full
	}

	s.Text = full
	s.Initial = initial
	s.Final = final
	s.Remainder = string(origRunes[len([]rune(full)):])
	s.Valid = p.strat.table().Valid(initial, final)
	if !s.Valid {
		tab := p.strat.table()
		switch {
		case initial != "" && !tab.HasInitial(initial):
			s.Diagnostics = append(s.Diagnostics, fmt.Sprintf("invalid initial: %q", initial))
		case !tab.HasFinal(final):
			s.Diagnostics = append(s.Diagnostics, fmt.Sprintf("invalid final: %q", final))
		default:
			s.Diagnostics = append(s.Diagnostics, fmt.Sprintf("invalid syllable: %q", s.Text))
		}
	}
	p.obs.SyllableParsed(s)

	if p.cacheSize > 0 {
		if len(p.parseCache) >= p.cacheSize {
			clear(p.parseCache)
		}
		p.parseCache[orig] = s
	}
	return s
}

// Segment splits text into words and each word into syllables. Only
// words are returned; punctuation and spacing are dropped.
func (p *Processor) Segment(text string) [][]string {
	var out [][]string
	for _, c := range p.chunk(text, false) {
		out = append(out, lo.Map(c.Syllables, func(s Syllable, _ int) string {
			return s.Text
		}))
	}
	return out
}

// Chunks exposes the full chunking of text, including non-word runs
// when keepOther is set. It is the low-level form of Segment used by
// tooling that needs validity flags or verbatim output.
func (p *Processor) Chunks(text string, keepOther bool) []Chunk {
	return p.chunk(text, keepOther)
}

// Validate reports whether every syllable of every word in text is
// valid under the processor's method.
func (p *Processor) Validate(text string) bool {
	for _, c := range p.chunk(text, false) {
		for _, s := range c.Syllables {
			if !s.Valid {
				return false
			}
		}
	}
	return true
}

// SyllableCounts returns the syllable count per word; a word with any
// invalid syllable counts as zero.
func (p *Processor) SyllableCounts(text string) []int {
	return lo.Map(p.chunk(text, false), func(c Chunk, _ int) int {
		if lo.EveryBy(c.Syllables, func(s Syllable) bool { return s.Valid }) {
			return len(c.Syllables)
		}
		return 0
	})
}

// Convert converts every word of text into the target method. Words
// are joined by single spaces; syllables that cannot be converted are
// marked inline. Casing is restored per syllable and separators are
// inserted per the target orthography.
func (p *Processor) Convert(text string, to Method) (string, error) {
	conv, err := p.converterFor(to)
	if err != nil {
		return "", err
	}
	var words []string
	for _, c := range p.chunk(text, false) {
		words = append(words, p.renderWord(c.Syllables, conv, to, false))
	}
	return strings.Join(words, " "), nil
}

// CherryPick converts only the words that fully parse in the source
// method, leaving everything else untouched. Spacing and punctuation
// are preserved verbatim, so prose with embedded romanized terms keeps
// its shape.
func (p *Processor) CherryPick(text string, to Method) (string, error) {
	conv, err := p.converterFor(to)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range p.chunk(text, true) {
		if c.IsWord() {
			b.WriteString(p.renderWord(c.Syllables, conv, to, true))
		} else {
			b.WriteString(c.Text)
		}
	}
	return b.String(), nil
}

func (p *Processor) converterFor(to Method) (*converter, error) {
	from := p.Method()
	if to == from {
		return nil, fmt.Errorf("cannot convert %s to itself", from)
	}
	if c, ok := p.converters[to]; ok {
		return c, nil
	}
	c, err := newConverter(from, to, p.cacheSize)
	if err != nil {
		return nil, err
	}
	p.converters[to] = c
	return c, nil
}

// Detect returns the methods under which every word of text fully
// parses. Text valid in both systems reports both.
func Detect(text string) ([]Method, error) {
	var out []Method
	for _, m := range Methods() {
		p, err := New(m)
		if err != nil {
			return nil, err
		}
		chunks := p.chunk(text, false)
		if len(chunks) == 0 {
			continue
		}
		if lo.EveryBy(chunks, func(c Chunk) bool {
			return lo.EveryBy(c.Syllables, func(s Syllable) bool { return s.Valid })
		}) {
			out = append(out, m)
		}
	}
	return out, nil
}

// WordDetection is the per-word result of DetectWords.
type WordDetection struct {
	Word    string
	Methods []Method
}

// DetectWords runs detection separately on each whitespace-separated
// word of text.
func DetectWords(text string) ([]WordDetection, error) {
	var out []WordDetection
	for _, w := range strings.Fields(text) {
		ms, err := Detect(w)
		if err != nil {
			return nil, err
		}
		out = append(out, WordDetection{Word: w, Methods: ms})
	}
	return out, nil
}
