package romanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JHGFD82/RoManTools/internal/data"
)

func newProcessor(t *testing.T, m Method) *Processor {
	t.Helper()
	p, err := New(m)
	require.NoError(t, err)
	return p
}

func TestSegmentPinyin(t *testing.T) {
	tests := []struct {
		name string
		text string
		want [][]string
	}{
		{
			name: "single vowels and diphthongs",
			text: "a, e, o, ai, ou",
			want: [][]string{{"a"}, {"e"}, {"o"}, {"ai"}, {"ou"}},
		},
		{
			name: "basic initials",
			text: "ba gu zhi ying kai lou yan",
			want: [][]string{{"ba"}, {"gu"}, {"zhi"}, {"ying"}, {"kai"}, {"lou"}, {"yan"}},
		},
		{
			name: "er n ng finals",
			text: "han xiang ran ling er",
			want: [][]string{{"han"}, {"xiang"}, {"ran"}, {"ling"}, {"er"}},
		},
		{
			name: "multi syllable words",
			text: "xiaoming changan wenxin liangxiao",
			want: [][]string{{"xiao", "ming"}, {"chan", "gan"}, {"wen", "xin"}, {"liang", "xiao"}},
		},
		{
			name: "apostrophe separators",
			text: "chang'an shan'er li'an",
			want: [][]string{{"chang", "an"}, {"shan", "er"}, {"li", "an"}},
		},
		{
			name: "vowel onset syllables",
			text: "anwei aiai ouyang ewei",
			want: [][]string{{"an", "wei"}, {"ai", "ai"}, {"ou", "yang"}, {"e", "wei"}},
		},
		{
			name: "invalid initials split off",
			text: "xa qo vei",
			want: [][]string{{"xa"}, {"qo"}, {"v", "ei"}},
		},
		{
			name: "trailing consonants become syllables",
			text: "banp zhirr mingk",
			want: [][]string{{"ban", "p"}, {"zhi", "rr"}, {"ming", "k"}},
		},
		{
			name: "er absorbs r but splits before vowels",
			text: "sheng deng er han shier",
			want: [][]string{{"sheng"}, {"deng"}, {"er"}, {"han"}, {"shi", "er"}},
		},
		{
			name: "ambiguous n ng boundaries",
			text: "wenti linping gangzhi",
			want: [][]string{{"wen", "ti"}, {"lin", "ping"}, {"gang", "zhi"}},
		},
		{
			name: "no valid final backs off",
			text: "blar ziang shoing",
			want: [][]string{{"bla", "r"}, {"zi", "ang"}, {"sho", "ing"}},
		},
		{
			name: "multi vowel finals",
			text: "ai ei ou uan ie",
			want: [][]string{{"ai"}, {"ei"}, {"ou"}, {"u", "an"}, {"ie"}},
		},
		{
			name: "n ng before syllable starts",
			text: "zhuangyuan wenxiang gangren",
			want: [][]string{{"zhuang", "yuan"}, {"wen", "xiang"}, {"gang", "ren"}},
		},
		{
			name: "mixed case with apostrophes",
			text: "Zhongguo ti'an tianqi",
			want: [][]string{{"zhong", "guo"}, {"ti", "an"}, {"tian", "qi"}},
		},
	}

	p := newProcessor(t, Pinyin)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Segment(tt.text))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		text   string
		want   bool
	}{
		{"valid pinyin", Pinyin, "ni hao chang'an", true},
		{"invalid pinyin", Pinyin, "ni hao xyz", false},
		{"case insensitive", Pinyin, "Zhongguo", true},
		{"valid wade-giles", WadeGiles, "ni linp’ing shang ch’ankan hsiaoming yüanyang erh shiherh hsiung anwei fenghuang", true},
		{"invalid wade-giles", WadeGiles, "ni linp’ing shang ch’anzkan hsiaoming", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProcessor(t, tt.method)
			assert.Equal(t, tt.want, p.Validate(tt.text))
		})
	}
}

func TestSyllableCounts(t *testing.T) {
	p := newProcessor(t, Pinyin)

	text := "'ni linping shang chang'an xiaoming yuanyang er shier xiong anwei fenghuang " +
		"renmin shuang yingyong zhongguo qingdao ping'an guangdong hongkong changjiang shen " +
		"tingma yia shoiji yiin"
	want := []int{1, 2, 1, 2, 2, 2, 1, 2, 1, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 2, 1, 2, 0, 0, 0}
	assert.Equal(t, want, p.SyllableCounts(text))

	assert.Equal(t, []int{2}, p.SyllableCounts("Zhongguo"))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Method
	}{
		{
			name: "pinyin only",
			text: "'ni linping shang chang'an xiaoming yuanyang er shier xiong anwei fenghuang renmin " +
				"shuang yingyong zhongguo qingdao ping'an guangdong hongkong changjiang shen tingma",
			want: []Method{Pinyin},
		},
		{
			name: "wade-giles only",
			text: "ni linp’ing shang ch’ankan hsiaoming yüanyang erh shiherh hsiung anwei fenghuang jenmin",
			want: []Method{WadeGiles},
		},
		{
			name: "wade-giles with umlaut initial cluster",
			text: "hsüchou",
			want: []Method{WadeGiles},
		},
		{
			name: "both systems",
			text: "shen",
			want: []Method{Pinyin, WadeGiles},
		},
		{
			name: "neither system",
			text: "yia shoiji",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectWords(t *testing.T) {
	got, err := DetectWords("linping chang'an yia")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "linping", got[0].Word)
	assert.Equal(t, []Method{Pinyin, WadeGiles}, got[0].Methods)
	assert.Equal(t, "chang'an", got[1].Word)
	assert.Equal(t, []Method{Pinyin}, got[1].Methods)
	assert.Equal(t, "yia", got[2].Word)
	assert.Empty(t, got[2].Methods)
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"py", Pinyin, false},
		{"PY", Pinyin, false},
		{"pinyin", Pinyin, false},
		{"wg", WadeGiles, false},
		{"Wade-Giles", WadeGiles, false},
		{"wade_giles", WadeGiles, false},
		{"gr", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecoversEveryValidSyllable(t *testing.T) {
	tables := map[Method]string{Pinyin: "pinyin", WadeGiles: "wadegiles"}

	for m, name := range tables {
		t.Run(m.String(), func(t *testing.T) {
			syl, err := data.LoadSyllabary(name)
			require.NoError(t, err)
			p := newProcessor(t, m)

			for _, ini := range syl.Initials {
				for _, fin := range syl.Finals {
					if !syl.Valid(ini, fin) {
						continue
					}
					text := ini + fin
					wantInitial := ini
					if ini == data.NoInitial {
						text = fin
						wantInitial = ""
					}
					s := p.parse(text)
					assert.True(t, s.Valid, text)
					assert.Equal(t, wantInitial, s.Initial, text)
					assert.Equal(t, fin, s.Final, text)
					assert.Empty(t, s.Remainder, text)
				}
			}
		})
	}
}

func TestParseProgressOnJunk(t *testing.T) {
	// Parsing must consume at least one rune per round no matter how
	// unsegmentable the input is, so the chunker always terminates.
	inputs := []string{"xyzzy", "bcdfg", "qxq'wq", "zh-ng", "grrrr", "üü", "x"}

	for _, m := range Methods() {
		p := newProcessor(t, m)
		for _, in := range inputs {
			rest := in
			for steps := 0; rest != ""; steps++ {
				require.Less(t, steps, len(in), "stuck on %q (%s)", in, m)
				s := p.parse(rest)
				require.Less(t, len(s.Remainder), len(rest), "no progress on %q (%s)", rest, m)
				rest = s.Remainder
			}
		}
	}
}

func TestParseMethodSentinel(t *testing.T) {
	_, err := ParseMethod("gwoyeu")
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestInvalidSyllableDiagnostics(t *testing.T) {
	p := newProcessor(t, Pinyin)

	chunks := p.Chunks("xyz", false)
	require.Len(t, chunks, 1)
	require.NotEmpty(t, chunks[0].Syllables)
	s := chunks[0].Syllables[0]
	assert.False(t, s.Valid)
	assert.NotEmpty(t, s.Diagnostics)

	// Valid syllables carry no diagnostics.
	chunks = p.Chunks("zhongguo", false)
	for _, s := range chunks[0].Syllables {
		assert.True(t, s.Valid)
		assert.Empty(t, s.Diagnostics)
	}
}

// recordingObserver collects hook calls for inspection.
type recordingObserver struct {
	syllables []Syllable
	words     []string
}

func (r *recordingObserver) InitialFound(string, string) {}
func (r *recordingObserver) FinalFound(string, string)   {}
func (r *recordingObserver) SyllableParsed(s Syllable) {
	r.syllables = append(r.syllables, s)
}
func (r *recordingObserver) WordAssembled(word string, _ []Syllable) {
	r.words = append(r.words, word)
}

func TestObserverHooks(t *testing.T) {
	obs := &recordingObserver{}
	p, err := New(Pinyin, WithObserver(obs), WithCacheSize(0))
	require.NoError(t, err)

	p.Segment("zhongguo tianqi")

	assert.Equal(t, []string{"zhongguo", "tianqi"}, obs.words)
	require.Len(t, obs.syllables, 4)
	assert.Equal(t, "zhong", obs.syllables[0].Text)
	assert.True(t, obs.syllables[0].Valid)
}

func TestObserverFiresOnCacheHits(t *testing.T) {
	obs := &recordingObserver{}
	p, err := New(Pinyin, WithObserver(obs))
	require.NoError(t, err)

	// The second pass is served from the parse cache; the trace must
	// still report each syllable.
	p.Segment("zhongguo")
	p.Segment("zhongguo")

	require.Len(t, obs.syllables, 4)
	assert.Equal(t, "zhong", obs.syllables[2].Text)
	assert.Equal(t, "guo", obs.syllables[3].Text)
}

func TestParseCacheBounded(t *testing.T) {
	p, err := New(Pinyin, WithCacheSize(2))
	require.NoError(t, err)

	// Parse more distinct parts than the cache holds; results must
	// stay correct after eviction.
	for range 3 {
		assert.Equal(t, [][]string{{"zhong", "guo"}}, p.Segment("zhongguo"))
		assert.Equal(t, [][]string{{"tian", "qi"}}, p.Segment("tianqi"))
		assert.Equal(t, [][]string{{"chan", "gan"}}, p.Segment("changan"))
	}
	assert.LessOrEqual(t, len(p.parseCache), 2)
}
