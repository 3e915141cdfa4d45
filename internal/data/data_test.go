package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSyllabaryPinyin(t *testing.T) {
	s, err := LoadSyllabary("pinyin")
	require.NoError(t, err)

	assert.Equal(t, "pinyin", s.Name)
	assert.Contains(t, s.Initials, "zh")
	assert.Contains(t, s.Initials, NoInitial)
	assert.Contains(t, s.Finals, "iong")

	assert.True(t, s.Valid("zh", "ong"))
	assert.True(t, s.Valid(NoInitial, "er"))
	assert.False(t, s.Valid("zh", "iong"))
	assert.False(t, s.Valid("q", "a"))
}

func TestLoadSyllabaryWadeGiles(t *testing.T) {
	s, err := LoadSyllabary("wadegiles")
	require.NoError(t, err)

	assert.True(t, s.Valid("ch'", "ang"))
	assert.True(t, s.Valid("hs", "iung"))
	assert.True(t, s.Valid(NoInitial, "erh"))
	assert.False(t, s.Valid(NoInitial, "er"))
	assert.False(t, s.Valid("b", "a"))
}

func TestLoadSyllabaryCached(t *testing.T) {
	a, err := LoadSyllabary("pinyin")
	require.NoError(t, err)
	b, err := LoadSyllabary("pinyin")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestLoadSyllabaryUnknown(t *testing.T) {
	_, err := LoadSyllabary("gwoyeu")
	assert.ErrorIs(t, err, ErrMissingTableData)
}

func TestLoadConversions(t *testing.T) {
	rows, err := LoadConversions()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	byPinyin := make(map[string]ConversionEntry)
	for _, row := range rows {
		if _, ok := byPinyin[row.Pinyin]; !ok {
			byPinyin[row.Pinyin] = row
		}
	}

	assert.Equal(t, "chung", byPinyin["zhong"].WadeGiles)
	assert.Equal(t, "t'ien", byPinyin["tian"].WadeGiles)
	assert.Equal(t, "yüan", byPinyin["yuan"].WadeGiles)

	// Rare syllables exist but have no counterpart.
	require.Contains(t, byPinyin, "dia")
	assert.True(t, byPinyin["dia"].Rare)
	assert.Empty(t, byPinyin["dia"].WadeGiles)
}

func TestLoadStopwords(t *testing.T) {
	stop, err := LoadStopwords()
	require.NoError(t, err)

	assert.Contains(t, stop, "an")
	assert.Contains(t, stop, "the")
	assert.NotContains(t, stop, "zhongguo")
}

func TestLoadScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.yaml")
	raw := `name: toy
syllables:
  - initial: ø
    finals: [a, an]
  - initial: ch
    finals: [a, ang]
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	s, err := LoadScheme(path)
	require.NoError(t, err)

	assert.Equal(t, "toy", s.Name)
	assert.Equal(t, []string{NoInitial, "ch"}, s.Initials)
	assert.Equal(t, []string{"a", "an", "ang"}, s.Finals)
	assert.True(t, s.Valid("ch", "ang"))
	assert.True(t, s.Valid(NoInitial, "an"))
	assert.False(t, s.Valid("ch", "an"))
}

func TestLoadSchemeInvalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		raw  string
	}{
		{"missing name", "syllables:\n  - initial: ch\n    finals: [a]\n"},
		{"no syllables", "name: empty\n"},
		{"initial without finals", "name: bad\nsyllables:\n  - initial: ch\n"},
		{"not yaml", ": : :\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0644))
			_, err := LoadScheme(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSchemeMissingFile(t *testing.T) {
	_, err := LoadScheme(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
