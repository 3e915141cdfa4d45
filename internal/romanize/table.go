package romanize

import (
	"sort"

	"github.com/JHGFD82/RoManTools/internal/data"
)

// Table answers syllable validity queries for one romanization system.
// It normalizes apostrophe variants before lookup so that Wade-Giles
// initials like "ch’" match regardless of the mark used in the source.
type Table struct {
	syl *data.Syllabary

	// initials without the ø row, longest first, for greedy prefix
	// matching during ambiguous-boundary searches.
	initialsByLen []string
}

// NewTable wraps a syllabary for use by the segmentation engine.
func NewTable(syl *data.Syllabary) *Table {
	t := &Table{syl: syl}
	for _, ini := range syl.Initials {
		if ini != data.NoInitial {
			t.initialsByLen = append(t.initialsByLen, ini)
		}
	}
	sort.SliceStable(t.initialsByLen, func(i, j int) bool {
		return len(t.initialsByLen[i]) > len(t.initialsByLen[j])
	})
	return t
}

// loadTable loads the built-in table for a method.
func loadTable(m Method) (*Table, error) {
	name := "pinyin"
	if m == WadeGiles {
		name = "wadegiles"
	}
	syl, err := data.LoadSyllabary(name)
	if err != nil {
		return nil, err
	}
	return NewTable(syl), nil
}

// Valid reports whether initial+final is a syllable of this system.
// An empty initial denotes a vowel-onset syllable.
func (t *Table) Valid(initial, final string) bool {
	initial = normalizeApostrophes(initial)
	if initial == "" {
		initial = data.NoInitial
	}
	return t.syl.Valid(initial, final)
}

// HasInitial reports whether ini is in the initials inventory. An
// empty string stands for the no-initial row.
func (t *Table) HasInitial(ini string) bool {
	ini = normalizeApostrophes(ini)
	if ini == "" {
		ini = data.NoInitial
	}
	for _, have := range t.syl.Initials {
		if have == ini {
			return true
		}
	}
	return false
}

// HasFinal reports whether fin is in the finals inventory.
func (t *Table) HasFinal(fin string) bool {
	for _, have := range t.syl.Finals {
		if have == fin {
			return true
		}
	}
	return false
}

// Finals returns the finals inventory of the system.
func (t *Table) Finals() []string {
	return t.syl.Finals
}

// InitialsByLength returns the consonant initials, longest first.
func (t *Table) InitialsByLength() []string {
	return t.initialsByLen
}

// Name returns the syllabary name.
func (t *Table) Name() string {
	return t.syl.Name
}
