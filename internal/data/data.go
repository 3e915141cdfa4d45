// Package data loads the embedded romanization tables: the per-method
// syllabaries, the pinyin/Wade-Giles conversion list and the stopword set.
package data

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrMissingTableData is returned when an embedded table cannot be
// loaded. It is fatal: it indicates a broken build or a request for a
// table that does not exist, never malformed input.
var ErrMissingTableData = errors.New("missing table data")

//go:embed tables
var tables embed.FS

// NoInitial is the syllabary row key for syllables without an initial
// consonant (vowel-onset syllables such as "an" or "erh").
const NoInitial = "ø"

// Syllabary records which initial+final pairings form valid syllables
// in one romanization system.
type Syllabary struct {
	Name     string
	Initials []string
	Finals   []string
	pairs    map[pairKey]bool
}

type pairKey struct {
	initial string
	final   string
}

// Valid reports whether initial+final is a syllable of this system.
// Callers pass NoInitial for vowel-onset syllables.
func (s *Syllabary) Valid(initial, final string) bool {
	return s.pairs[pairKey{initial, final}]
}

// Pair registers initial+final as a valid syllable. It is used when
// building syllabaries from user-supplied scheme files.
func (s *Syllabary) Pair(initial, final string) {
	if s.pairs == nil {
		s.pairs = make(map[pairKey]bool)
	}
	s.pairs[pairKey{initial, final}] = true
}

var (
	sylMu    sync.Mutex
	sylCache = make(map[string]*Syllabary)
)

// LoadSyllabary loads an embedded syllabary by name ("pinyin" or
// "wadegiles"). Results are cached; the returned value is shared and
// must be treated as read-only.
func LoadSyllabary(name string) (*Syllabary, error) {
	sylMu.Lock()
	defer sylMu.Unlock()
	if s, ok := sylCache[name]; ok {
		return s, nil
	}

	raw, err := tables.ReadFile("tables/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("%w: no syllabary %q", ErrMissingTableData, name)
	}
	s, err := parseSyllabary(name, string(raw))
	if err != nil {
		return nil, err
	}
	sylCache[name] = s
	return s, nil
}

// parseSyllabary reads a validity matrix: row 0 holds the finals,
// column 0 the initials, and a cell of "1" marks a valid pairing.
func parseSyllabary(name, raw string) (*Syllabary, error) {
	rows, err := csv.NewReader(strings.NewReader(raw)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing syllabary %q: %w", name, err)
	}
	if len(rows) < 2 || len(rows[0]) < 2 {
		return nil, fmt.Errorf("syllabary %q: matrix too small", name)
	}

	s := &Syllabary{
		Name:   name,
		Finals: rows[0][1:],
		pairs:  make(map[pairKey]bool),
	}
	for _, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("syllabary %q: ragged row %q", name, row[0])
		}
		initial := row[0]
		s.Initials = append(s.Initials, initial)
		for i, cell := range row[1:] {
			if cell == "1" {
				s.pairs[pairKey{initial, s.Finals[i]}] = true
			}
		}
	}
	return s, nil
}

// ConversionEntry is one row of the syllable conversion list. A rare
// syllable may have no counterpart in the other system; Rare marks it
// so conversion can report it instead of silently failing.
type ConversionEntry struct {
	Pinyin    string
	WadeGiles string
	Rare      bool
}

var (
	convOnce sync.Once
	convRows []ConversionEntry
	convErr  error
)

// LoadConversions returns the embedded pinyin/Wade-Giles syllable list.
func LoadConversions() ([]ConversionEntry, error) {
	convOnce.Do(func() {
		raw, err := tables.ReadFile("tables/conversion.csv")
		if err != nil {
			convErr = fmt.Errorf("%w: conversion table", ErrMissingTableData)
			return
		}
		rows, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
		if err != nil {
			convErr = fmt.Errorf("parsing conversion table: %w", err)
			return
		}
		for _, row := range rows[1:] {
			if len(row) < 3 {
				convErr = fmt.Errorf("conversion table: short row %q", row)
				return
			}
			convRows = append(convRows, ConversionEntry{
				Pinyin:    row[0],
				WadeGiles: row[1],
				Rare:      row[2] == "rare",
			})
		}
	})
	return convRows, convErr
}

var (
	stopOnce sync.Once
	stopSet  map[string]struct{}
	stopErr  error
)

// LoadStopwords returns the embedded English stopword set. Words in the
// set are never converted even when every syllable parses as valid.
func LoadStopwords() (map[string]struct{}, error) {
	stopOnce.Do(func() {
		raw, err := tables.ReadFile("tables/stopwords.txt")
		if err != nil {
			stopErr = fmt.Errorf("%w: stopword list", ErrMissingTableData)
			return
		}
		stopSet = make(map[string]struct{})
		for _, w := range strings.Fields(string(raw)) {
			stopSet[w] = struct{}{}
		}
	})
	return stopSet, stopErr
}
