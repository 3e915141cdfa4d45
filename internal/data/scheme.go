package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scheme is a user-supplied syllabary definition. It lets a custom or
// historical romanization variant be used anywhere a built-in syllabary
// is accepted.
//
// Example:
//
//	name: postal
//	syllables:
//	  - initial: ø
//	    finals: [a, an, ang]
//	  - initial: ch
//	    finals: [a, an, ang, en, eng]
type Scheme struct {
	Name      string           `yaml:"name"`
	Syllables []SchemeSyllable `yaml:"syllables"`
}

// SchemeSyllable declares the finals valid under one initial. The
// initial "ø" (or an empty string) declares vowel-onset syllables.
type SchemeSyllable struct {
	Initial string   `yaml:"initial"`
	Finals  []string `yaml:"finals"`
}

// LoadScheme reads a YAML scheme file and builds a syllabary from it.
func LoadScheme(path string) (*Syllabary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}
	var sch Scheme
	if err := yaml.Unmarshal(raw, &sch); err != nil {
		return nil, fmt.Errorf("parsing scheme %s: %w", path, err)
	}
	return sch.Syllabary()
}

// Syllabary converts the scheme definition into a queryable syllabary.
func (sch *Scheme) Syllabary() (*Syllabary, error) {
	if sch.Name == "" {
		return nil, fmt.Errorf("scheme is missing a name")
	}
	if len(sch.Syllables) == 0 {
		return nil, fmt.Errorf("scheme %q declares no syllables", sch.Name)
	}

	s := &Syllabary{Name: sch.Name, pairs: make(map[pairKey]bool)}
	finalSeen := make(map[string]bool)
	for _, row := range sch.Syllables {
		initial := row.Initial
		if initial == "" {
			initial = NoInitial
		}
		if len(row.Finals) == 0 {
			return nil, fmt.Errorf("scheme %q: initial %q has no finals", sch.Name, initial)
		}
		s.Initials = append(s.Initials, initial)
		for _, fin := range row.Finals {
			if !finalSeen[fin] {
				finalSeen[fin] = true
				s.Finals = append(s.Finals, fin)
			}
			s.pairs[pairKey{initial, fin}] = true
		}
	}
	return s, nil
}
