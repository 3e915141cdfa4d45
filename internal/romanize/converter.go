package romanize

import (
	"fmt"
	"strings"

	"github.com/JHGFD82/RoManTools/internal/data"
)

// Markers appended to syllables that cannot be converted. They stay
// inline so the surrounding text keeps its shape and the failure is
// visible exactly where it happened.
const (
	InvalidMarker = "(!)"
	RareMarker    = "(!rare!)"
)

type convTarget struct {
	text string
	rare bool
}

// converter maps syllables of one method onto another, with a bounded
// memo of finished lookups.
type converter struct {
	to      Method
	mapping map[string]convTarget

	cacheSize int
	cache     map[string]string
}

// newConverter builds the syllable mapping for one direction. When two
// source rows share a spelling the first row wins, matching the table's
// ordering of preferred readings.
func newConverter(from, to Method, cacheSize int) (*converter, error) {
	rows, err := data.LoadConversions()
	if err != nil {
		return nil, fmt.Errorf("loading conversion table: %w", err)
	}
	pick := func(e data.ConversionEntry, m Method) string {
		if m == WadeGiles {
			return e.WadeGiles
		}
		return e.Pinyin
	}
	c := &converter{
		to:        to,
		mapping:   make(map[string]convTarget, len(rows)),
		cacheSize: cacheSize,
		cache:     make(map[string]string),
	}
	for _, row := range rows {
		key := strings.ToLower(pick(row, from))
		if key == "" {
			continue
		}
		if _, ok := c.mapping[key]; !ok {
			c.mapping[key] = convTarget{text: pick(row, to), rare: row.Rare}
		}
	}
	return c, nil
}

// syllable converts one syllable, appending InvalidMarker when the
// syllable is unknown and RareMarker when it is known but has no
// counterpart in the target system.
func (c *converter) syllable(text string) string {
	if out, ok := c.cache[text]; ok {
		return out
	}

	out := text + InvalidMarker
	key := normalizeApostrophes(strings.ToLower(text))
	if tgt, ok := c.mapping[key]; ok {
		switch {
		case tgt.text != "":
			out = tgt.text
		case tgt.rare:
			out = text + RareMarker
		}
	}

	if c.cacheSize > 0 {
		if len(c.cache) >= c.cacheSize {
			clear(c.cache)
		}
		c.cache[text] = out
	}
	return out
}
