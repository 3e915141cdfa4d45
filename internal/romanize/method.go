// Package romanize segments, validates and converts Mandarin romanization text.
package romanize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedMethod is returned when a method tag does not name a
// known romanization system. It indicates a caller bug, not malformed
// input text.
var ErrUnsupportedMethod = errors.New("unsupported romanization method")

// Method identifies a supported romanization system.
type Method int

const (
	// Pinyin is Hanyu Pinyin, the PRC standard romanization.
	Pinyin Method = iota
	// WadeGiles is the Wade-Giles romanization, common in older texts.
	WadeGiles
)

// String returns the short tag used on the command line and in data files.
func (m Method) String() string {
	switch m {
	case Pinyin:
		return "py"
	case WadeGiles:
		return "wg"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Name returns the human-readable name of the method.
func (m Method) Name() string {
	switch m {
	case Pinyin:
		return "Pinyin"
	case WadeGiles:
		return "Wade-Giles"
	}
	return m.String()
}

// Methods lists all supported romanization systems.
func Methods() []Method {
	return []Method{Pinyin, WadeGiles}
}

// ParseMethod resolves a user-supplied method tag. It accepts the short
// tags "py" and "wg" as well as full names, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "py", "pinyin":
		return Pinyin, nil
	case "wg", "wade-giles", "wadegiles", "wade_giles":
		return WadeGiles, nil
	}
	return 0, fmt.Errorf("%w: %q (expected py or wg)", ErrUnsupportedMethod, s)
}
