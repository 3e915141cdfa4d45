package romanize

// Observer receives hooks as the engine works through text. It exists
// for tracing and debugging tools; the zero observer does nothing and
// costs nothing. SyllableParsed fires for every syllable, cached or
// not; InitialFound and FinalFound fire only when a syllable is
// actually parsed, so repeats served from the cache skip them.
// Implementations must not retain the syllable slices passed to
// WordAssembled.
type Observer interface {
	// InitialFound fires after the initial is split off a word part.
	InitialFound(part, initial string)
	// FinalFound fires after the final is settled.
	FinalFound(part, final string)
	// SyllableParsed fires once per parsed syllable, valid or not.
	SyllableParsed(s Syllable)
	// WordAssembled fires when a word's syllables are complete.
	WordAssembled(word string, syllables []Syllable)
}

// nopObserver is the default Observer.
type nopObserver struct{}

func (nopObserver) InitialFound(string, string)      {}
func (nopObserver) FinalFound(string, string)        {}
func (nopObserver) SyllableParsed(Syllable)          {}
func (nopObserver) WordAssembled(string, []Syllable) {}
