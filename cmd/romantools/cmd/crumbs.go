package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/JHGFD82/RoManTools/internal/romanize"
)

// Crumb trail styling.
var (
	crumbLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	crumbTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	crumbValidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	crumbInvalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// crumbTrail is a romanize.Observer that prints each segmentation
// decision as it happens, one crumb per line.
type crumbTrail struct {
	w io.Writer
}

func newCrumbTrail(w io.Writer) *crumbTrail {
	return &crumbTrail{w: w}
}

func (c *crumbTrail) InitialFound(part, initial string) {
	if initial == "" {
		initial = "ø"
	}
	fmt.Fprintf(c.w, "%s %s %s\n",
		crumbLabelStyle.Render("initial"),
		crumbTextStyle.Render(initial),
		crumbLabelStyle.Render("in "+part))
}

func (c *crumbTrail) FinalFound(part, final string) {
	fmt.Fprintf(c.w, "%s %s %s\n",
		crumbLabelStyle.Render("final  "),
		crumbTextStyle.Render(final),
		crumbLabelStyle.Render("in "+part))
}

func (c *crumbTrail) SyllableParsed(s romanize.Syllable) {
	verdict := crumbValidStyle.Render("valid")
	if !s.Valid {
		verdict = crumbInvalidStyle.Render("invalid")
	}
	fmt.Fprintf(c.w, "%s %s %s\n",
		crumbLabelStyle.Render("syllable"),
		crumbTextStyle.Render(s.Text),
		verdict)
}

func (c *crumbTrail) WordAssembled(word string, syllables []romanize.Syllable) {
	fmt.Fprintf(c.w, "%s %s %s\n",
		crumbLabelStyle.Render("word"),
		crumbTextStyle.Render(word),
		crumbLabelStyle.Render(fmt.Sprintf("(%d syllables)", len(syllables))))
}
