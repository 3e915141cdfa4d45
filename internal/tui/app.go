package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JHGFD82/RoManTools/internal/clipboard"
	"github.com/JHGFD82/RoManTools/internal/romanize"
)

// App is the live converter: text typed into the prompt is segmented
// and converted as it changes, and tab flips the direction.
type App struct {
	input textinput.Model

	from romanize.Method
	to   romanize.Method
	proc *romanize.Processor

	chunks    []romanize.Chunk
	converted string
	errMsg    string
	status    string

	width int
}

// NewApp builds the TUI starting with the given source method.
func NewApp(from romanize.Method) *App {
	ti := textinput.New()
	ti.Placeholder = "type romanized text"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 48

	a := &App{
		input: ti,
		from:  from,
		to:    other(from),
	}
	a.rebuild()
	return a
}

func other(m romanize.Method) romanize.Method {
	if m == romanize.Pinyin {
		return romanize.WadeGiles
	}
	return romanize.Pinyin
}

// rebuild creates the processor after a direction change.
func (a *App) rebuild() {
	p, err := romanize.New(a.from)
	if err != nil {
		a.errMsg = err.Error()
		return
	}
	a.proc = p
	a.errMsg = ""
	a.refresh()
}

// refresh recomputes segmentation and conversion for the current text.
func (a *App) refresh() {
	text := a.input.Value()
	a.status = ""
	if a.proc == nil || strings.TrimSpace(text) == "" {
		a.chunks = nil
		a.converted = ""
		return
	}
	a.chunks = a.proc.Chunks(text, false)
	out, err := a.proc.CherryPick(text, a.to)
	if err != nil {
		a.errMsg = err.Error()
		return
	}
	a.converted = out
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "tab":
			a.from, a.to = a.to, a.from
			a.rebuild()
			return a, nil
		case "ctrl+y":
			if a.converted != "" && clipboard.Available() {
				if err := clipboard.Write(a.converted); err == nil {
					a.status = "copied"
				}
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.refresh()
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	title := TitleStyle.Render("RoManTools")
	direction := DirectionStyle.Render(a.from.Name() + " → " + a.to.Name())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", direction))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")

	if a.errMsg != "" {
		b.WriteString(PanelStyle.Render(SyllableInvalidStyle.Render(a.errMsg)))
		b.WriteString("\n")
	} else if len(a.chunks) > 0 {
		b.WriteString(PanelStyle.Render(
			LabelStyle.Render("syllables  ") + a.renderSyllables() + "\n" +
				LabelStyle.Render("converted  ") + OutputStyle.Render(a.converted)))
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString(StatusStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("tab: switch direction • ctrl+y: copy • esc: quit"))
	return b.String()
}

// renderSyllables shows each parsed syllable, striking out invalid ones.
func (a *App) renderSyllables() string {
	var parts []string
	for _, c := range a.chunks {
		var syls []string
		for _, s := range c.Syllables {
			if s.Valid {
				syls = append(syls, SyllableValidStyle.Render(s.Text))
			} else {
				syls = append(syls, SyllableInvalidStyle.Render(s.Text))
			}
		}
		parts = append(parts, strings.Join(syls, "·"))
	}
	return strings.Join(parts, "  ")
}
