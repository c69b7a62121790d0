// Package interactive runs a number field as a bubbletea widget. Keys go
// through the same numberfield filter as in the browser; arrow keys step the
// value and Enter confirms.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-numberinput/pkg/numberfield"
)

// ErrAborted is returned by Run when the user leaves with Esc or Ctrl+C.
var ErrAborted = errors.New("interactive: aborted")

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	spinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true)
	unitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")).Italic(true)
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// editor adapts a textinput to numberfield.Element. The model keeps it
// behind a pointer so bubbletea's value copies share one text buffer with
// the field.
type editor struct {
	input textinput.Model
}

func (e *editor) Value() string {
	return e.input.Value()
}

func (e *editor) SetValue(v string) {
	e.input.SetValue(v)
	e.input.CursorEnd()
}

func (e *editor) SelectionStart() int {
	return e.input.Position()
}

func (e *editor) SelectionEnd() int {
	return e.input.Position()
}

// Model is the bubbletea model of one number field.
type Model struct {
	label  string
	editor *editor
	field  *numberfield.Field

	lastStep numberfield.Action
	stepped  bool
	rejected bool
	done     bool
	aborted  bool
}

var _ tea.Model = Model{}

// New builds a focused widget for a field configured by fns.
func New(label string, fns ...numberfield.OptionFn) (Model, error) {
	ed := &editor{input: textinput.New()}
	ed.input.Prompt = ""
	ed.input.Focus()

	field, err := numberfield.New(ed, nil, fns...)
	if err != nil {
		return Model{}, fmt.Errorf("interactive: new field: %w", err)
	}
	ed.input.CursorEnd()

	return Model{label: label, editor: ed, field: field}, nil
}

// Field exposes the underlying field.
func (m Model) Field() *numberfield.Field {
	return m.field
}

// Value returns the current text.
func (m Model) Value() string {
	return m.field.Text()
}

// Done reports whether the user confirmed with Enter.
func (m Model) Done() bool {
	return m.done
}

// Aborted reports whether the user left with Esc or Ctrl+C.
func (m Model) Aborted() bool {
	return m.aborted
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.editor.input, cmd = m.editor.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.field.HandleBlur()
		m.done = true
		return m, tea.Quit
	}

	m.stepped, m.rejected = false, false
	if key.Type == tea.KeyRunes && len(key.Runes) > 1 {
		var cmds []tea.Cmd
		for _, r := range key.Runes {
			cmds = append(cmds, m.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}))
		}
		return m, tea.Batch(cmds...)
	}
	return m, m.press(key)
}

// press runs one key through key-down, key-press and key-up. Accepted keys
// reach the text input; step keys never do.
func (m *Model) press(key tea.KeyMsg) tea.Cmd {
	code, char, known := translate(key)
	if !known {
		return nil
	}

	m.field.HandleKeyDown(int(code))
	var cmd tea.Cmd
	if m.field.HandleKeyPress(char) {
		m.editor.input, cmd = m.editor.input.Update(key)
	} else if numberfield.IsStepKey(code) {
		m.stepped = true
		m.lastStep = numberfield.ActionIncrease
		if code == numberfield.KeyDown {
			m.lastStep = numberfield.ActionDecrease
		}
	} else {
		m.rejected = true
	}
	m.field.HandleKeyUp()
	return cmd
}

// translate maps a terminal key onto browser key-down codes and key-press
// characters.
func translate(key tea.KeyMsg) (numberfield.KeyCode, rune, bool) {
	switch key.Type {
	case tea.KeyBackspace:
		return numberfield.KeyBackspace, 0, true
	case tea.KeyDelete:
		return numberfield.KeyDelete, 0, true
	case tea.KeyLeft:
		return numberfield.KeyLeft, 0, true
	case tea.KeyRight:
		return numberfield.KeyRight, 0, true
	case tea.KeyHome:
		return numberfield.KeyHome, 0, true
	case tea.KeyEnd:
		return numberfield.KeyEnd, 0, true
	case tea.KeyUp:
		return numberfield.KeyUp, 0, true
	case tea.KeyDown:
		return numberfield.KeyDown, 0, true
	case tea.KeyTab:
		return numberfield.KeyTab, 0, true
	case tea.KeySpace:
		return numberfield.KeyNone, ' ', true
	case tea.KeyRunes:
		if len(key.Runes) != 1 {
			return numberfield.KeyNone, 0, false
		}
		r := key.Runes[0]
		return numberfield.CodeForRune(r), r, true
	default:
		return numberfield.KeyNone, 0, false
	}
}

func (m Model) View() string {
	opts := m.field.Options()

	up, down := spinStyle.Render("▲"), spinStyle.Render("▼")
	if m.stepped && m.lastStep == numberfield.ActionIncrease {
		up = activeStyle.Render("▲")
	}
	if m.stepped && m.lastStep == numberfield.ActionDecrease {
		down = activeStyle.Render("▼")
	}

	parts := []string{boxStyle.Render(m.editor.input.View())}
	if opts.Spinner {
		parts = append(parts, up+down)
	}
	if opts.Unit != "" {
		parts = append(parts, unitStyle.Render(opts.Unit))
	}
	row := parts[0]
	for _, part := range parts[1:] {
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " ", part)
	}

	var b strings.Builder
	if m.label != "" {
		b.WriteString(labelStyle.Render(m.label))
		b.WriteString("\n")
	}
	b.WriteString(row)
	b.WriteString("\n")
	if m.rejected {
		b.WriteString(rejectStyle.Render("key not allowed here"))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("↑/↓ step • enter confirm • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Run shows the widget until the user confirms or aborts and returns the
// confirmed text.
func Run(ctx context.Context, label string, fns ...numberfield.OptionFn) (string, error) {
	m, err := New(label, fns...)
	if err != nil {
		return "", err
	}
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("interactive: run: %w", err)
	}
	result, ok := final.(Model)
	if !ok || result.Aborted() || !result.Done() {
		return "", ErrAborted
	}
	return result.Value(), nil
}
