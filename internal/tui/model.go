package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"percentcalc/internal/percent"
	"percentcalc/internal/present"
)

// copiedMetaDuration is how long the copy confirmation stays on screen.
const copiedMetaDuration = 1500 * time.Millisecond

// copiedMsg reports the outcome of an asynchronous copy.
type copiedMsg struct{ err error }

// clearMetaMsg hides the copy confirmation unless a newer one replaced it.
type clearMetaMsg struct{ seq int }

// Model is the calculator form: a mode selector, one input per field, the
// direction choice for apply-pct, and the output lines.
type Model struct {
	calc *percent.Calculator
	clip present.Clipboard

	modeIdx int
	inputs  []textinput.Model
	focus   int
	dir     percent.Direction

	out     present.Output
	metaSeq int
	width   int
}

// New returns a form starting on the first mode.
func New(calc *percent.Calculator, clip present.Clipboard) Model {
	m := Model{calc: calc, clip: clip}
	m.renderFields()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode is the selected calculation mode.
func (m Model) Mode() percent.Mode { return percent.Modes[m.modeIdx] }

// Output is the current result, explanation and error lines.
func (m Model) Output() present.Output { return m.out }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case copiedMsg:
		switch {
		case msg.err == nil:
			m.out.SetMeta(present.CopiedMessage)
			m.metaSeq++
			seq := m.metaSeq
			return m, tea.Tick(copiedMetaDuration, func(time.Time) tea.Msg { return clearMetaMsg{seq: seq} })
		case errors.Is(msg.err, present.ErrNothingToCopy):
			m.out.SetError(present.ErrNothingToCopy.Error())
		default:
			m.out.SetError(present.ErrClipboardUnavailable.Error())
		}
		return m, nil

	case clearMetaMsg:
		if msg.seq == m.metaSeq && m.out.Meta() == present.CopiedMessage {
			m.out.SetMeta("")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.modeIdx = (m.modeIdx + 1) % len(percent.Modes)
			return m, m.renderFields()

		case "shift+tab":
			m.modeIdx = (m.modeIdx + len(percent.Modes) - 1) % len(percent.Modes)
			return m, m.renderFields()

		case "down":
			return m, m.setFocus(m.focus + 1)

		case "up":
			return m, m.setFocus(m.focus - 1)

		case "left", "right", " ":
			if m.onDirectionRow() {
				if m.dir == percent.Increase {
					m.dir = percent.Decrease
				} else {
					m.dir = percent.Increase
				}
				return m, nil
			}

		case "enter":
			m.calculate()
			return m, nil

		case "ctrl+y":
			out, clip := m.out, m.clip
			return m, func() tea.Msg { return copiedMsg{err: present.Copy(clip, out)} }

		case "ctrl+r":
			return m, m.renderFields()
		}
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// renderFields rebuilds the inputs for the selected mode and clears the output.
func (m *Model) renderFields() tea.Cmd {
	fields := m.Mode().Fields()

	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 64
		ti.Width = 24
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.dir = percent.Increase
	m.out.Clear()
	m.focus = 0
	return m.inputs[0].Focus()
}

func (m *Model) rows() int {
	if m.Mode().TakesDirection() {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m *Model) setFocus(i int) tea.Cmd {
	rows := m.rows()
	m.focus = (i + rows) % rows

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m Model) onDirectionRow() bool {
	return m.Mode().TakesDirection() && m.focus == len(m.inputs)
}

func (m *Model) calculate() {
	mode := m.Mode()
	in := make(percent.Input, len(m.inputs)+1)
	for i, f := range mode.Fields() {
		in[f.Name] = m.inputs[i].Value()
	}
	if mode.TakesDirection() {
		in[percent.FieldDirection] = string(m.dir)
	}
	_ = m.out.Render(m.calc, mode, in)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Percentage Calculator"))
	b.WriteString("\n")

	tabs := make([]string, len(percent.Modes))
	for i, mode := range percent.Modes {
		if i == m.modeIdx {
			tabs[i] = activeModeStyle.Render(mode.Title())
		} else {
			tabs[i] = modeStyle.Render(mode.Title())
		}
	}
	b.WriteString(strings.Join(tabs, "  │  "))
	b.WriteString("\n\n")

	var form strings.Builder
	for i, f := range m.Mode().Fields() {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		form.WriteString(label.Render(f.Label))
		form.WriteString("\n")
		form.WriteString(m.inputs[i].View())
		form.WriteString("\n\n")
	}
	if m.Mode().TakesDirection() {
		label := labelStyle
		if m.onDirectionRow() {
			label = focusedLabelStyle
		}
		form.WriteString(label.Render("Direction"))
		form.WriteString("\n")
		form.WriteString(radio("Increase", m.dir == percent.Increase))
		form.WriteString("   ")
		form.WriteString(radio("Decrease", m.dir == percent.Decrease))
		form.WriteString("\n")
	}

	box := boxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	b.WriteString(box.Render(strings.TrimRight(form.String(), "\n")))
	b.WriteString("\n\n")

	if m.out.Text() != "" {
		b.WriteString(resultStyle.Render(m.out.Text()))
		b.WriteString("\n")
	}
	if m.out.Meta() != "" {
		b.WriteString(metaStyle.Render(m.out.Meta()))
		b.WriteString("\n")
	}
	if m.out.Error() != "" {
		b.WriteString(errorStyle.Render(m.out.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab: mode • ↑/↓: field • enter: calculate • ctrl+y: copy • ctrl+r: clear • esc: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func radio(label string, selected bool) string {
	if selected {
		return resultStyle.Render("(•) " + label)
	}
	return labelStyle.Render("( ) " + label)
}
