package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/variant"
)

type modelState int

const (
	stateSelectShape modelState = iota
	stateInputFields
)

type interactiveModel struct {
	err      error
	arena    *arena
	shape    Shape
	last     report
	taken    string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
	shown    bool
}

func newInteractiveModel(a *arena) *interactiveModel {
	return &interactiveModel{
		arena: a,
		state: stateSelectShape,
	}
}

type inspectedMsg struct {
	err    error
	report report
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.inspect()
}

// inspect returns a command reporting on a clone of the current shape.
// Commands run on their own goroutine while Update keeps mutating m.shape.
func (m *interactiveModel) inspect() tea.Cmd {
	a, s := m.arena, m.shape.Clone()
	return func() tea.Msg {
		r, err := inspect(a, s)
		return inspectedMsg{report: r, err: err}
	}
}

// take moves the live shape out, leaving the container empty.
func (m *interactiveModel) take() {
	switch m.shape.Tag() {
	case 0:
		m.taken = m.shape.Take0().Echo()
	case 1:
		m.taken = m.shape.Take1().Echo()
	case 2:
		m.taken = m.shape.Take2().Echo()
	default:
		m.taken = ""
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectShape {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectShape && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectShape && m.selected < len(kinds)-1 {
				m.selected++
			}

		case "t":
			if m.state == stateSelectShape {
				m.take()
				return m, m.inspect()
			}

		case "enter":
			switch m.state {
			case stateSelectShape:
				m.prepareInputs()
				m.state = stateInputFields
				return m, nil

			case stateInputFields:
				return m, m.apply()
			}

		case "tab":
			if m.state == stateInputFields && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state == stateInputFields {
				m.state = stateSelectShape
				m.inputs = nil
			}
		}

	case inspectedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.last = msg.report
			m.shown = true
		}
	}

	if m.state == stateInputFields {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	k := kinds[m.selected]
	m.inputs = make([]textinput.Model, len(k.fields))
	for i, f := range k.fields {
		ti := textinput.New()
		ti.Placeholder = "float64"
		ti.Prompt = f + ": "
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// apply installs the entered shape, dropping the previous one.
func (m *interactiveModel) apply() tea.Cmd {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}

	tag := variant.Tag(m.selected)
	x, err := build(tag, values)
	if err == nil {
		err = m.shape.Assign(tag, x)
	}
	if err != nil {
		m.err = err
		return nil
	}

	m.err = nil
	m.state = stateSelectShape
	m.inputs = nil
	m.taken = ""
	return m.inspect()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	if m.shown {
		m.last.render(&b)
		b.WriteString("\n")
	}
	if m.taken != "" {
		b.WriteString(helpStyle.Render("took " + m.taken))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateSelectShape:
		b.WriteString("Select an alternative:\n\n")
		for i, k := range kinds {
			line := fmt.Sprintf("%s(%s)", k.name, strings.Join(k.fields, ", "))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter set • t take • q quit"))

	case stateInputFields:
		fmt.Fprintf(&b, "Set %s\n\n", kinds[m.selected].name)
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter set • esc back"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	return b.String()
}

func runInteractive(ctx context.Context, a *arena) error {
	p := tea.NewProgram(newInteractiveModel(a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
