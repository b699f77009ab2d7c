package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/ui"
	"github.com/idilsaglam/dieta/internal/wizard"
)

type textField struct {
	name  string
	label string
	input textinput.Model
}

func newTextField(name, label, placeholder string, limit int) textField {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return textField{name: name, label: label, input: ti}
}

// personalModel renders step 1: name, weight, height, age.
type personalModel struct {
	screen *wizard.PersonalScreen
	fields []textField
	focus  int // len(fields) is the submit button
}

func newPersonalModel(b *wizard.Bridge) personalModel {
	m := personalModel{
		screen: wizard.NewPersonalScreen(b),
		fields: []textField{
			newTextField(model.FieldName, "Nome:", "Digite seu nome...", 60),
			newTextField(model.FieldWeight, "Seu peso atual:", "Ex: 75", 6),
			newTextField(model.FieldHeight, "Sua altura atual:", "Ex: 1.90", 6),
			newTextField(model.FieldAge, "Sua idade atual:", "Ex: 24", 3),
		},
	}
	return m
}

func (m personalModel) onButton() bool { return m.focus == len(m.fields) }

// setFocus moves focus with wrap-around and returns the cursor blink command.
func (m *personalModel) setFocus(i int) tea.Cmd {
	n := len(m.fields) + 1
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.fields {
		if j == m.focus {
			cmd = m.fields[j].input.Focus()
		} else {
			m.fields[j].input.Blur()
		}
	}
	return cmd
}

func (m personalModel) Update(msg tea.Msg) (personalModel, tea.Cmd) {
	k, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(k, keys.Back):
			return m, tea.Quit
		case key.Matches(k, keys.Next), key.Matches(k, keys.Down):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(k, keys.Prev), key.Matches(k, keys.Up):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(k, keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(k, keys.Enter):
			if m.onButton() {
				m.submit()
				return m, nil
			}
			return m, m.setFocus(m.focus + 1)
		}
	}
	if m.onButton() {
		return m, nil
	}

	f := &m.fields[m.focus]
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); v != before {
		m.screen.Dispatch(wizard.FieldChanged{Field: f.name, Value: v})
	}
	return m, cmd
}

func (m *personalModel) submit() {
	m.screen.Dispatch(wizard.Submitted{})
}

func (m personalModel) View() string {
	errs := m.screen.State().Errors
	var b strings.Builder
	for i, f := range m.fields {
		b.WriteString(ui.LabelStyle.Render(f.label))
		b.WriteString("\n")
		box := ui.FieldStyle
		if i == m.focus {
			box = ui.FocusedStyle
		}
		b.WriteString(box.Render(f.input.View()))
		b.WriteString("\n")
		if msg, ok := errs[f.name]; ok {
			b.WriteString(ui.ErrorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(button("Avançar", m.onButton()))
	return b.String()
}

func button(label string, focused bool) string {
	if focused {
		return ui.SelectedStyle.Render(" " + label + " ")
	}
	return ui.AccentStyle.Render("[ " + label + " ]")
}
