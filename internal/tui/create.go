package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/wizard"
)

// createModel renders step 2: gender, objective and activity level.
type createModel struct {
	screen  *wizard.CreateScreen
	selects []Select
	focus   int // len(selects) is the submit button
}

func newCreateModel(b *wizard.Bridge) createModel {
	m := createModel{
		screen: wizard.NewCreateScreen(b),
		selects: []Select{
			NewSelect(model.FieldGender, "Sexo:", "Selecione o seu sexo...", model.GenderOptions),
			NewSelect(model.FieldObjective, "Selecione o seu objetivo:", "Selecione o seu objetivo...", model.ObjectiveOptions),
			NewSelect(model.FieldLevel, "Selecione o nível de atividade física:", "Selecione o seu nível de atividade física", model.LevelOptions),
		},
	}
	m.setFocus(0)
	return m
}

func (m createModel) onButton() bool { return m.focus == len(m.selects) }

func (m *createModel) setFocus(i int) {
	n := len(m.selects) + 1
	m.focus = ((i % n) + n) % n
	for j := range m.selects {
		if j == m.focus {
			m.selects[j].Focus()
		} else {
			m.selects[j].Blur()
		}
	}
}

func (m createModel) Update(msg tea.Msg) (createModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// an open dropdown takes every key
	if !m.onButton() && m.selects[m.focus].Open() {
		sel, picked := m.selects[m.focus].Update(k)
		m.selects[m.focus] = sel
		if picked {
			m.dispatch(wizard.FieldChanged{Field: sel.Name, Value: sel.Value()})
		}
		return m, nil
	}

	switch {
	case key.Matches(k, keys.Back):
		return m, tea.Quit
	case key.Matches(k, keys.Next), key.Matches(k, keys.Down):
		m.setFocus(m.focus + 1)
	case key.Matches(k, keys.Prev), key.Matches(k, keys.Up):
		m.setFocus(m.focus - 1)
	case key.Matches(k, keys.Submit):
		m.dispatch(wizard.Submitted{})
	case key.Matches(k, keys.Enter), key.Matches(k, keys.Toggle):
		if m.onButton() {
			m.dispatch(wizard.Submitted{})
		} else {
			m.selects[m.focus], _ = m.selects[m.focus].Update(k)
		}
	}
	return m, nil
}

// dispatch feeds the screen and copies its errors back onto the controls.
func (m *createModel) dispatch(ev wizard.Event) {
	st := m.screen.Dispatch(ev)
	for i := range m.selects {
		m.selects[i].Err = st.Errors[m.selects[i].Name]
	}
}

func (m createModel) View() string {
	parts := make([]string, 0, len(m.selects)+1)
	for _, s := range m.selects {
		parts = append(parts, s.View())
	}
	parts = append(parts, button("Avançar", m.onButton()))
	return strings.Join(parts, "\n\n")
}
