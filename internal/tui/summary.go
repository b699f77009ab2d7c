package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/ui"
)

// summaryModel is the nutrition step: a read-only view of the draft.
type summaryModel struct {
	draft model.Draft
}

func newSummaryModel(d model.Draft) summaryModel { return summaryModel{draft: d} }

func (m summaryModel) Update(msg tea.Msg) (summaryModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, keys.Enter) || key.Matches(k, keys.Back) || k.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m summaryModel) View() string {
	return strings.Join(SummaryLines(m.draft), "\n")
}

// SummaryLines lists the draft fields with option labels resolved.
func SummaryLines(d model.Draft) []string {
	row := func(label, value string) string {
		if value == "" {
			value = ui.PendingStyle.Render("(não informado)")
		}
		return fmt.Sprintf("%s %s", ui.LabelStyle.Render(label), value)
	}
	return []string{
		row("Nome:", d.Name),
		row("Peso:", d.Weight),
		row("Altura:", d.Height),
		row("Idade:", d.Age),
		row("Sexo:", model.LabelFor(model.GenderOptions, d.Gender)),
		row("Objetivo:", model.LabelFor(model.ObjectiveOptions, d.Objective)),
		row("Nível:", model.LabelFor(model.LevelOptions, d.Level)),
	}
}
