// Package tui is the Bubble Tea front end of the diet wizard.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/dieta/internal/draft"
	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/ui"
	"github.com/idilsaglam/dieta/internal/wizard"
)

// navQueue collects navigation requests made by the bridge during one
// Update; the App drains it before returning.
type navQueue struct {
	pending []model.Route
}

func (q *navQueue) Navigate(to model.Route) { q.pending = append(q.pending, to) }

func (q *navQueue) take() (model.Route, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	to := q.pending[len(q.pending)-1]
	q.pending = q.pending[:0]
	return to, true
}

// App routes between the wizard screens. Every visit to a step starts with
// a fresh form.
type App struct {
	store  *draft.Store
	bridge *wizard.Bridge
	nav    *navQueue
	log    *zap.Logger
	help   help.Model

	route    model.Route
	personal personalModel
	create   createModel
	summary  summaryModel
	width    int
}

// Options configure a wizard run.
type Options struct {
	Start model.Route // defaults to the first step
	Log   *zap.Logger
}

func NewApp(store *draft.Store, opt Options) App {
	if opt.Log == nil {
		opt.Log = zap.NewNop()
	}
	if opt.Start == "" {
		opt.Start = model.RouteStep
	}
	q := &navQueue{}
	a := App{
		store:  store,
		bridge: wizard.NewBridge(store, q, opt.Log),
		nav:    q,
		log:    opt.Log,
		help:   newHelp(),
	}
	a, _ = a.goTo(opt.Start)
	return a
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = ui.AccentStyle
	h.Styles.ShortDesc = ui.HelpStyle
	h.Styles.ShortSeparator = ui.HelpStyle
	return h
}

// Route is the step currently shown.
func (a App) Route() model.Route { return a.route }

func (a App) goTo(to model.Route) (App, tea.Cmd) {
	a.log.Debug("navigate", zap.String("from", string(a.route)), zap.String("to", string(to)))
	a.route = to
	switch to {
	case model.RouteStep:
		a.personal = newPersonalModel(a.bridge)
		return a, a.personal.setFocus(0)
	case model.RouteCreate:
		a.create = newCreateModel(a.bridge)
	default:
		a.route = model.RouteNutrition
		a.summary = newSummaryModel(a.store.Snapshot())
	}
	return a, nil
}

func (a App) Init() tea.Cmd {
	if a.route == model.RouteStep {
		return a.personal.fields[a.personal.focus].input.Focus()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.route {
	case model.RouteStep:
		a.personal, cmd = a.personal.Update(msg)
	case model.RouteCreate:
		a.create, cmd = a.create.Update(msg)
	default:
		a.summary, cmd = a.summary.Update(msg)
	}

	if to, ok := a.nav.take(); ok {
		var navCmd tea.Cmd
		a, navCmd = a.goTo(to)
		return a, tea.Batch(cmd, navCmd)
	}
	return a, cmd
}

func (a App) View() string {
	lines := []string{
		ui.Header(a.route),
		ui.MutedStyle.Render(ui.ProgressBar(a.route.Index(), len(model.Routes), 24)),
		"",
	}
	switch a.route {
	case model.RouteStep:
		lines = append(lines, a.personal.View())
	case model.RouteCreate:
		lines = append(lines, a.create.View())
	default:
		lines = append(lines, a.summary.View())
	}
	lines = append(lines, "", a.help.ShortHelpView(a.helpKeys()))

	out := ui.Panel(lines)
	if a.width > 0 {
		out = lipgloss.PlaceHorizontal(a.width, lipgloss.Left, out)
	}
	return out
}

func (a App) helpKeys() []key.Binding {
	switch a.route {
	case model.RouteNutrition:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "concluir")),
		}
	case model.RouteCreate:
		return []key.Binding{keys.Next, keys.Enter, keys.Submit, keys.Back}
	}
	return []key.Binding{keys.Next, keys.Prev, keys.Submit, keys.Back}
}

// Run starts the wizard on the terminal and returns the step it ended on.
// The draft is left in store; persisting it is the caller's job.
func Run(ctx context.Context, store *draft.Store, opt Options) (model.Route, error) {
	p := tea.NewProgram(NewApp(store, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	app, ok := final.(App)
	if !ok {
		return "", nil
	}
	return app.Route(), nil
}
