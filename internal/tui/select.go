package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/dieta/internal/model"
	"github.com/idilsaglam/dieta/internal/ui"
)

// optionItem adapts model.Option to bubbles/list.Item
type optionItem struct{ model.Option }

func (o optionItem) FilterValue() string { return o.Label }

// one line per option, cursor marks the highlighted row
type optionDelegate struct{}

func (d optionDelegate) Height() int                               { return 1 }
func (d optionDelegate) Spacing() int                              { return 0 }
func (d optionDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(optionItem)
	prefix := "  "
	label := it.Label
	if index == m.Index() {
		prefix = ui.AccentStyle.Render(ui.Current().SymCursor + " ")
		label = ui.SelectedStyle.Render(label)
	}
	fmt.Fprint(w, prefix+label)
}

// Select is a dropdown over a fixed option list. The error, when set, is
// rendered under the control.
type Select struct {
	Name        string
	Label       string
	Placeholder string
	Err         string

	options []model.Option
	list    list.Model
	value   string
	open    bool
	focused bool
	width   int
}

func NewSelect(name, label, placeholder string, opts []model.Option) Select {
	items := make([]list.Item, 0, len(opts))
	width := len([]rune(placeholder))
	for _, o := range opts {
		items = append(items, optionItem{o})
		if n := len([]rune(o.Label)); n > width {
			width = n
		}
	}
	l := list.New(items, optionDelegate{}, width+4, len(items))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	return Select{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		options:     opts,
		list:        l,
		width:       width + 4,
	}
}

func (s Select) Value() string { return s.value }
func (s Select) Open() bool    { return s.open }

func (s *Select) Focus() { s.focused = true }

// Blur also closes the dropdown.
func (s *Select) Blur() {
	s.focused = false
	s.open = false
}

// Update handles a key. It reports true when the user picked an option.
func (s Select) Update(msg tea.KeyMsg) (Select, bool) {
	if !s.open {
		if key.Matches(msg, keys.Enter) || key.Matches(msg, keys.Toggle) {
			s.open = true
			s.list.Select(s.selectedIndex())
		}
		return s, false
	}
	switch {
	case key.Matches(msg, keys.ListUp):
		s.list.CursorUp()
	case key.Matches(msg, keys.ListDown):
		s.list.CursorDown()
	case key.Matches(msg, keys.Enter):
		i := s.list.Index()
		if i >= 0 && i < len(s.options) {
			s.value = s.options[i].Value
			s.open = false
			return s, true
		}
	case key.Matches(msg, keys.Back):
		s.open = false
	}
	return s, false
}

func (s Select) selectedIndex() int {
	for i, o := range s.options {
		if o.Value == s.value {
			return i
		}
	}
	return 0
}

func (s Select) View() string {
	var b strings.Builder
	b.WriteString(ui.LabelStyle.Render(s.Label))
	b.WriteString("\n")

	text := ui.MutedStyle.Render(s.Placeholder)
	if s.value != "" {
		text = model.LabelFor(s.options, s.value)
	}
	arrow := ui.Current().DropClosed
	if s.open {
		arrow = ui.Current().DropOpen
	}
	box := ui.FieldStyle
	if s.focused {
		box = ui.FocusedStyle
	}
	b.WriteString(box.Width(s.width).Render(text + " " + arrow))

	if s.open {
		b.WriteString("\n")
		b.WriteString(s.list.View())
	}
	if s.Err != "" {
		b.WriteString("\n")
		b.WriteString(ui.ErrorStyle.Render(s.Err))
	}
	return b.String()
}
