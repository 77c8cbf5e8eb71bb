package selector

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type entry string

func (e entry) Title() string       { return string(e) }
func (e entry) Description() string { return "" }
func (e entry) FilterValue() string { return string(e) }

// PickerModel is a single-choice list. Enter picks the highlighted entry;
// q, esc and ctrl+c back out.
type PickerModel struct {
	list      list.Model
	choice    string
	cancelled bool
}

// NewPicker builds a picker over names.
func NewPicker(title string, names []string) PickerModel {
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, entry(name))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)

	return PickerModel{list: l}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if sel, ok := m.list.SelectedItem().(entry); ok {
				m.choice = string(sel)
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.choice != "" || m.cancelled {
		return ""
	}
	return m.list.View()
}

// Choice returns the picked name, if any.
func (m PickerModel) Choice() (string, bool) {
	return m.choice, m.choice != ""
}

// Pick runs the picker on the terminal behind in and out.
func Pick(in io.Reader, out io.Writer, title string, names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from", ErrInvalidSelection)
	}

	p := tea.NewProgram(NewPicker(title, names),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	choice, ok := final.(PickerModel).Choice()
	if !ok {
		return "", ErrSelectionCancelled
	}
	return choice, nil
}
