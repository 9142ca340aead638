// Package tui provides the Bubble Tea interactive ontology browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/alea-institute/soli-go/internal/graph"
	"github.com/alea-institute/soli-go/internal/owl"
	"github.com/alea-institute/soli-go/internal/render"
)

// classItem implements list.Item for the class browser.
type classItem struct {
	class *owl.OWLClass
}

func (i classItem) Title() string       { return i.class.Label }
func (i classItem) Description() string { return i.class.IRI }
func (i classItem) FilterValue() string { return i.class.Label }

// classItems implements fuzzy.Source over the label column.
type classItems []classItem

func (c classItems) String(i int) string { return c[i].class.Label }
func (c classItems) Len() int            { return len(c) }

type mode int

const (
	modeList mode = iota
	modeDetail
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	detailStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// Browser is the interactive class browser model.
type Browser struct {
	snapshot *graph.Snapshot
	items    classItems
	list     list.Model
	input    textinput.Model
	mode     mode
	detail   string
	width    int
	height   int
}

// NewBrowser creates a browser over every class in the snapshot.
func NewBrowser(snapshot *graph.Snapshot) *Browser {
	items := make(classItems, 0, snapshot.Len())
	for _, c := range snapshot.Classes() {
		items = append(items, classItem{class: c})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("205")).
		BorderForeground(lipgloss.Color("205"))

	l := list.New(nil, delegate, 0, 0)
	l.Title = snapshot.Title
	if l.Title == "" {
		l.Title = "Ontology"
	}
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	input := textinput.New()
	input.Placeholder = "type to filter, enter to inspect, q to quit"
	input.Focus()

	b := &Browser{
		snapshot: snapshot,
		items:    items,
		list:     l,
		input:    input,
	}
	b.applyFilter("")
	return b
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.list.SetSize(msg.Width, msg.Height-3)
		return b, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return b, tea.Quit
		case "q":
			if b.mode == modeDetail {
				b.mode = modeList
				return b, nil
			}
			if b.input.Value() == "" {
				return b, tea.Quit
			}
		case "esc":
			if b.mode == modeDetail {
				b.mode = modeList
				return b, nil
			}
			b.input.SetValue("")
			b.applyFilter("")
			return b, nil
		case "enter":
			if b.mode == modeList {
				if item, ok := b.list.SelectedItem().(classItem); ok {
					b.detail = render.ToMarkdown(item.class)
					b.mode = modeDetail
				}
				return b, nil
			}
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			b.list, cmd = b.list.Update(msg)
			return b, cmd
		}

		if b.mode == modeList {
			before := b.input.Value()
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			if b.input.Value() != before {
				b.applyFilter(b.input.Value())
			}
			return b, cmd
		}
	}

	return b, nil
}

// View implements tea.Model.
func (b *Browser) View() string {
	if b.mode == modeDetail {
		return detailStyle.Render(b.detail) + "\n" +
			statusStyle.Render("esc to go back, ctrl+c to quit")
	}

	var sb strings.Builder
	sb.WriteString(b.list.View())
	sb.WriteString("\n")
	sb.WriteString(b.input.View())
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("%d classes", len(b.list.Items()))))
	return sb.String()
}

// applyFilter narrows the visible items with fuzzy matching. An empty
// filter restores the full snapshot.
func (b *Browser) applyFilter(filter string) {
	var listItems []list.Item
	if filter == "" {
		for _, item := range b.items {
			listItems = append(listItems, item)
		}
	} else {
		matches := fuzzy.FindFrom(filter, b.items)
		for _, match := range matches {
			listItems = append(listItems, b.items[match.Index])
		}
	}
	b.list.SetItems(listItems)
	b.list.ResetSelected()
}

// Run starts the browser and blocks until the user quits.
func Run(snapshot *graph.Snapshot) error {
	program := tea.NewProgram(NewBrowser(snapshot), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
