package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/solidlab/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenLibrary
	screenVehicles
)

const (
	menuLibrary  = "Library"
	menuVehicles = "Vehicles"
	menuQuit     = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type bookItem struct {
	book domain.Book
}

func (b bookItem) Title() string       { return b.book.Title }
func (b bookItem) Description() string { return bookDescription(b.book) }
func (b bookItem) FilterValue() string { return b.book.Title }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	books list.Model

	form *addForm

	demo    []string
	loading bool
	toast   string
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{menuLibrary, "Browse and prune the book collection"},
		menuItem{menuVehicles, "Start the US and EU factory line-up"},
		menuItem{menuQuit, "Exit solidlab"},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "solidlab"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)
	menu.SetShowHelp(false)

	books := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	books.Title = "Books"
	books.SetShowHelp(false)
	books.SetStatusBarItemName("book", "books")

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  menu,
		books: books,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.books.SetSize(w-4, h-12)
		return m, nil

	case booksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.books))
		for _, b := range msg.books {
			items = append(items, bookItem{book: b})
		}
		return m, m.books.SetItems(items)

	case bookAddedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.form = nil
		m.toast = fmt.Sprintf("Added %q", msg.title)
		m.loading = true
		return m, cmdLoadBooks(m.deps.Library)

	case bookRemovedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("Removed every book titled %q", msg.title)
		m.loading = true
		return m, cmdLoadBooks(m.deps.Library)

	case demoDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.demo = msg.lines
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenLibrary:
			return m.updateLibrary(msg)
		case screenVehicles:
			return m.updateVehicles(msg)
		}
	}

	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		switch it.title {
		case menuLibrary:
			m.scr = screenLibrary
			m.loading = true
			return m, cmdLoadBooks(m.deps.Library)
		case menuVehicles:
			m.scr = screenVehicles
			m.loading = true
			return m, cmdRunDemo(m.deps.USFactory, m.deps.EUFactory)
		case menuQuit:
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.books.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.books, cmd = m.books.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "b", "q":
		return m.home(), nil

	case "r":
		m.loading = true
		return m, cmdLoadBooks(m.deps.Library)

	case "a":
		m.form = newAddForm()
		m.toast = ""
		return m, nil

	case "d":
		it, ok := m.books.SelectedItem().(bookItem)
		if !ok {
			return m, nil
		}
		return m, cmdRemoveBook(m.deps.Library, it.book.Title)
	}

	var cmd tea.Cmd
	m.books, cmd = m.books.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil

	case "tab", "down":
		m.form.next()
		return m, nil

	case "enter":
		if !m.form.onLast() {
			m.form.next()
			return m, nil
		}
		title, author, rawYear := m.form.values()
		year, err := domain.ParseYear(rawYear)
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		return m, cmdAddBook(m.deps.Library, title, author, year)
	}

	return m, m.form.update(msg)
}

func (m model) updateVehicles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		return m.home(), nil
	case "r":
		m.loading = true
		return m, cmdRunDemo(m.deps.USFactory, m.deps.EUFactory)
	}
	return m, nil
}

func (m model) home() model {
	m.scr = screenHome
	m.form = nil
	m.toast = ""
	m.loading = false
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("solidlab") + "\n" +
		m.theme.Subtitle.Render("A book library and a regional vehicle factory") + "\n"

	info := fmt.Sprintf("Workspace: %s • backend: %s", orDash(m.deps.WorkspaceRoot), orDash(m.deps.Backend))
	if m.deps.Debug {
		info += " • debug"
	}
	banner := m.theme.Help.Render(info)

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.theme.Card.Render(m.menu.View())
		help = "↑/↓ navigate • enter open • / search • q quit"

	case screenLibrary:
		switch {
		case m.form != nil:
			body = m.theme.Card.Render(m.form.view())
			help = "enter next/save • tab next • esc cancel"
		case m.loading:
			body = m.theme.Card.Render("Loading books…")
		case len(m.books.Items()) == 0:
			body = m.theme.Card.Render(emptyLibraryText(m.deps.Backend))
		default:
			body = m.theme.Card.Render(m.books.View())
		}
		if m.form == nil {
			help = "a add • d remove title • r reload • / search • esc/b back"
		}

	case screenVehicles:
		if m.loading {
			body = m.theme.Card.Render("Starting engines…")
		} else {
			body = m.theme.Card.Render(renderDemo(m.theme, m.demo))
		}
		help = "r run again • esc/b back"

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}

	out := header + "\n" + banner + "\n\n" + body + "\n" + m.theme.Help.Render(help)
	if strings.TrimSpace(m.toast) != "" {
		out += "\n\n" + m.theme.Toast.Render(m.toast)
	}
	return wrap.Render(out)
}

func emptyLibraryText(backend string) string {
	text := "No books in the library. Press a to add one."
	if backend == "memory" {
		text += "\nThe memory backend keeps nothing after exit; run with --store yaml|json|sqlite to browse a saved library."
	}
	return text
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
