package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldYear
	fieldCount
)

// addForm collects title, author and year for a new book.
type addForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newAddForm() *addForm {
	f := &addForm{}
	for i, label := range [fieldCount]string{"Title", "Author", "Year"} {
		ti := textinput.New()
		ti.Prompt = label + ": "
		ti.Cursor.SetMode(cursor.CursorStatic)
		f.inputs[i] = ti
	}
	f.inputs[fieldYear].CharLimit = 6
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *addForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
}

func (f *addForm) onLast() bool { return f.focus == fieldCount-1 }

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *addForm) values() (title, author, year string) {
	return strings.TrimSpace(f.inputs[fieldTitle].Value()),
		strings.TrimSpace(f.inputs[fieldAuthor].Value()),
		strings.TrimSpace(f.inputs[fieldYear].Value())
}

func (f *addForm) view() string {
	lines := make([]string, 0, fieldCount+1)
	lines = append(lines, "Add a book")
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	return strings.Join(lines, "\n")
}
