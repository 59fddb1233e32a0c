package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/solidlab/internal/infra/console"
	"github.com/aalvaropc/solidlab/internal/ports"
	"github.com/aalvaropc/solidlab/internal/usecase"
)

func cmdLoadBooks(lib LibraryUC) tea.Cmd {
	return func() tea.Msg {
		if lib == nil {
			return booksLoadedMsg{err: errors.New("library is not configured")}
		}
		books, err := lib.Books(context.Background())
		return booksLoadedMsg{books: books, err: err}
	}
}

func cmdAddBook(lib LibraryUC, title, author string, year int) tea.Cmd {
	return func() tea.Msg {
		if lib == nil {
			return bookAddedMsg{title: title, err: errors.New("library is not configured")}
		}
		err := lib.AddBook(context.Background(), title, author, year)
		return bookAddedMsg{title: title, err: err}
	}
}

func cmdRemoveBook(lib LibraryUC, title string) tea.Cmd {
	return func() tea.Msg {
		if lib == nil {
			return bookRemovedMsg{title: title, err: errors.New("library is not configured")}
		}
		err := lib.RemoveBook(context.Background(), title)
		return bookRemovedMsg{title: title, err: err}
	}
}

func cmdRunDemo(us, eu ports.VehicleFactory) tea.Cmd {
	return func() tea.Msg {
		if us == nil || eu == nil {
			return demoDoneMsg{err: errors.New("vehicle factories are not configured")}
		}
		var lines console.Lines
		err := usecase.RunVehicleDemo(us, eu, &lines)
		return demoDoneMsg{lines: lines.All(), err: err}
	}
}
