package tui

import "github.com/aalvaropc/solidlab/internal/domain"

type booksLoadedMsg struct {
	books []domain.Book
	err   error
}

type bookAddedMsg struct {
	title string
	err   error
}

type bookRemovedMsg struct {
	title string
	err   error
}

type demoDoneMsg struct {
	lines []string
	err   error
}
