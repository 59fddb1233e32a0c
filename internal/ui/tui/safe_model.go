package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const msgUnexpected = "Unexpected error (see logs)"

// safeModel keeps a panic in a screen from tearing down the terminal. After
// a panic in Update the user lands back on the home menu with a toast.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("update", r, msg)
			s.m = s.m.home()
			s.m.toast = msgUnexpected
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("view", r, nil)
			out = msgUnexpected
		}
	}()
	return s.m.View()
}

func (s safeModel) logPanic(where string, r any, msg tea.Msg) {
	s.log.Error("tui.panic",
		"where", where,
		"screen", int(s.m.scr),
		"msg", fmt.Sprintf("%T", msg),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = safeModel{}
