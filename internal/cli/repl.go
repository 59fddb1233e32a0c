package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
	"github.com/aalvaropc/solidlab/internal/usecase"
)

const (
	promptCommand     = "Enter command (add, remove, show, exit): "
	promptTitle       = "Enter book title: "
	promptAuthor      = "Enter book author: "
	promptYear        = "Enter book year: "
	promptRemoveTitle = "Enter book title to remove: "

	msgYearNotInteger = "Year must be an integer. Please try again."
	msgInvalidCommand = "Invalid command. Please try again."
)

// repl is the line-oriented library prompt. Prompts go to out; results go
// through the reporter.
type repl struct {
	in       *bufio.Scanner
	out      io.Writer
	reporter ports.Reporter
	library  *usecase.ManageLibrary
	log      *slog.Logger
}

// maxLine bounds a single REPL input line.
const maxLine = 1 << 20

func newREPL(in io.Reader, out io.Writer, reporter ports.Reporter, library *usecase.ManageLibrary, log *slog.Logger) *repl {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &repl{
		in:       sc,
		out:      out,
		reporter: reporter,
		library:  library,
		log:      log,
	}
}

// ask prints prompt and reads one trimmed line. ok is false at end of input.
func (r *repl) ask(prompt string) (line string, ok bool) {
	fmt.Fprint(r.out, prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

// Run loops until "exit" or end of input. Store failures are reported and the
// loop continues; only a cancelled context or a read error ends it early.
func (r *repl) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := r.ask(promptCommand)
		if !ok {
			return r.in.Err()
		}

		switch strings.ToLower(line) {
		case "add":
			if !r.add(ctx) {
				return r.in.Err()
			}
		case "remove":
			title, ok := r.ask(promptRemoveTitle)
			if !ok {
				return r.in.Err()
			}
			r.check(r.library.RemoveBook(ctx, title))
		case "show":
			r.check(r.library.ShowBooks(ctx))
		case "exit":
			return nil
		default:
			r.reporter.Report(msgInvalidCommand)
		}
	}
}

// add runs the add dialogue; it returns false when input ended mid-way.
func (r *repl) add(ctx context.Context) bool {
	title, ok := r.ask(promptTitle)
	if !ok {
		return false
	}
	author, ok := r.ask(promptAuthor)
	if !ok {
		return false
	}
	rawYear, ok := r.ask(promptYear)
	if !ok {
		return false
	}

	year, err := domain.ParseYear(rawYear)
	if err != nil {
		r.log.Debug("repl.add.invalid_year", "input", rawYear)
		r.reporter.Report(msgYearNotInteger)
		return true
	}

	r.check(r.library.AddBook(ctx, title, author, year))
	return true
}

func (r *repl) check(err error) {
	if err == nil {
		return
	}
	r.log.Error("repl.command.failed", "err", err)
	r.reporter.Report("Error: " + err.Error())
}
