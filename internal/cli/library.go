package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/infra/config"
	"github.com/aalvaropc/solidlab/internal/infra/console"
	"github.com/aalvaropc/solidlab/internal/infra/logger"
	"github.com/aalvaropc/solidlab/internal/usecase"
)

var booksJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func libraryCmd(flags *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "library",
		Short: "Manage the book library (interactive when run without a subcommand)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.For("repl")
			ws, err := loadWorkspace(cmd.Context(), flags, log)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			out := cmd.OutOrStdout()
			reporter := console.NewReporter(out)
			uc := usecase.NewManageLibrary(ws.store, reporter, usecase.WithLibraryLogger(log))

			log.Info("repl.start", "backend", ws.cfg.Library.Backend, "workspace", ws.root)
			return newREPL(cmd.InOrStdin(), out, reporter, uc, log).Run(cmd.Context())
		},
	}

	c.AddCommand(
		libraryAddCmd(flags),
		libraryRemoveCmd(flags),
		libraryShowCmd(flags),
		libraryQueryCmd(flags),
		libraryImportCmd(flags),
	)
	return c
}

func libraryAddCmd(flags *globalFlags) *cobra.Command {
	var title, author, year string

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			y, err := domain.ParseYear(year)
			if err != nil {
				return err
			}

			return withLibrary(cmd, flags, func(uc *usecase.ManageLibrary) error {
				return uc.AddBook(cmd.Context(), strings.TrimSpace(title), strings.TrimSpace(author), y)
			})
		},
	}

	c.Flags().StringVarP(&title, "title", "t", "", "Book title (required)")
	c.Flags().StringVarP(&author, "author", "a", "", "Book author (required)")
	c.Flags().StringVarP(&year, "year", "y", "", "Publication year (required, integer)")
	_ = c.MarkFlagRequired("title")
	_ = c.MarkFlagRequired("author")
	_ = c.MarkFlagRequired("year")
	return c
}

func libraryRemoveCmd(flags *globalFlags) *cobra.Command {
	var title string

	c := &cobra.Command{
		Use:   "remove",
		Short: "Remove every book with the given title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLibrary(cmd, flags, func(uc *usecase.ManageLibrary) error {
				return uc.RemoveBook(cmd.Context(), title)
			})
		},
	}

	c.Flags().StringVarP(&title, "title", "t", "", "Title to remove, exact and case-sensitive (required)")
	_ = c.MarkFlagRequired("title")
	return c
}

func libraryShowCmd(flags *globalFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "List books in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLibrary(cmd, flags, func(uc *usecase.ManageLibrary) error {
				switch format {
				case "text", "":
					return uc.ShowBooks(cmd.Context())
				case "json":
					books, err := uc.Books(cmd.Context())
					if err != nil {
						return err
					}
					return printBooksJSON(cmd.OutOrStdout(), books)
				default:
					return fmt.Errorf("unsupported format %q (expected text|json)", format)
				}
			})
		},
	}

	c.Flags().StringVar(&format, "format", "text", "Output format: text|json")
	return c
}

func libraryQueryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "query <jsonpath>",
		Short:   "Evaluate a JSONPath expression against the library",
		Example: "  solidlab library query '$[?(@.year < 1900)].title'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(cmd.Context(), flags, logger.For("query"))
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			out, err := usecase.NewQueryLibrary(ws.store).Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func libraryImportCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "import <catalog.yaml>",
		Short:   "Append every book from a YAML catalog",
		Example: "  solidlab library import data/classics.yaml --store yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := config.LoadCatalog(args[0])
			if err != nil {
				return err
			}

			return withLibrary(cmd, flags, func(uc *usecase.ManageLibrary) error {
				n, err := uc.ImportBooks(cmd.Context(), books)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d book(s).\n", n)
				return nil
			})
		},
	}
}

// withLibrary opens the configured store, runs fn, and closes the store.
func withLibrary(cmd *cobra.Command, flags *globalFlags, fn func(uc *usecase.ManageLibrary) error) error {
	log := logger.For("library")
	ws, err := loadWorkspace(cmd.Context(), flags, log)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	warnEphemeral(cmd.ErrOrStderr(), ws.cfg.Library.Backend, log)

	uc := usecase.NewManageLibrary(ws.store, console.NewReporter(cmd.OutOrStdout()), usecase.WithLibraryLogger(log))
	return fn(uc)
}

func warnEphemeral(w io.Writer, backend domain.StoreBackend, log *slog.Logger) {
	if backend != domain.BackendMemory {
		return
	}
	log.Warn("library.ephemeral", "backend", backend)
	fmt.Fprintln(w, "note: memory backend in use; changes are discarded when the command exits (see --store)")
}

func printBooksJSON(w io.Writer, books []domain.Book) error {
	b, err := booksJSON.MarshalIndent(books, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
