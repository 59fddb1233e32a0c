package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidlab/internal/buildinfo"
	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/infra/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitInput = 2
)

func Execute() {
	cmd, cleanup := newRootCmd()
	err := cmd.Execute()
	_ = cleanup()
	os.Exit(exitCode(err))
}

// exitCode separates bad input (config, year, vehicle kind) from failures.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch domain.KindOf(err) {
	case domain.KindInvalidConfig, domain.KindInvalidYear, domain.KindUnknownKind:
		return exitInput
	default:
		return exitError
	}
}

// newRootCmd builds the command tree. The returned cleanup closes the log
// file opened by the persistent pre-run, if any.
func newRootCmd() (*cobra.Command, func() error) {
	flags := &globalFlags{}
	var closeLog func() error

	cmd := &cobra.Command{
		Use:          "solidlab",
		Short:        "A book library and a regional vehicle factory",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			root, found, debug, err := resolveLogging(flags, nil)
			if err != nil {
				return err
			}
			if !found && !debug {
				return nil
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			closeLog = cleanup
			return nil
		},
	}
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .solidlab/logs/solidlab.log")
	cmd.PersistentFlags().StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVar(&flags.store, "store", "", "Library backend: memory|yaml|json|sqlite|postgres (overrides solidlab.yaml)")
	cmd.PersistentFlags().StringVar(&flags.path, "path", "", "Library file for yaml/json/sqlite backends (overrides solidlab.yaml)")

	cmd.AddCommand(
		libraryCmd(flags),
		vehiclesCmd(flags),
		initCmd(flags),
		tuiCmd(flags),
		versionCmd(),
	)

	cleanup := func() error {
		if closeLog == nil {
			return nil
		}
		return closeLog()
	}
	return cmd, cleanup
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
