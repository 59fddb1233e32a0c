package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidlab/internal/infra/console"
	"github.com/aalvaropc/solidlab/internal/infra/logger"
	"github.com/aalvaropc/solidlab/internal/ui/tui"
	"github.com/aalvaropc/solidlab/internal/usecase"
)

func tuiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the library and vehicle factories in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.For("tui")
			ws, err := loadWorkspace(cmd.Context(), flags, log)
			if err != nil {
				return err
			}
			defer func() { _ = ws.Close() }()

			us, err := ws.regions.Lookup("us")
			if err != nil {
				return err
			}
			eu, err := ws.regions.Lookup("eu")
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Library:       usecase.NewManageLibrary(ws.store, &console.Lines{}, usecase.WithLibraryLogger(log)),
				USFactory:     us,
				EUFactory:     eu,
				WorkspaceRoot: ws.root,
				Backend:       string(ws.cfg.Library.Backend),
				Logger:        log,
				Debug:         flags.debug,
			})
		},
	}
}
