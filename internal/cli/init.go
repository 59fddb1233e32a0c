package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/infra/fsworkspace"
	"github.com/aalvaropc/solidlab/internal/usecase"
)

func initCmd(flags *globalFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a solidlab workspace (solidlab.yaml, data/, .gitignore)",
		Long: "Create a solidlab workspace in --workspace or the current directory.\n" +
			"--store picks the library backend written to solidlab.yaml (default yaml).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := strings.TrimSpace(flags.workspace)
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}

			backend := domain.StoreBackend(strings.ToLower(strings.TrimSpace(flags.store)))
			abs, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, backend, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready: %s\n", abs)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing solidlab.yaml")
	return c
}
