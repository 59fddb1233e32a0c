package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/infra/console"
	"github.com/aalvaropc/solidlab/internal/infra/logger"
	"github.com/aalvaropc/solidlab/internal/infra/regionfactory"
	"github.com/aalvaropc/solidlab/internal/usecase"
)

func vehiclesCmd(flags *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "vehicles",
		Short: "Build and start vehicles from regional factories",
	}

	c.AddCommand(vehiclesDemoCmd(), vehiclesStartCmd(flags))
	return c
}

func vehiclesDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Start the sample US and EU line-up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := regionfactory.NewRegistry()
			us, err := reg.Lookup("us")
			if err != nil {
				return err
			}
			eu, err := reg.Lookup("eu")
			if err != nil {
				return err
			}
			return usecase.RunVehicleDemo(us, eu, console.NewReporter(cmd.OutOrStdout()))
		},
	}
}

func vehiclesStartCmd(flags *globalFlags) *cobra.Command {
	var region, kind, mk, model string

	c := &cobra.Command{
		Use:   "start",
		Short: "Build one vehicle and start it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(region) == "" {
				_, _, cfg, err := layerConfig(flags, nil)
				if err != nil {
					return err
				}
				region = cfg.Vehicles.Region
			}

			factory, err := regionfactory.NewRegistry().Lookup(region)
			if err != nil {
				return err
			}

			k := domain.ParseVehicleKind(kind)
			logger.For("vehicles").Info("vehicles.start", "region", region, "kind", k, "make", mk, "model", model)
			return usecase.CreateAndStart(factory, k, mk, model, console.NewReporter(cmd.OutOrStdout()))
		},
	}

	c.Flags().StringVarP(&region, "region", "r", "", "Factory region: us|eu (defaults to solidlab.yaml vehicles.region)")
	c.Flags().StringVarP(&kind, "kind", "k", "", "Vehicle kind: car|motorcycle (required)")
	c.Flags().StringVar(&mk, "make", "", "Vehicle make")
	c.Flags().StringVar(&model, "model", "", "Vehicle model")
	_ = c.MarkFlagRequired("kind")
	return c
}
