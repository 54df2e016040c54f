package main

import (
	"vectordb/internal/quickstart"
	quickstartUsecase "vectordb/internal/quickstart/usecase"

	"github.com/spf13/cobra"
)

var quickstartFlags struct {
	collection string
	distance   string
}

// quickstartCmd represents the quickstart command
var quickstartCmd = &cobra.Command{
	Use:   "quickstart",
	Short: "Run the Qdrant quickstart with per-stage timing",
	Long: `Recreate a 4-dimensional collection, check it is empty and green, upsert six
sample points, then run a top-3 search and a top-3 search filtered on city=London.`,
	RunE: runQuickstart,
}

func init() {
	quickstartCmd.Flags().StringVar(&quickstartFlags.collection, "collection", "", "collection name (overrides config)")
	quickstartCmd.Flags().StringVar(&quickstartFlags.distance, "distance", "", "distance metric: cosine, euclidean, dot or manhattan (overrides config)")
}

func runQuickstart(cmd *cobra.Command, args []string) error {
	ctx, stop := runContext(cmd.Context())
	defer stop()

	a, cleanup, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	input := quickstart.RunInput{
		Collection: cfg.Quickstart.Collection,
		Distance:   cfg.Quickstart.Distance,
	}
	if quickstartFlags.collection != "" {
		input.Collection = quickstartFlags.collection
	}
	if quickstartFlags.distance != "" {
		input.Distance = quickstartFlags.distance
	}

	uc := quickstartUsecase.New(logger, a.points, a.metrics, nil)
	report, runErr := uc.Run(ctx, input)
	a.flushMetrics(ctx)

	if err := renderQuickstart(cmd.OutOrStdout(), outputFormat, report); err != nil {
		return err
	}
	return runErr
}
