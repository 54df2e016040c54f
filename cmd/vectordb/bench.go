package main

import (
	"vectordb/internal/bench"
	benchUsecase "vectordb/internal/bench/usecase"

	"github.com/spf13/cobra"
)

var benchFlags bench.RunInput

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark upsert and search latency with generated points",
	Long: `Generate random points, upsert them in batches and run a series of plain and
payload-filtered searches, timing every call and reporting latency percentiles per stage.`,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchFlags.Collection, "collection", "", "collection name (overrides config)")
	f.Uint64Var(&benchFlags.Dimension, "dimension", 0, "vector dimension (overrides config)")
	f.StringVar(&benchFlags.Distance, "distance", "", "distance metric (overrides config)")
	f.IntVar(&benchFlags.Points, "points", 0, "number of points to generate (overrides config)")
	f.IntVar(&benchFlags.BatchSize, "batch-size", 0, "points per upsert call (overrides config)")
	f.IntVar(&benchFlags.Queries, "queries", 0, "number of searches (overrides config)")
	f.Uint64Var(&benchFlags.Limit, "limit", 0, "results per search (overrides config)")
	f.IntVar(&benchFlags.Groups, "groups", 0, "number of payload groups (overrides config)")
	f.Int64Var(&benchFlags.Seed, "seed", 0, "random seed (overrides config)")
}

// benchInput merges command line flags over the configured defaults.
func benchInput(cmd *cobra.Command) bench.RunInput {
	in := bench.RunInput{
		Collection: cfg.Bench.Collection,
		Dimension:  uint64(cfg.Bench.Dimension),
		Distance:   cfg.Bench.Distance,
		Points:     cfg.Bench.Points,
		BatchSize:  cfg.Bench.BatchSize,
		Queries:    cfg.Bench.Queries,
		Limit:      uint64(cfg.Bench.Limit),
		Groups:     cfg.Bench.Groups,
		Seed:       cfg.Bench.Seed,
	}

	flags := cmd.Flags()
	if flags.Changed("collection") {
		in.Collection = benchFlags.Collection
	}
	if flags.Changed("dimension") {
		in.Dimension = benchFlags.Dimension
	}
	if flags.Changed("distance") {
		in.Distance = benchFlags.Distance
	}
	if flags.Changed("points") {
		in.Points = benchFlags.Points
	}
	if flags.Changed("batch-size") {
		in.BatchSize = benchFlags.BatchSize
	}
	if flags.Changed("queries") {
		in.Queries = benchFlags.Queries
	}
	if flags.Changed("limit") {
		in.Limit = benchFlags.Limit
	}
	if flags.Changed("groups") {
		in.Groups = benchFlags.Groups
	}
	if flags.Changed("seed") {
		in.Seed = benchFlags.Seed
	}
	return in
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx, stop := runContext(cmd.Context())
	defer stop()

	a, cleanup, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	uc := benchUsecase.New(logger, a.points, a.metrics, nil)
	report, runErr := uc.Run(ctx, benchInput(cmd))
	a.flushMetrics(ctx)

	if err := renderBench(cmd.OutOrStdout(), outputFormat, report); err != nil {
		return err
	}
	return runErr
}
