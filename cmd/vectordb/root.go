package main

import (
	"fmt"

	"vectordb/config"
	"vectordb/pkg/log"

	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

var (
	cfgFile      string
	outputFormat string

	cfg    *config.Config
	logger log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vectordb",
	Short: "Timed quickstart and benchmark flows against a Qdrant vector database",
	Long: `vectordb runs the Qdrant quickstart (create collection, upsert points, search,
filtered search) and a synthetic benchmark, timing every call with nanosecond precision.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./config, . and /etc/vectordb for vectordb.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", outputTable, "output format: table or json")

	rootCmd.AddCommand(quickstartCmd)
	rootCmd.AddCommand(benchCmd)
}

// initRuntime loads configuration and the logger before any subcommand runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	if outputFormat != outputTable && outputFormat != outputJSON {
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger = log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return nil
}
