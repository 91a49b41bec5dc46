package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"staleboards/gen"
	"staleboards/sink"
)

var (
	genConfigPath string
	genPairs      int
	genWorkers    int
	genChannelCap int
	genOutput     string
	genStoreDir   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the mirrored-pair search and write surviving positions",
	RunE:  runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVar(&genConfigPath, "config", "", "YAML config file")
	flags.IntVarP(&genPairs, "pairs", "n", 0, "number of mirrored pairs per board")
	flags.IntVar(&genWorkers, "workers", 0, "concurrent search workers (default: CPU count)")
	flags.IntVar(&genChannelCap, "channel-capacity", 0, "record channel capacity")
	flags.StringVarP(&genOutput, "output", "o", "", "output FEN file")
	flags.StringVar(&genStoreDir, "store", "", "Badger dedup store directory (optional)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := gen.LoadConfig(genConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("pairs") {
		cfg.Pairs = genPairs
	}
	if flags.Changed("workers") {
		cfg.Workers = genWorkers
	}
	if flags.Changed("channel-capacity") {
		cfg.ChannelCapacity = genChannelCap
	}
	if flags.Changed("output") {
		cfg.Output = genOutput
	}
	if flags.Changed("store") {
		cfg.StoreDir = genStoreDir
	}

	fileSink, err := sink.NewFileSink(cfg.Output)
	if err != nil {
		return err
	}
	sinks := []sink.Sink{fileSink}
	var store *sink.Store
	if cfg.StoreDir != "" {
		store, err = sink.OpenStore(cfg.StoreDir)
		if err != nil {
			_ = fileSink.Close()
			return err
		}
		sinks = append(sinks, store)
	}
	out := sink.NewMulti(sinks...)

	stats, runErr := gen.Run(cfg, out, logger)
	closeErr := out.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Info("wrote output",
		zap.String("path", cfg.Output),
		zap.Int64("records", stats.Emitted()))
	if store != nil {
		logger.Info("dedup store updated",
			zap.String("dir", cfg.StoreDir),
			zap.Int64("duplicates", store.Duplicates()))
	}
	return nil
}
