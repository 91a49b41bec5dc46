package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"staleboards/sink"
)

var statsStoreDir string

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Report statistics for a generated FEN file or dedup store",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsStoreDir, "store", "", "Badger dedup store directory")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && statsStoreDir == "" {
		return fmt.Errorf("nothing to report: pass a FEN file or --store")
	}

	if len(args) == 1 {
		if err := reportFileStats(args[0]); err != nil {
			return err
		}
	}
	if statsStoreDir != "" {
		store, err := sink.OpenStore(statsStoreDir)
		if err != nil {
			return err
		}
		defer store.Close()
		count, err := store.Count()
		if err != nil {
			return err
		}
		logger.Info("store stats",
			zap.String("dir", statsStoreDir),
			zap.Int64("positions", count))
	}
	return nil
}

func reportFileStats(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records := 0
	byPieceCount := make(map[int]int)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rec := strings.TrimSpace(scanner.Text())
		if rec == "" {
			continue
		}
		records++
		byPieceCount[countPieces(rec)]++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	logger.Info("file stats", zap.String("path", path), zap.Int("records", records))
	counts := maps.Keys(byPieceCount)
	sort.Ints(counts)
	for _, n := range counts {
		logger.Info("piece count bucket",
			zap.Int("pieces", n),
			zap.Int("records", byPieceCount[n]))
	}
	return nil
}

// countPieces counts piece symbols in the placement field of a record.
func countPieces(rec string) int {
	placement, _, _ := strings.Cut(rec, " ")
	n := 0
	for _, ch := range placement {
		if unicode.IsLetter(ch) {
			n++
		}
	}
	return n
}
