package gen

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"staleboards/sink"
)

// progressInterval is how often a running generation logs its counters.
const progressInterval = 10 * time.Second

// Run executes one full generation run: every combination of cfg.Pairs piece
// types is searched on a worker pool, and each surviving board's FEN record
// is streamed through a bounded channel to the sink. The sink is written
// only by the single consumer goroutine. Run returns once all searches have
// finished and the channel has been drained.
func Run(cfg Config, out sink.Sink, logger *zap.Logger) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stats := &Stats{}
	combos := Combinations(cfg.Pairs)
	logger.Info("starting generation",
		zap.Int("pairs", cfg.Pairs),
		zap.Int("combinations", len(combos)),
		zap.Int("workers", cfg.Workers),
		zap.Int("channel_capacity", cfg.ChannelCapacity))

	records := make(chan string, cfg.ChannelCapacity)

	// Single consumer owns the sink. After a write error it keeps draining
	// so producers can never block on a dead consumer; the first error is
	// reported once the channel closes.
	writeDone := make(chan error, 1)
	go func() {
		var firstErr error
		for fen := range records {
			if firstErr != nil {
				continue
			}
			if err := out.Write(fen); err != nil {
				firstErr = err
				logger.Error("sink write failed, discarding remaining records", zap.Error(err))
			}
		}
		writeDone <- firstErr
	}()

	stopProgress := make(chan struct{})
	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				logger.Info("generation progress", stats.Fields()...)
			case <-stopProgress:
				return
			}
		}
	}()

	pool := new(errgroup.Group)
	pool.SetLimit(cfg.Workers)
	for _, combo := range combos {
		combo := combo
		pool.Go(func() error {
			ProcessCombination(combo, stats, func(fen string) { records <- fen })
			return nil
		})
	}

	// All producers must have joined before the channel closes; only then is
	// a send-free close guaranteed.
	_ = pool.Wait()
	close(records)
	close(stopProgress)
	err := <-writeDone

	logger.Info("generation finished", stats.Fields()...)
	return stats, err
}
