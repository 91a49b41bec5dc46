package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// glog (pulled in through badger) starts a flush daemon at init that
	// never exits; it is not ours to stop.
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/golang/glog.(*loggingT).flushDaemon"))
}

// memSink collects records in memory and can be told to fail.
type memSink struct {
	records []string
	failAll bool
}

func (s *memSink) Write(fen string) error {
	if s.failAll {
		return errors.New("sink is broken")
	}
	s.records = append(s.records, fen)
	return nil
}

func (s *memSink) Close() error { return nil }

func TestRunSinglePair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pairs = 1
	cfg.Workers = 4
	cfg.ChannelCapacity = 2 // tiny on purpose, to exercise backpressure

	out := &memSink{}
	stats, err := Run(cfg, out, zap.NewNop())
	require.NoError(t, err)

	// Of the six single-pair combinations only the king pair emits boards.
	assert.EqualValues(t, 6, stats.Combinations())
	assert.EqualValues(t, 24, stats.Emitted())
	assert.Len(t, out.records, 24)

	// Same totals as a serial run over the same combinations.
	var serial Stats
	for _, combo := range Combinations(cfg.Pairs) {
		ProcessCombination(combo, &serial, func(string) {})
	}
	assert.Equal(t, serial.Emitted(), stats.Emitted())
	assert.Equal(t, serial.BoardsCompleted(), stats.BoardsCompleted())
}

func TestRunRecordsAreUnique(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pairs = 1
	cfg.Workers = 2

	out := &memSink{}
	_, err := Run(cfg, out, zap.NewNop())
	require.NoError(t, err)

	seen := make(map[string]bool, len(out.records))
	for _, rec := range out.records {
		assert.False(t, seen[rec], "duplicate record %s", rec)
		seen[rec] = true
	}
}

func TestRunSinkFailureSurfaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pairs = 1
	cfg.Workers = 2

	out := &memSink{failAll: true}
	_, err := Run(cfg, out, zap.NewNop())
	// The run completes (producers drain) but the write error is reported.
	require.Error(t, err)
}

func TestRunRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pairs = 0
	_, err := Run(cfg, &memSink{}, zap.NewNop())
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Workers = -1
	_, err = Run(cfg, &memSink{}, zap.NewNop())
	require.Error(t, err)
}
