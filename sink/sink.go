// Package sink provides the output destinations for generated FEN records:
// a newline-delimited file, an embedded Badger store for cross-run dedup,
// and a fan-out combinator.
package sink

import (
	"bufio"
	"fmt"
	"os"
)

// Sink consumes FEN records. Implementations are written to by exactly one
// goroutine; they do not need to be safe for concurrent use.
type Sink interface {
	Write(fen string) error
	Close() error
}

// FileSink appends one record per line to a buffered file.
type FileSink struct {
	f *os.File
	w *bufio.Writer
}

// NewFileSink creates (or truncates) the output file at path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return &FileSink{f: f, w: bufio.NewWriter(f)}, nil
}

func (s *FileSink) Write(fen string) error {
	if _, err := s.w.WriteString(fen); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Close flushes buffered records and closes the file. A flush failure is a
// resource failure and must be surfaced to the operator.
func (s *FileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		_ = s.f.Close()
		return fmt.Errorf("flushing output file: %w", err)
	}
	return s.f.Close()
}

// Multi fans every record out to all underlying sinks.
type Multi struct {
	sinks []Sink
}

// NewMulti combines sinks into one. With a single sink it is returned as-is.
func NewMulti(sinks ...Sink) Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &Multi{sinks: sinks}
}

func (m *Multi) Write(fen string) error {
	for _, s := range m.sinks {
		if err := s.Write(fen); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Close() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
