package gen

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the run parameters. Zero or missing values fall back to the
// defaults from DefaultConfig.
type Config struct {
	// Pairs is the number of mirrored pairs per board, fixing both the
	// combination length and the search depth.
	Pairs int `yaml:"pairs"`
	// Workers bounds the number of concurrent search instances.
	Workers int `yaml:"workers"`
	// ChannelCapacity bounds the record channel between the searches and
	// the sink, providing backpressure.
	ChannelCapacity int `yaml:"channel_capacity"`
	// Output is the path of the newline-delimited FEN file.
	Output string `yaml:"output"`
	// StoreDir, when set, opens a Badger dedup store at that directory and
	// tees emitted records into it.
	StoreDir string `yaml:"store_dir"`
}

// DefaultConfig returns the built-in run parameters.
func DefaultConfig() Config {
	return Config{
		Pairs:           2,
		Workers:         runtime.NumCPU(),
		ChannelCapacity: 1024,
		Output:          "stale_boards.fen",
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameter values the run cannot honor.
func (c Config) Validate() error {
	if c.Pairs < 1 || c.Pairs > 16 {
		return fmt.Errorf("pairs must be in 1..16, got %d", c.Pairs)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.ChannelCapacity < 1 {
		return fmt.Errorf("channel capacity must be positive, got %d", c.ChannelCapacity)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
