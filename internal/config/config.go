package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// MergeSettings holds the segment-merging thresholds.
type MergeSettings struct {
	// MaxTextLen is the exclusive rune-length limit for a merged cue.
	MaxTextLen int `toml:"max_text_len"`
	// MaxGap is the exclusive silence gap in seconds before a word that
	// still allows it to join the open cue.
	MaxGap float64 `toml:"max_gap"`
}

// OutputSettings controls where and which artifacts are written.
type OutputSettings struct {
	// Dir overrides the output directory; empty writes next to the input.
	Dir string `toml:"dir"`
	// Transcript controls whether the phonetic .txt artifact is written
	// alongside the .srt file.
	Transcript bool `toml:"transcript"`
}

// WorkerSettings controls batch processing.
type WorkerSettings struct {
	MaxConcurrent int `toml:"max_concurrent"`
}

// Config holds the full application configuration.
type Config struct {
	Merge  MergeSettings  `toml:"merge"`
	Output OutputSettings `toml:"output"`
	Worker WorkerSettings `toml:"worker"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Merge: MergeSettings{
			MaxTextLen: 80,
			MaxGap:     2.0,
		},
		Output: OutputSettings{
			Transcript: true,
		},
		Worker: WorkerSettings{
			MaxConcurrent: 4,
		},
	}
}

// Load reads a TOML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
