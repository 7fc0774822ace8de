package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a single generation run.
type Config struct {
	// TrainingFile is the corpus of newline-separated "surface:hidden"
	// token sequences to train on.
	TrainingFile string `yaml:"training_file"`
	MarkovOrder  int    `yaml:"markov_order"`
	// Constraints is an inline constraint specification, one position
	// per line. When empty, sequences are sampled from the base model
	// at SequenceLength tokens instead.
	Constraints    string `yaml:"constraints"`
	SequenceLength int    `yaml:"sequence_length"`
	NumSequences   int    `yaml:"num_sequences"`
	// OutputFile receives the generated sequences; stdout when empty.
	OutputFile string `yaml:"output_file"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig creates a run configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		TrainingFile:   "./data/corpus.txt",
		MarkovOrder:    1,
		Constraints:    "NC*4",
		SequenceLength: 4,
		NumSequences:   10,
		OutputFile:     "",
		LogLevel:       "info",
	}
}

// LoadConfig reads the configuration from a YAML file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = yaml.Marshal(config)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the run can still proceed with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
