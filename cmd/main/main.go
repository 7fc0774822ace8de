package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/CTAG07/Calliope/pkg/constraint"
	"github.com/CTAG07/Calliope/pkg/markov"
	"github.com/natefinch/atomic"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the YAML config file")
	trainingFile := flag.String("file", "", "training corpus path (overrides the config)")
	order := flag.Int("order", 0, "markov chain order (overrides the config)")
	numSequences := flag.Int("sequences", 0, "number of sequences to generate (overrides the config)")
	outputFile := flag.String("out", "", "output file, stdout if unset (overrides the config)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("calliope %s (%s, built %s)\n", Version, Commit, BuildDate)
		return
	}

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *trainingFile != "" {
		config.TrainingFile = *trainingFile
	}
	if *order > 0 {
		config.MarkovOrder = *order
	}
	if *numSequences > 0 {
		config.NumSequences = *numSequences
	}
	if *outputFile != "" {
		config.OutputFile = *outputFile
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(config.LogLevel)}))

	if err := run(config, logger); err != nil {
		logger.Error("Generation run failed", "error", err)
		os.Exit(1)
	}
}

func run(config *Config, logger *slog.Logger) error {
	corpus, err := os.ReadFile(config.TrainingFile)
	if err != nil {
		return fmt.Errorf("failed to read training corpus: %w", err)
	}

	model, err := markov.Train(config.MarkovOrder, string(corpus))
	if err != nil {
		return fmt.Errorf("failed to train model: %w", err)
	}
	model.SetLogger(logger)
	logger.Info("Trained base model", "order", model.Order, "contexts", len(model.Hidden))

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	var out strings.Builder
	if strings.TrimSpace(config.Constraints) == "" {
		logger.Info("No constraints configured, sampling the base model", "length", config.SequenceLength)
		for i := 0; i < config.NumSequences; i++ {
			out.WriteString(model.Sample(rng, config.SequenceLength))
			out.WriteByte('\n')
		}
	} else {
		hidden, observed, err := constraint.Parse(config.Constraints)
		if err != nil {
			return fmt.Errorf("failed to parse constraints: %w", err)
		}
		cm, err := markov.NewConstrained(model, len(hidden), hidden, observed)
		if err != nil {
			return fmt.Errorf("failed to build constrained model: %w", err)
		}
		cm.SetLogger(logger)
		cm.Train()
		for i := 0; i < config.NumSequences; i++ {
			out.WriteString(cm.SampleSequence(rng))
			out.WriteByte('\n')
		}
	}

	if config.OutputFile == "" {
		fmt.Print(out.String())
		return nil
	}
	if err := atomic.WriteFile(config.OutputFile, strings.NewReader(out.String())); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("Wrote sequences", "count", config.NumSequences, "path", config.OutputFile)
	return nil
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
