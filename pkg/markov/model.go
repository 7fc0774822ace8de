package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Model is an order-k hidden Markov model built from a labeled corpus.
// Hidden maps a hidden-label context to the distribution over next
// hidden contexts; Observed maps a hidden context to the distribution
// over surface forms. For order k > 1 every context and target is a
// space-joined k-tuple of labels. A Model is immutable once Train
// returns and may back any number of Constrained models.
type Model struct {
	Order    int
	Hidden   Distribution
	Observed Distribution

	logger *slog.Logger
}

// Train builds an order-k model from a corpus of newline-separated
// training sequences, each a whitespace-separated run of
// "surface:hidden" tokens. Counts are gathered over sliding windows of
// order tokens, with the first window preceded by a context of order
// sentinel labels, then normalized into probabilities. A trailing
// partial window on a line is dropped. Contexts that were never seen
// are absent from the tables, not present with zero weight.
func Train(order int, corpus string) (*Model, error) {
	if order < 1 {
		return nil, fmt.Errorf("order %d: %w", order, ErrOrder)
	}
	m := &Model{
		Order:    order,
		Hidden:   make(Distribution),
		Observed: make(Distribution),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, line := range strings.Split(corpus, "\n") {
		if err := m.processLine(line); err != nil {
			return nil, err
		}
	}
	m.Hidden.normalize()
	m.Observed.normalize()
	return m, nil
}

// SetLogger sets the logger used for sampling diagnostics. By default
// all logs are discarded.
func (m *Model) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

func (m *Model) processLine(line string) error {
	fields := strings.Fields(line)
	prev := startContext(m.Order)
	for i := 0; i+m.Order <= len(fields); i += m.Order {
		surfaces, hiddens, err := splitWindow(fields[i : i+m.Order])
		if err != nil {
			return err
		}
		hidden := strings.Join(hiddens, " ")
		surface := strings.Join(surfaces, " ")
		m.Hidden.add(prev, hidden, 1)
		m.Observed.add(hidden, surface, 1)
		prev = hidden
	}
	return nil
}

// Sample forward-simulates the model from the start context, emitting
// up to length tokens as a space-separated run of "surface:hidden"
// pairs. Simulation stops early when it reaches a context the corpus
// never continued from. Draws come from rng alone, so concurrent
// samplers need one rng each.
func (m *Model) Sample(rng *rand.Rand, length int) string {
	var sb strings.Builder
	curr := startContext(m.Order)
	for i := 0; i < length/m.Order; i++ {
		next, ok := m.Hidden.draw(rng, curr)
		if !ok {
			m.logger.Debug("sampling stopped at dead end",
				slog.String("context", curr),
				slog.Int("step", i),
			)
			return sb.String()
		}
		curr = next
		surface, ok := m.Observed.draw(rng, curr)
		if !ok {
			continue
		}
		writeWindow(&sb, surface, curr)
	}
	return sb.String()
}

// SequenceProbability returns the model's exact probability of
// producing sequence, multiplying the transition and emission
// probability of every window. A context or target the model never
// recorded yields a LookupError rather than an implicit zero.
func (m *Model) SequenceProbability(sequence string) (float64, error) {
	fields := strings.Fields(sequence)
	curr := startContext(m.Order)
	product := 1.0
	for i := 0; i+m.Order <= len(fields); i += m.Order {
		surfaces, hiddens, err := splitWindow(fields[i : i+m.Order])
		if err != nil {
			return 0, err
		}
		hidden := strings.Join(hiddens, " ")
		surface := strings.Join(surfaces, " ")

		p, err := m.Hidden.lookup("hidden", -1, curr, hidden)
		if err != nil {
			return 0, err
		}
		product *= p

		p, err = m.Observed.lookup("observed", -1, hidden, surface)
		if err != nil {
			return 0, err
		}
		product *= p

		curr = hidden
	}
	return product, nil
}
