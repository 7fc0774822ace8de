package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/CTAG07/Calliope/pkg/constraint"
)

// Constrained is a positional variant of a base Model whose samples
// are guaranteed to satisfy a constraint at every position. Hidden[i]
// and Observed[i] are independent copies of the base distributions for
// position i; after Train they describe the base distribution
// conditioned on every constraint being satisfied over a sequence of
// exactly Length positions.
type Constrained struct {
	Length   int
	Hidden   []Distribution
	Observed []Distribution

	base         *Model
	hiddenCons   []constraint.Constraint
	observedCons []constraint.Constraint
	logger       *slog.Logger
}

// NewConstrained builds an untrained constrained model over sequences
// of length positions. A nil constraint slice stands for all-Empty
// constraints; a non-nil slice must hold exactly length entries. The
// base model is only read, never modified, and may back several
// constrained models at once.
func NewConstrained(base *Model, length int, hidden, observed []constraint.Constraint) (*Constrained, error) {
	if length <= 1 {
		return nil, fmt.Errorf("sequence length %d: %w", length, ErrSequenceLength)
	}
	if hidden == nil {
		hidden = emptyConstraints(length)
	}
	if observed == nil {
		observed = emptyConstraints(length)
	}
	if len(hidden) != length || len(observed) != length {
		return nil, fmt.Errorf("%d hidden and %d observed constraints for length %d: %w",
			len(hidden), len(observed), length, ErrConstraintLength)
	}
	return &Constrained{
		Length:       length,
		base:         base,
		hiddenCons:   hidden,
		observedCons: observed,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger used for training summaries and sampling
// diagnostics. By default all logs are discarded.
func (c *Constrained) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

func emptyConstraints(length int) []constraint.Constraint {
	cs := make([]constraint.Constraint, length)
	for i := range cs {
		cs[i] = constraint.Empty()
	}
	return cs
}

// Train derives the positional distributions from the base model in
// four phases: duplicate the base matrices for every position, zero
// out every constraint-violating target, prune states that can no
// longer take part in a full-length sequence, and renormalize so the
// surviving paths keep their relative likelihoods under the base
// model. Train mutates the model exactly once; afterwards it is
// read-only and safe for concurrent sampling.
func (c *Constrained) Train() {
	start := time.Now()
	c.duplicate()
	masked := c.mask()
	pruned := c.pruneDeadStates()
	c.renormalize()
	c.logger.Info("constrained model trained",
		slog.Int("length", c.Length),
		slog.Int("order", c.base.Order),
		slog.Int("weights_masked", masked),
		slog.Int("weights_pruned", pruned),
		slog.Duration("elapsed", time.Since(start)),
	)
}

// duplicate deep-copies the base distributions for every sequence
// position, so the later phases never touch state shared with the base
// model or between positions.
func (c *Constrained) duplicate() {
	c.Hidden = make([]Distribution, c.Length)
	c.Observed = make([]Distribution, c.Length)
	for i := 0; i < c.Length; i++ {
		c.Hidden[i] = c.base.Hidden.Clone()
		c.Observed[i] = c.base.Observed.Clone()
	}
}

// mask zeroes, in place, every transition target failing the hidden
// constraint and every surface form failing the observed constraint of
// its position. Keys stay present: the pruning and renormalization
// phases tell eliminated states (zero weight) apart from unknown ones
// (absent key). Returns how many nonzero weights were zeroed.
func (c *Constrained) mask() int {
	masked := 0
	for i, cons := range c.hiddenCons {
		for _, targets := range c.Hidden[i] {
			for target, w := range targets {
				if !cons.SatisfiedBy(target) {
					if w != 0 {
						masked++
					}
					targets[target] = 0
				}
			}
		}
	}
	for i, cons := range c.observedCons {
		for _, surfaces := range c.Observed[i] {
			for surface, w := range surfaces {
				if !cons.SatisfiedBy(surface) {
					if w != 0 {
						masked++
					}
					surfaces[surface] = 0
				}
			}
		}
	}
	return masked
}

// pruneDeadStates enforces arc-consistency over the position chain.
// Dependencies only flow from a position to its predecessor, so one
// backward sweep per rule reaches the fixed point without iteration.
// Returns how many nonzero transition weights were zeroed.
func (c *Constrained) pruneDeadStates() int {
	pruned := 0

	// A hidden state with no legal emission left cannot be transitioned
	// into at that position.
	for i := c.Length - 1; i >= 0; i-- {
		dead := c.Observed[i].zeroSumContexts()
		for _, targets := range c.Hidden[i] {
			for target, w := range targets {
				if _, ok := dead[target]; ok {
					if w != 0 {
						pruned++
					}
					targets[target] = 0
				}
			}
		}
	}

	// A hidden state whose outgoing transitions at position i sum to
	// zero, or that has no transition entry there at all, is a dead end
	// for position i-1. The two cases are distinct and both matter: a
	// masked-out state keeps its key with zero weight, while a state
	// the corpus never continued from has no key.
	for i := c.Length - 1; i >= 1; i-- {
		dead := c.Hidden[i].zeroSumContexts()
		for _, targets := range c.Hidden[i-1] {
			for target, w := range targets {
				_, isDead := dead[target]
				_, exists := c.Hidden[i][target]
				if isDead || !exists {
					if w != 0 {
						pruned++
					}
					targets[target] = 0
				}
			}
		}
	}
	return pruned
}

// renormalize restores a valid probability measure while preserving
// the relative mass of surviving paths, which is exactly Bayesian
// conditioning on the constraint-satisfaction event. It runs a single
// backward dynamic program: beta is a context's total emission weight,
// alpha its total downstream mass. Emissions divide by beta,
// transitions reweight by beta and the next position's alpha and
// divide by their own alpha. Eliminated contexts (zero beta or alpha)
// are left as they are.
func (c *Constrained) renormalize() {
	alphas := make([]map[string]float64, c.Length)
	for i := c.Length - 1; i >= 0; i-- {
		betas := make(map[string]float64, len(c.Observed[i]))
		for ctx, surfaces := range c.Observed[i] {
			var beta float64
			for _, w := range surfaces {
				beta += w
			}
			betas[ctx] = beta
			if beta == 0 {
				continue
			}
			for surface := range surfaces {
				surfaces[surface] /= beta
			}
		}

		alphas[i] = make(map[string]float64, len(c.Hidden[i]))
		for ctx, targets := range c.Hidden[i] {
			var alpha float64
			for target, w := range targets {
				alpha += betas[target] * alphaNext(alphas, i, c.Length, target) * w
			}
			alphas[i][ctx] = alpha
			if alpha == 0 {
				continue
			}
			for target, w := range targets {
				targets[target] = betas[target] * alphaNext(alphas, i, c.Length, target) * w / alpha
			}
		}
	}
}

// alphaNext is the downstream mass factor for a transition target: 1
// past the final position, 0 for targets the next position never
// recorded.
func alphaNext(alphas []map[string]float64, i, length int, target string) float64 {
	if i == length-1 {
		return 1
	}
	return alphas[i+1][target]
}

// SampleSequence forward-simulates one constrained sequence, drawing a
// hidden state and then a surface form at every position, and returns
// it as a space-separated run of "surface:hidden" tokens. After a
// successful Train the simulation can only die at the boundary case of
// a fully eliminated start state; whatever was built so far is
// returned. Draws come from rng alone, so concurrent samplers need one
// rng each.
func (c *Constrained) SampleSequence(rng *rand.Rand) string {
	var sb strings.Builder
	curr := startContext(c.base.Order)
	for i := 0; i < c.Length; i++ {
		next, ok := c.Hidden[i].draw(rng, curr)
		if !ok {
			c.logger.Debug("sampling stopped at dead end",
				slog.Int("position", i),
				slog.String("context", curr),
			)
			return sb.String()
		}
		curr = next
		surface, ok := c.Observed[i].draw(rng, curr)
		if !ok {
			continue
		}
		writeWindow(&sb, surface, curr)
	}
	return sb.String()
}

// SequenceProbability returns the trained model's probability of
// producing sequence, multiplying the position-indexed transition and
// emission probabilities window by window. Queries touching a pruned
// or never-recorded key yield a LookupError rather than an implicit
// zero.
func (c *Constrained) SequenceProbability(sequence string) (float64, error) {
	fields := strings.Fields(sequence)
	curr := startContext(c.base.Order)
	product := 1.0
	pos := 0
	for i := 0; i+c.base.Order <= len(fields); i += c.base.Order {
		if pos >= c.Length {
			return 0, fmt.Errorf("sequence has more than %d positions: %w", c.Length, ErrSequenceLength)
		}
		surfaces, hiddens, err := splitWindow(fields[i : i+c.base.Order])
		if err != nil {
			return 0, err
		}
		hidden := strings.Join(hiddens, " ")
		surface := strings.Join(surfaces, " ")

		p, err := c.Hidden[pos].lookup("hidden", pos, curr, hidden)
		if err != nil {
			return 0, err
		}
		product *= p

		p, err = c.Observed[pos].lookup("observed", pos, hidden, surface)
		if err != nil {
			return 0, err
		}
		product *= p

		curr = hidden
		pos++
	}
	return product, nil
}
