package markov

import "math/rand/v2"

// Distribution maps a context key to a weighted set of target keys.
// After normalization, the weights of every context with a nonzero
// total sum to 1; a context whose weights are all zero denotes an
// eliminated state. Those two shapes are distinct from an absent
// context key, and the constrained training phases depend on the
// distinction.
type Distribution map[string]map[string]float64

// Clone returns a deep copy sharing no inner maps with the receiver.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for ctx, targets := range d {
		inner := make(map[string]float64, len(targets))
		for target, w := range targets {
			inner[target] = w
		}
		out[ctx] = inner
	}
	return out
}

// add increases the weight of target under ctx, creating entries as
// needed.
func (d Distribution) add(ctx, target string, w float64) {
	inner, ok := d[ctx]
	if !ok {
		inner = make(map[string]float64)
		d[ctx] = inner
	}
	inner[target] += w
}

// normalize divides every context's weights by their total, turning
// counts into probabilities. Contexts with a zero total are left
// untouched.
func (d Distribution) normalize() {
	for _, targets := range d {
		var sum float64
		for _, w := range targets {
			sum += w
		}
		if sum == 0 {
			continue
		}
		for target := range targets {
			targets[target] /= sum
		}
	}
}

// zeroSumContexts returns the set of context keys whose weights sum to
// exactly zero.
func (d Distribution) zeroSumContexts() map[string]struct{} {
	dead := make(map[string]struct{})
	for ctx, targets := range d {
		var sum float64
		for _, w := range targets {
			sum += w
		}
		if sum == 0 {
			dead[ctx] = struct{}{}
		}
	}
	return dead
}

// draw samples a target key from the weights under ctx, accumulating
// them in map enumeration order until the running sum exceeds a
// uniform draw from rng. The runtime randomizes map enumeration order,
// so callers needing reproducible draws must fix an ordering
// themselves (for example by sorting keys into an auxiliary structure)
// rather than relying on it; for a normalized distribution the drawn
// key is identically distributed either way. The second return value
// is false when ctx is absent. When the weights under ctx cannot cover
// the uniform draw (an eliminated, all-zero state) the drawn key is
// empty.
func (d Distribution) draw(rng *rand.Rand, ctx string) (string, bool) {
	targets, ok := d[ctx]
	if !ok {
		return "", false
	}
	u := rng.Float64()
	var sum float64
	for target, w := range targets {
		sum += w
		if sum > u {
			return target, true
		}
	}
	return "", true
}

// lookup returns the weight of target under ctx, or a LookupError
// naming the absent key.
func (d Distribution) lookup(table string, position int, ctx, target string) (float64, error) {
	targets, ok := d[ctx]
	if !ok {
		return 0, &LookupError{Table: table, Position: position, Context: ctx, Target: target}
	}
	w, ok := targets[target]
	if !ok {
		return 0, &LookupError{Table: table, Position: position, Context: ctx, Target: target}
	}
	return w, nil
}
