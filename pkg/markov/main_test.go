package markov

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/CTAG07/Calliope/pkg/constraint"
)

// testCorpus is the shared POS-tagged fixture: four sentences over the
// NNP/RB/VBZ/NN tag set with overlapping transitions.
const testCorpus = "Ted:NNP now:RB likes:VBZ green:NN\n" +
	"Mary:NNP likes:VBZ red:NN\n" +
	"Mary:NNP now:RB loves:VBZ red:NN\n" +
	"Fred:NNP sees:VBZ Mary:NNP sometimes:RB"

const probEps = 1e-9

func trainTestModel(t *testing.T, order int) *Model {
	t.Helper()
	m, err := Train(order, testCorpus)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	return m
}

// tfObservedConstraints is the fixture constraint set: the first word
// starts with t or f, the last word is exactly "red".
func tfObservedConstraints() []constraint.Constraint {
	return []constraint.Constraint{
		constraint.AnyOf(constraint.StartsWithLetter('t'), constraint.StartsWithLetter('f')),
		constraint.Empty(),
		constraint.Empty(),
		constraint.Matches("red"),
	}
}

func checkProb(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > probEps {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// syntheticCorpus builds the all-pairs corpus used by the benchmarks:
// one line per label, each observing every label once. Fixed-width
// token names keep line lengths comparable across alphabet sizes.
func syntheticCorpus(alphabet int) string {
	var sb strings.Builder
	for i := 0; i < alphabet; i++ {
		for j := 0; j < alphabet; j++ {
			fmt.Fprintf(&sb, "%04d:%04d ", i, j)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
