package markov

import (
	"math/rand/v2"
	"testing"
)

func TestDistributionClone(t *testing.T) {
	d := Distribution{"NNP": {"VBZ": 0.5, "RB": 0.5}}
	clone := d.Clone()
	clone["NNP"]["VBZ"] = 0.0
	if d["NNP"]["VBZ"] != 0.5 {
		t.Error("Clone() shares inner maps with the original")
	}
}

func TestDistributionNormalize(t *testing.T) {
	d := Distribution{
		"NNP":  {"VBZ": 2.0, "RB": 3.0},
		"dead": {"x": 0.0},
	}
	d.normalize()
	checkProb(t, d["NNP"]["VBZ"], 0.4, `normalized ["NNP"]["VBZ"]`)
	checkProb(t, d["NNP"]["RB"], 0.6, `normalized ["NNP"]["RB"]`)
	if d["dead"]["x"] != 0.0 {
		t.Error("normalize() touched an all-zero context")
	}
}

func TestDistributionZeroSumContexts(t *testing.T) {
	d := Distribution{
		"live": {"a": 0.5, "b": 0.5},
		"dead": {"a": 0.0, "b": 0.0},
	}
	dead := d.zeroSumContexts()
	if _, ok := dead["dead"]; !ok {
		t.Error(`zeroSumContexts() missed "dead"`)
	}
	if _, ok := dead["live"]; ok {
		t.Error(`zeroSumContexts() flagged "live"`)
	}
}

func TestDistributionDraw(t *testing.T) {
	d := Distribution{"ctx": {"only": 1.0}}
	rng := rand.New(rand.NewPCG(7, 8))

	got, ok := d.draw(rng, "ctx")
	if !ok || got != "only" {
		t.Errorf("draw() = (%q, %v), want (\"only\", true)", got, ok)
	}

	if _, ok := d.draw(rng, "missing"); ok {
		t.Error("draw() on an absent context reported ok")
	}

	dead := Distribution{"ctx": {"a": 0.0}}
	got, ok = dead.draw(rng, "ctx")
	if !ok || got != "" {
		t.Errorf("draw() on an all-zero context = (%q, %v), want (\"\", true)", got, ok)
	}
}

func TestDistributionLookup(t *testing.T) {
	d := Distribution{"ctx": {"a": 0.25}}
	if _, err := d.lookup("hidden", 2, "ctx", "b"); err == nil {
		t.Fatal("lookup() on an absent target returned nil error")
	}
	w, err := d.lookup("hidden", 2, "ctx", "a")
	if err != nil {
		t.Fatalf("lookup() error = %v", err)
	}
	if w != 0.25 {
		t.Errorf("lookup() = %v, want 0.25", w)
	}
}
