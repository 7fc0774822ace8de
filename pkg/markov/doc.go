/*
Package markov trains hidden Markov models from labeled text corpora
and samples sequences from them, including positional models
conditioned on per-position constraints.

A Model holds order-k transition and emission probabilities learned
from line-separated sequences of "surface:hidden" tokens. A
Constrained model expands a trained Model into independent copies for
every sequence position, zeroes out states that violate that
position's constraints, prunes states that can no longer take part in
any full-length sequence, and renormalizes so that sampling draws from
the base distribution conditioned on every constraint being satisfied.

Both model types are immutable once trained and safe for concurrent
read-only use; each sampling call takes its own random source.
*/
package markov
