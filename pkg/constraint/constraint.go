package constraint

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies a constraint variant.
type Kind int

const (
	// KindEmpty is the no-op constraint; every candidate satisfies it.
	KindEmpty Kind = iota
	// KindMatches requires a case-insensitive exact match.
	KindMatches
	// KindStartsWithLetter requires a case-insensitive first letter.
	KindStartsWithLetter
	// KindRhymesWith requires the candidate to rhyme with a target word
	// according to the phonetic oracle.
	KindRhymesWith
	// KindAnyOf is satisfied when at least one child is.
	KindAnyOf
	// KindAllOf is satisfied when every child is.
	KindAllOf
)

// Constraint is a predicate over a candidate hidden label or surface
// form. The variant set is closed: SatisfiedBy switches exhaustively
// over Kind, so adding a variant means extending that switch. Values
// are built with the constructor functions below; which of the Target,
// Letter and Children fields is meaningful depends on the Kind.
type Constraint struct {
	Kind     Kind
	Target   string
	Letter   rune
	Children []Constraint
}

// Empty returns the constraint every candidate satisfies.
func Empty() Constraint { return Constraint{Kind: KindEmpty} }

// Matches returns a constraint satisfied only by candidates equal to
// target, compared case-insensitively.
func Matches(target string) Constraint {
	return Constraint{Kind: KindMatches, Target: strings.ToLower(target)}
}

// StartsWithLetter returns a constraint satisfied by candidates whose
// first letter equals letter, compared case-insensitively.
func StartsWithLetter(letter rune) Constraint {
	return Constraint{Kind: KindStartsWithLetter, Letter: unicode.ToLower(letter)}
}

// RhymesWith returns a constraint satisfied by candidates that rhyme
// with target according to the Double Metaphone oracle. The oracle is
// an approximation; see the package documentation of rhymes for its
// known false negatives.
func RhymesWith(target string) Constraint {
	return Constraint{Kind: KindRhymesWith, Target: strings.ToLower(target)}
}

// AnyOf returns a constraint satisfied when at least one child is.
// With no children it is never satisfied.
func AnyOf(children ...Constraint) Constraint {
	return Constraint{Kind: KindAnyOf, Children: children}
}

// AllOf returns a constraint satisfied when every child is. With no
// children it is always satisfied.
func AllOf(children ...Constraint) Constraint {
	return Constraint{Kind: KindAllOf, Children: children}
}

// SatisfiedBy reports whether candidate satisfies the constraint. It
// is pure and total over all strings, including the empty string.
func (c Constraint) SatisfiedBy(candidate string) bool {
	switch c.Kind {
	case KindEmpty:
		return true
	case KindMatches:
		return strings.ToLower(candidate) == c.Target
	case KindStartsWithLetter:
		if candidate == "" {
			return false
		}
		first, _ := utf8.DecodeRuneInString(candidate)
		return unicode.ToLower(first) == c.Letter
	case KindRhymesWith:
		if candidate == "" {
			return false
		}
		return rhymes(c.Target, strings.ToLower(candidate))
	case KindAnyOf:
		for _, child := range c.Children {
			if child.SatisfiedBy(candidate) {
				return true
			}
		}
		return false
	case KindAllOf:
		for _, child := range c.Children {
			if !child.SatisfiedBy(candidate) {
				return false
			}
		}
		return true
	}
	return false
}
