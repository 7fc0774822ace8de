package constraint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	startsWithRe = regexp.MustCompile(`^SW\((.*)\)`)
	rhymesWithRe = regexp.MustCompile(`^RW\((.*)\)`)
	emptyRe      = regexp.MustCompile(`^NC`)
)

// Parse translates a constraint specification into per-position hidden
// and observed constraint lists. The specification holds one line per
// position group:
//
//	OBS:HID   one position; OBS constrains the surface form, HID the
//	          hidden label
//	SPEC*N    N consecutive positions, with SPEC applied to both the
//	          surface form and the hidden label
//
// Blank lines are skipped. An atomic spec is SW(x) for a first-letter
// constraint, RW(word) for a rhyme constraint, NC for no constraint,
// and anything else becomes a case-insensitive exact match. The
// exact-match fallback is silent, so a misspelled SW/RW/NC atom turns
// into a match constraint instead of an error.
func Parse(spec string) (hidden, observed []Constraint, err error) {
	for _, line := range strings.Split(spec, "\n") {
		if line == "" {
			continue
		}
		if atom, count, ok := strings.Cut(line, "*"); ok {
			n, err := strconv.Atoi(count)
			if err != nil {
				return nil, nil, fmt.Errorf("constraint line %q: bad repeat count: %w", line, err)
			}
			c := parseAtom(atom)
			for i := 0; i < n; i++ {
				hidden = append(hidden, c)
				observed = append(observed, c)
			}
			continue
		}
		obs, hid, ok := strings.Cut(line, ":")
		if !ok {
			return nil, nil, fmt.Errorf("constraint line %q: want OBSERVED:HIDDEN", line)
		}
		observed = append(observed, parseAtom(obs))
		hidden = append(hidden, parseAtom(hid))
	}
	return hidden, observed, nil
}

func parseAtom(s string) Constraint {
	if m := startsWithRe.FindStringSubmatch(s); m != nil && m[1] != "" {
		first, _ := utf8.DecodeRuneInString(m[1])
		return StartsWithLetter(first)
	}
	if m := rhymesWithRe.FindStringSubmatch(s); m != nil {
		return RhymesWith(m[1])
	}
	if emptyRe.MatchString(s) {
		return Empty()
	}
	return Matches(s)
}
