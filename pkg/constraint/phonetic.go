package constraint

import "github.com/antzucaro/matchr"

// rhymes reports whether two lowercased words rhyme, by comparing
// their primary Double Metaphone encodings after the leading code
// character. Phonetic encodings were never meant for rhyme detection,
// so this produces false negatives for some true rhymes: "ted" and
// "red" encode to TT and RT and pass, while "fred" encodes to FRT and
// fails against both. That inaccuracy is a known property of the
// method, not something callers should try to compensate for.
func rhymes(a, b string) bool {
	pa, _ := matchr.DoubleMetaphone(a)
	pb, _ := matchr.DoubleMetaphone(b)
	if pa == "" || pb == "" {
		return false
	}
	return pa[1:] == pb[1:]
}
