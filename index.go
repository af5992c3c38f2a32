package chengyu

import (
	"slices"
	"unicode/utf8"
)

// positionIndex keeps, for every idiom position, the record numbers of all
// idioms carrying a given character at that position. Record numbers are
// ascending, i.e. in corpus order.
type positionIndex struct {
	postings [IdiomLength]map[rune][]int32
}

func newPositionIndex(records []IdiomRecord) *positionIndex {
	ix := &positionIndex{}
	for i := range ix.postings {
		ix.postings[i] = make(map[rune][]int32)
	}
	for n, rec := range records {
		if utf8.RuneCountInString(rec.Idiom) != IdiomLength {
			continue // cannot match any character constraint
		}
		pos := 0
		for _, r := range rec.Idiom {
			ix.postings[pos][r] = append(ix.postings[pos][r], int32(n))
			pos++
		}
	}
	return ix
}

// Size is the number of distinct (position, character) keys.
func (ix *positionIndex) Size() int {
	size := 0
	for _, m := range ix.postings {
		size += len(m)
	}
	return size
}

// candidates returns the record numbers which may satisfy the character
// constraints of q, in corpus order. ok is false if q has no character
// constraint, in which case every record is a candidate.
func (ix *positionIndex) candidates(q *Query) (cand []int32, ok bool) {
	for pos, chars := range q.Chars {
		if chars == "" {
			continue
		}
		list := ix.lookup(pos, chars)
		if !ok || len(list) < len(cand) {
			cand, ok = list, true
		}
		if len(cand) == 0 {
			break
		}
	}
	return cand, ok
}

// lookup returns the union of the posting lists of all characters in chars
// at position pos.
func (ix *positionIndex) lookup(pos int, chars string) []int32 {
	var list []int32
	n := 0
	seen := make(map[rune]bool, len(chars))
	for _, r := range chars {
		if seen[r] {
			continue
		}
		seen[r] = true
		if p := ix.postings[pos][r]; len(p) > 0 {
			list = append(list, p...)
			n++
		}
	}
	if n > 1 {
		slices.Sort(list) // posting lists of different characters are disjoint
	}
	return list
}
