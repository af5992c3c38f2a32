package chengyu

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// initials is the standard set of pinyin initials, in test order.
// Multi-letter initials must precede any single letter they start with.
var initials = [...]string{
	"zh", "ch", "sh", "b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "z", "c", "s", "r", "y", "w",
}

// initialIndex holds all initials in a prefix trie. The meta value of each
// node is the rank of the initial in table order.
type initialIndex struct {
	trie   *trie.Trie
	maxLen int // longest initial, in runes
}

var stdInitials = newInitialIndex(initials[:])

func newInitialIndex(table []string) *initialIndex {
	ix := &initialIndex{trie: trie.New()}
	for rank, ini := range table {
		assert(ini != "", "empty initial in initial table")
		_, dup := ix.trie.Find(ini)
		assert(!dup, fmt.Sprintf("duplicate initial %q", ini))
		// an initial must not be shadowed by a shorter one ranked before it
		for _, earlier := range table[:rank] {
			assert(!strings.HasPrefix(ini, earlier),
				fmt.Sprintf("initial %q is shadowed by %q", ini, earlier))
		}
		ix.trie.Add(ini, rank)
		ix.maxLen = max(ix.maxLen, utf8.RuneCountInString(ini))
	}
	return ix
}

// split returns the first initial in table order which is a prefix of
// syllable, and the remainder.
func (ix *initialIndex) split(syllable string) (string, string) {
	best, bestRank := -1, -1
	n := 0
	for i, r := range syllable {
		if n == ix.maxLen {
			break
		}
		n++
		end := i + utf8.RuneLen(r)
		node, ok := ix.trie.Find(syllable[:end])
		if !ok {
			continue
		}
		rank := node.Meta().(int)
		if bestRank < 0 || rank < bestRank {
			best, bestRank = end, rank
		}
	}
	if best < 0 {
		return "", syllable
	}
	return syllable[:best], syllable[best:]
}

// Initials returns the standard initials in test order.
func Initials() []string {
	out := make([]string, len(initials))
	copy(out, initials[:])
	return out
}

// IsInitial is true if s is one of the standard initials.
func IsInitial(s string) bool {
	_, ok := stdInitials.trie.Find(s)
	return ok
}

// SplitSyllable splits a syllable without tone marks into initial and final.
//
// Initials are tested in table order, i.e. "zh", "ch" and "sh" before the
// single letters. If no initial matches, the whole syllable is the final.
//
// Example:
//
//	"zhong" => ("zh", "ong")
//	"a"     => ("", "a").
func SplitSyllable(base string) (initial, final string) {
	return stdInitials.split(base)
}
