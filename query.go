package chengyu

import (
	"slices"
	"strings"
)

// Query is a structured idiom search.
//
// Positional fields are indexed by idiom position 0..3. Chars[i] is a set of
// acceptable characters, written as a string ("一二" accepts either). Zero
// values mean "no constraint": an empty string, a tone of 0, an empty slice.
//
// Exclude sets reject an idiom if any position carries an excluded value.
// Include sets require that at least one position carries one of the values.
type Query struct {
	Chars    [IdiomLength]string
	Initials [IdiomLength]string
	Finals   [IdiomLength]string
	Tones    [IdiomLength]Tone

	ExcludeInitials []string
	ExcludeFinals   []string
	ExcludeTones    []Tone

	IncludeInitials []string
	IncludeFinals   []string
	IncludeTones    []Tone
	IncludeChars    []string
}

// IsEmpty is true if the query does not constrain anything.
func (q *Query) IsEmpty() bool {
	for i := range IdiomLength {
		if q.Chars[i] != "" || q.Initials[i] != "" || q.Finals[i] != "" || q.Tones[i] != Neutral {
			return false
		}
	}
	return len(q.ExcludeInitials) == 0 && len(q.ExcludeFinals) == 0 && len(q.ExcludeTones) == 0 &&
		len(q.IncludeInitials) == 0 && len(q.IncludeFinals) == 0 && len(q.IncludeTones) == 0 &&
		len(q.IncludeChars) == 0
}

func (q *Query) String() string {
	var b strings.Builder
	b.WriteString("query[")
	for i := range IdiomLength {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(orAny(q.Chars[i]))
		b.WriteString(" ")
		b.WriteString(orAny(q.Initials[i]))
		b.WriteString("-")
		b.WriteString(orAny(q.Finals[i]))
		b.WriteString("-")
		if q.Tones[i] == Neutral {
			b.WriteString("*")
		} else {
			b.WriteString(q.Tones[i].String())
		}
	}
	b.WriteString("]")
	return b.String()
}

func orAny(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

// Match evaluates one record against q.
// A record with an idiom not four characters long or without exactly four
// syllables results in an *EvaluationError.
func Match(q *Query, rec *IdiomRecord) (bool, error) {
	chars := []rune(rec.Idiom)
	if len(chars) != IdiomLength {
		return false, &EvaluationError{Idiom: rec.Idiom, Err: ErrIdiomLength}
	}
	if len(rec.Syllables) != IdiomLength {
		return false, &EvaluationError{Idiom: rec.Idiom, Err: ErrSyllableCount}
	}
	for i, syl := range rec.Syllables {
		if q.Chars[i] != "" && !strings.ContainsRune(q.Chars[i], chars[i]) {
			return false, nil
		}
		if q.Initials[i] != "" && syl.Initial != q.Initials[i] {
			return false, nil
		}
		if q.Finals[i] != "" && syl.Final != q.Finals[i] {
			return false, nil
		}
		if q.Tones[i] != Neutral && syl.Tone != q.Tones[i] {
			return false, nil
		}
		if slices.Contains(q.ExcludeInitials, syl.Initial) ||
			slices.Contains(q.ExcludeFinals, syl.Final) ||
			slices.Contains(q.ExcludeTones, syl.Tone) {
			return false, nil
		}
	}
	if len(q.IncludeChars) > 0 && !slices.ContainsFunc(q.IncludeChars, func(c string) bool {
		return c != "" && strings.Contains(rec.Idiom, c)
	}) {
		return false, nil
	}
	if len(q.IncludeInitials) > 0 && !slices.ContainsFunc(rec.Syllables, func(s Syllable) bool {
		return slices.Contains(q.IncludeInitials, s.Initial)
	}) {
		return false, nil
	}
	if len(q.IncludeFinals) > 0 && !slices.ContainsFunc(rec.Syllables, func(s Syllable) bool {
		return slices.Contains(q.IncludeFinals, s.Final)
	}) {
		return false, nil
	}
	if len(q.IncludeTones) > 0 && !slices.ContainsFunc(rec.Syllables, func(s Syllable) bool {
		return slices.Contains(q.IncludeTones, s.Tone)
	}) {
		return false, nil
	}
	return true, nil
}
