package chengyu

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Syllable is a decomposed pinyin syllable.
//
// Initial is empty if no standard initial matched; the whole syllable is
// then the final.
type Syllable struct {
	Initial string
	Final   string
	Tone    Tone
}

func (s Syllable) String() string {
	return fmt.Sprintf("%s-%s-%d", s.Initial, s.Final, s.Tone)
}

// ParseSyllable decomposes one raw pinyin syllable.
//
// Input is trimmed, composed to NFC and lower-cased before the tone mark is
// removed. Empty input yields the zero Syllable.
//
// Because of this, ParseSyllable differs from SplitSyllable(DecomposeTone(raw))
// for upper-case or decomposed input: "Ā" is (a, 1) here, whereas
// DecomposeTone does not know the glyph and reports tone 0.
//
// Example:
//
//	"zhōng" => { Initial: "zh", Final: "ong", Tone: 1 }.
func ParseSyllable(raw string) Syllable {
	raw = strings.ToLower(norm.NFC.String(strings.TrimSpace(raw)))
	if raw == "" {
		return Syllable{}
	}
	base, tone := DecomposeTone(raw)
	ini, fin := SplitSyllable(base)
	return Syllable{Initial: ini, Final: fin, Tone: tone}
}

// ParsePinyin splits a pronunciation string at white space and decomposes
// every syllable.
func ParsePinyin(pinyin string) []Syllable {
	fields := strings.Fields(pinyin)
	syllables := make([]Syllable, len(fields))
	for i, f := range fields {
		syllables[i] = ParseSyllable(f)
	}
	return syllables
}
