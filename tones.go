package chengyu

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tone is a Mandarin tone number. Tone 0 means that no tone mark was found
// (neutral tone or untoned input).
type Tone int

// Tones as marked in pinyin.
const (
	Neutral Tone = iota
	Flat         // ā
	Rising       // á
	Dipping      // ǎ
	Falling      // à
)

// Valid is true for tones 1–4. Tone 0 is a legal syllable tone, but it is not
// a valid query constraint.
func (t Tone) Valid() bool {
	return t >= Flat && t <= Falling
}

func (t Tone) String() string {
	return strconv.Itoa(int(t))
}

// ParseTone reads a tone constraint from user input.
// Only the integers 1–4 are accepted; for anything else ok is false and the
// caller should treat the field as absent.
func ParseTone(s string) (t Tone, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Neutral, false
	}
	t = Tone(n)
	if !t.Valid() {
		return Neutral, false
	}
	return t, true
}

// toneMark maps one diacritic vowel glyph to its base vowel and tone.
type toneMark struct {
	glyph rune
	base  rune
	tone  Tone
}

// toneMarks is the closed diacritic alphabet. Base vowel ü without a mark is
// not a tone mark; looking it up is a miss.
var toneMarks = [...]toneMark{
	{'ā', 'a', Flat}, {'á', 'a', Rising}, {'ǎ', 'a', Dipping}, {'à', 'a', Falling},
	{'ē', 'e', Flat}, {'é', 'e', Rising}, {'ě', 'e', Dipping}, {'è', 'e', Falling},
	{'ī', 'i', Flat}, {'í', 'i', Rising}, {'ǐ', 'i', Dipping}, {'ì', 'i', Falling},
	{'ō', 'o', Flat}, {'ó', 'o', Rising}, {'ǒ', 'o', Dipping}, {'ò', 'o', Falling},
	{'ū', 'u', Flat}, {'ú', 'u', Rising}, {'ǔ', 'u', Dipping}, {'ù', 'u', Falling},
	{'ǖ', 'ü', Flat}, {'ǘ', 'ü', Rising}, {'ǚ', 'ü', Dipping}, {'ǜ', 'ü', Falling},
}

// baseVowels are the vowels which may carry a tone mark.
var baseVowels = [...]rune{'a', 'e', 'i', 'o', 'u', 'ü'}

var toneMarkIndex = buildToneMarkIndex()

// buildToneMarkIndex checks the tone mark table for totality over the
// supported alphabet: every base vowel has exactly one glyph per tone, and
// every glyph occurs once.
func buildToneMarkIndex() map[rune]toneMark {
	index := make(map[rune]toneMark, len(toneMarks))
	seen := make(map[rune][Falling + 1]bool, len(baseVowels))
	for _, tm := range toneMarks {
		_, dup := index[tm.glyph]
		assert(!dup, fmt.Sprintf("duplicate tone mark %q", tm.glyph))
		assert(tm.tone.Valid(), fmt.Sprintf("tone mark %q has tone %d", tm.glyph, tm.tone))
		assert(tm.glyph != tm.base, fmt.Sprintf("tone mark %q equals its base vowel", tm.glyph))
		index[tm.glyph] = tm
		tones := seen[tm.base]
		assert(!tones[tm.tone], fmt.Sprintf("base vowel %q has two glyphs for tone %d", tm.base, tm.tone))
		tones[tm.tone] = true
		seen[tm.base] = tones
	}
	assert(len(seen) == len(baseVowels), "tone mark table has unexpected base vowels")
	for _, v := range baseVowels {
		tones := seen[v]
		for t := Flat; t <= Falling; t++ {
			assert(tones[t], fmt.Sprintf("base vowel %q misses tone %d", v, t))
		}
	}
	return index
}

// LookupToneMark returns base vowel and tone for a diacritic vowel glyph.
// ok is false for every rune outside of the tone mark alphabet, including
// plain vowels.
func LookupToneMark(glyph rune) (base rune, tone Tone, ok bool) {
	tm, ok := toneMarkIndex[glyph]
	if !ok {
		return glyph, Neutral, false
	}
	return tm.base, tm.tone, true
}

// DecomposeTone removes the tone mark from a pinyin syllable.
//
// The first rune carrying a tone mark is replaced by its base vowel and the
// scan stops; syllables carry at most one tone mark. A syllable without a
// tone mark is returned unchanged with tone 0.
//
// Example:
//
//	"zhōng" => ("zhong", 1).
func DecomposeTone(syllable string) (string, Tone) {
	for i, r := range syllable {
		base, tone, ok := LookupToneMark(r)
		if !ok {
			continue
		}
		var b strings.Builder
		b.Grow(len(syllable))
		b.WriteString(syllable[:i])
		b.WriteRune(base)
		b.WriteString(syllable[i+utf8.RuneLen(r):])
		return b.String(), tone
	}
	return syllable, Neutral
}
