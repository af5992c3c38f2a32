/*
Package chengyu finds four-character idioms (chengyu) by pronunciation
patterns.

Every idiom of a corpus carries its pinyin pronunciation, one syllable per
character. Syllables are decomposed into initial, final and tone:

	"zhōng" => (zh)(ong)(1)

A Query constrains single positions (a set of acceptable characters, an
exact initial, final or tone) and the idiom as a whole (excluded or required
initials, finals, tones and characters). Search returns all idioms of a
corpus satisfying every constraint, in corpus order. There is no ranking and
no fuzzy matching.

Corpus file formats are handled outside of the base package. Use readers
like package idiomsjson to parse concrete formats and feed LoadCorpus.

Decomposition

Tone marks are recognised on the vowels a, e, i, o, u and ü (macron, acute,
caron, grave for tones 1–4). A syllable without a tone mark has tone 0.
Initials are matched greedily against the standard set

	zh ch sh b p m f d t n l g k h j q x z c s r y w

with the multi-letter initials tested first. "y" and "w" count as initials.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package chengyu

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chengyu'
func tracer() tracing.Trace {
	return tracing.Select("chengyu")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
