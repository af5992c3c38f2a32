package chengyu

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// IdiomLength is the number of characters (and syllables) of an idiom.
const IdiomLength = 4

// IdiomRecord is an idiom together with its decomposed pronunciation.
type IdiomRecord struct {
	Idiom     string
	Syllables []Syllable
}

// clone returns a copy not sharing syllables with rec.
func (rec IdiomRecord) clone() IdiomRecord {
	return IdiomRecord{Idiom: rec.Idiom, Syllables: slices.Clone(rec.Syllables)}
}

// RawRecord is an idiom with its pronunciation as found in a dataset,
// e.g. { "一心一意", "yī xīn yī yì" }.
type RawRecord struct {
	Idiom  string
	Pinyin string
}

// RecordReader yields raw corpus records one-by-one.
// It should return io.EOF when the stream is exhausted.
// Missing fields are returned as empty strings.
type RecordReader interface {
	Next() (idiom string, pinyin string, err error)
}

// LoadReport tells which raw records made it into a corpus.
type LoadReport struct {
	Accepted int
	Rejected []*LoadError
}

// Total is the number of raw records read.
func (r *LoadReport) Total() int {
	if r == nil {
		return 0
	}
	return r.Accepted + len(r.Rejected)
}

// Corpus is an immutable, ordered collection of idiom records.
// It is safe for concurrent searches.
type Corpus struct {
	records    []IdiomRecord
	index      *positionIndex
	Identifier string // Identifies the corpus
}

// NewCorpus wraps records which have been built elsewhere. Records are not
// validated; Search skips records it cannot evaluate.
func NewCorpus(name string, records []IdiomRecord) *Corpus {
	rr := make([]IdiomRecord, len(records))
	for i, rec := range records {
		rr[i] = rec.clone()
	}
	return newCorpus(name, rr)
}

func newCorpus(name string, records []IdiomRecord) *Corpus {
	return &Corpus{
		records:    records,
		index:      newPositionIndex(records),
		Identifier: fmt.Sprintf("corpus: %s", name),
	}
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Record returns a copy of record number i.
func (c *Corpus) Record(i int) IdiomRecord {
	return c.records[i].clone()
}

// Idioms returns all idioms in corpus order.
func (c *Corpus) Idioms() []string {
	out := make([]string, c.Len())
	for i := range out {
		out[i] = c.records[i].Idiom
	}
	return out
}

// LoadCorpus builds a corpus from a streaming, format-agnostic source.
//
// Records with a missing idiom or pronunciation, with an idiom not four
// characters long, or with a pronunciation not splitting into four syllables
// are left out and listed in the report. Loading is aborted only if the
// reader fails.
func LoadCorpus(name string, reader RecordReader) (*Corpus, *LoadReport, error) {
	records := make([]IdiomRecord, 0, 1024)
	report := &LoadReport{}
	for n := 0; ; n++ {
		idiom, pinyin, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("reading %s: %w", name, err)
		}
		rec, lerr := buildRecord(n, idiom, pinyin)
		if lerr != nil {
			tracer().Errorf("%s: skipping %v", name, lerr)
			report.Rejected = append(report.Rejected, lerr)
			continue
		}
		records = append(records, rec)
	}
	report.Accepted = len(records)
	c := newCorpus(name, records)
	tracer().Infof("corpus %s loaded: %d records, %d rejected, %d indexed characters",
		name, report.Accepted, len(report.Rejected), c.index.Size())
	return c, report, nil
}

// buildRecord validates one raw record and decomposes its pronunciation.
func buildRecord(n int, idiom, pinyin string) (IdiomRecord, *LoadError) {
	idiom = strings.TrimSpace(idiom)
	switch {
	case idiom == "":
		return IdiomRecord{}, &LoadError{Record: n, Err: ErrMissingIdiom}
	case strings.TrimSpace(pinyin) == "":
		return IdiomRecord{}, &LoadError{Record: n, Idiom: idiom, Err: ErrMissingPinyin}
	case utf8.RuneCountInString(idiom) != IdiomLength:
		return IdiomRecord{}, &LoadError{Record: n, Idiom: idiom, Err: ErrIdiomLength}
	}
	syllables := ParsePinyin(pinyin)
	if len(syllables) != IdiomLength {
		return IdiomRecord{}, &LoadError{Record: n, Idiom: idiom,
			Err: fmt.Errorf("%w: %q has %d", ErrSyllableCount, pinyin, len(syllables))}
	}
	return IdiomRecord{Idiom: idiom, Syllables: syllables}, nil
}

// Concat joins corpora in argument order into a new corpus.
func Concat(name string, corpora ...*Corpus) *Corpus {
	n := 0
	for _, c := range corpora {
		n += c.Len()
	}
	records := make([]IdiomRecord, 0, n)
	for _, c := range corpora {
		if c != nil {
			records = append(records, c.records...)
		}
	}
	return newCorpus(name, records)
}

// --- In-memory records -----------------------------------------------------

type recordList struct {
	records []RawRecord
	index   int
}

// NewRecordList returns a RecordReader over in-memory records.
func NewRecordList(records []RawRecord) RecordReader {
	return &recordList{records: records}
}

func (r *recordList) Next() (string, string, error) {
	if r.index >= len(r.records) {
		return "", "", io.EOF
	}
	rec := r.records[r.index]
	r.index++
	return rec.Idiom, rec.Pinyin, nil
}
