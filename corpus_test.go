package chengyu

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

type sliceRecordReader struct {
	entries []RawRecord
	index   int
	err     error // returned after entries are exhausted
}

func (r *sliceRecordReader) Next() (string, string, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", "", r.err
		}
		return "", "", io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Idiom, entry.Pinyin, nil
}

var sampleRecords = []RawRecord{
	{Idiom: "一心一意", Pinyin: "yī xīn yī yì"},
	{Idiom: "三心二意", Pinyin: "sān xīn èr yì"},
	{Idiom: "中流砥柱", Pinyin: "zhōng liú dǐ zhù"},
	{Idiom: "画蛇添足", Pinyin: "huà shé tiān zú"},
	{Idiom: "守株待兔", Pinyin: "shǒu zhū dài tù"},
}

func mustLoad(t *testing.T, records []RawRecord) *Corpus {
	t.Helper()
	c, _, err := LoadCorpus("test", NewRecordList(records))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLoadCorpus(t *testing.T) {
	c, report, err := LoadCorpus("sample", &sliceRecordReader{entries: sampleRecords})
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != len(sampleRecords) || report.Accepted != len(sampleRecords) || len(report.Rejected) != 0 {
		t.Fatalf("expected %d records, have %d (report %+v)", len(sampleRecords), c.Len(), report)
	}
	rec := c.Record(2)
	want := []Syllable{{"zh", "ong", 1}, {"l", "iu", 2}, {"d", "i", 3}, {"zh", "u", 4}}
	if rec.Idiom != "中流砥柱" || !reflect.DeepEqual(rec.Syllables, want) {
		t.Fatalf("unexpected record %v", rec)
	}
	if c.Identifier != "corpus: sample" {
		t.Fatalf("identifier is %q", c.Identifier)
	}
}

func TestLoadCorpusRejectsMalformedRecords(t *testing.T) {
	records := append([]RawRecord{}, sampleRecords...)
	records = append(records,
		RawRecord{Idiom: "一心二意", Pinyin: "yī xīn èr"},
		RawRecord{Idiom: "", Pinyin: "yī xīn yī yì"},
		RawRecord{Idiom: "一心一意", Pinyin: "  "},
		RawRecord{Idiom: "一心", Pinyin: "yī xīn yī yì"},
	)
	c, report, err := LoadCorpus("malformed", NewRecordList(records))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != len(sampleRecords) {
		t.Fatalf("expected %d usable records, have %d", len(sampleRecords), c.Len())
	}
	if report.Total() != len(records) || len(report.Rejected) != 4 {
		t.Fatalf("unexpected report %+v", report)
	}
	causes := []error{ErrSyllableCount, ErrMissingIdiom, ErrMissingPinyin, ErrIdiomLength}
	for i, cause := range causes {
		lerr := report.Rejected[i]
		if !errors.Is(lerr, cause) {
			t.Errorf("rejection %d: expected %v, got %v", i, cause, lerr)
		}
		if lerr.Record != len(sampleRecords)+i {
			t.Errorf("rejection %d: record number is %d", i, lerr.Record)
		}
	}
	if got := Search(&Query{}, c); len(got) != len(sampleRecords) {
		t.Fatalf("empty query should find %d idioms, found %d", len(sampleRecords), len(got))
	}
}

func TestLoadCorpusReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, report, err := LoadCorpus("failing", &sliceRecordReader{entries: sampleRecords[:1], err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected reader error, got %v", err)
	}
	if report == nil {
		t.Fatalf("expected partial report")
	}
}

func TestConcat(t *testing.T) {
	a := mustLoad(t, sampleRecords[:2])
	b := mustLoad(t, sampleRecords[2:])
	c := Concat("joined", a, nil, b)
	want := []string{"一心一意", "三心二意", "中流砥柱", "画蛇添足", "守株待兔"}
	if got := c.Idioms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Concat = %v, want %v", got, want)
	}
	q := &Query{Chars: [IdiomLength]string{"守"}}
	if got := Search(q, c); !reflect.DeepEqual(got, []string{"守株待兔"}) {
		t.Fatalf("index of concatenated corpus is broken: %v", got)
	}
}
