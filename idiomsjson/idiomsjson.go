/*
Package idiomsjson reads idiom datasets in JSON format.

A dataset is an array of objects with string fields "idiom" and "pinyin":

	[
	  { "idiom": "一心一意", "pinyin": "yī xīn yī yì", "explanation": "…" },
	  { "idiom": "三心二意", "pinyin": "sān xīn èr yì" }
	]

Additional fields are ignored. Elements which are not objects of this shape
are passed on with empty fields, so that the loader can report them.
*/
package idiomsjson

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/chengyu"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chengyu.json'
func tracer() tracing.Trace {
	return tracing.Select("chengyu.json")
}

// Reader streams idiom records from a JSON array.
type Reader struct {
	dec     *json.Decoder
	started bool
	count   int
}

type entry struct {
	Idiom  string `json:"idiom"`
	Pinyin string `json:"pinyin"`
}

// LoadCorpus parses a JSON dataset and returns a ready-to-use corpus.
func LoadCorpus(name string, reader io.Reader) (*chengyu.Corpus, *chengyu.LoadReport, error) {
	return chengyu.LoadCorpus(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(reader)}
}

// Next returns the next record as (idiom, pinyin).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	if !r.started {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return "", "", io.EOF // empty input is an empty dataset
		}
		if err != nil {
			return "", "", err
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			return "", "", fmt.Errorf("idiom dataset must be a JSON array, starts with %v", tok)
		}
		r.started = true
	}
	if !r.dec.More() {
		if _, err := r.dec.Token(); err != nil { // closing ']'
			return "", "", unexpected(err)
		}
		tracer().Debugf("read %d JSON records", r.count)
		return "", "", io.EOF
	}
	var raw json.RawMessage
	if err := r.dec.Decode(&raw); err != nil {
		return "", "", unexpected(err)
	}
	r.count++
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		tracer().Errorf("JSON record %d: %v", r.count-1, err)
		return "", "", nil
	}
	return e.Idiom, e.Pinyin, nil
}

// unexpected turns io.EOF inside of the array into a truncation error.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
