// Package idiomstsv reads idiom datasets in a line-oriented text format.
//
// Every line holds an idiom and its pronunciation, separated by a tab:
//
//	# comment
//	一心一意	yī xīn yī yì
//	三心二意	sān xīn èr yì
//
// Further tab-separated columns are ignored. Blank lines and lines starting
// with '#' are skipped.
package idiomstsv

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/chengyu"
)

// Reader streams idiom records from tab-separated lines.
type Reader struct {
	scanner *bufio.Scanner
}

// LoadCorpus parses tab-separated idiom data and returns a ready-to-use corpus.
func LoadCorpus(name string, reader io.Reader) (*chengyu.Corpus, *chengyu.LoadReport, error) {
	return chengyu.LoadCorpus(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next record as (idiom, pinyin).
// A line without a tab yields an empty pinyin.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idiom, rest, _ := strings.Cut(line, "\t")
		pinyin, _, _ := strings.Cut(rest, "\t")
		return strings.TrimSpace(idiom), strings.TrimSpace(pinyin), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}
