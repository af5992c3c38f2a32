// Package dataset loads idiom corpora from files.
//
// The file format is chosen by extension: ".json" files are read with
// package idiomsjson, ".tsv" and ".txt" files with package idiomstsv.
//
// Example usage:
//
//	corpus, reports, err := dataset.LoadFiles(ctx, "idioms.json", "extra.tsv")
//
// Several files are loaded concurrently and concatenated in argument order.
// The corpus is returned only after every file has been loaded.
package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/chengyu"
	"github.com/npillmayer/chengyu/idiomsjson"
	"github.com/npillmayer/chengyu/idiomstsv"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// tracer writes to trace with key 'chengyu.dataset'
func tracer() tracing.Trace {
	return tracing.Select("chengyu.dataset")
}

// Format is a corpus file format.
type Format int

const (
	Unknown Format = iota
	JSON
	TSV
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case TSV:
		return "tsv"
	}
	return "unknown"
}

// FormatOf derives the file format from the extension of path.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".tsv", ".txt":
		return TSV
	}
	return Unknown
}

// NewReader returns a record reader for format f.
func NewReader(f Format, r io.Reader) (chengyu.RecordReader, error) {
	switch f {
	case JSON:
		return idiomsjson.NewReader(r), nil
	case TSV:
		return idiomstsv.NewReader(r), nil
	}
	return nil, fmt.Errorf("unsupported corpus format %v", f)
}

// FileReport is the load report for one corpus file.
type FileReport struct {
	Path string
	*chengyu.LoadReport
}

// LoadFile loads a single corpus file.
func LoadFile(path string) (*chengyu.Corpus, *chengyu.LoadReport, error) {
	format := FormatOf(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	reader, err := NewReader(format, f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return chengyu.LoadCorpus(filepath.Base(path), reader)
}

// LoadFiles loads corpus files concurrently and concatenates them in
// argument order. It fails if any file cannot be read; malformed records
// are only reported.
func LoadFiles(ctx context.Context, paths ...string) (*chengyu.Corpus, []FileReport, error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no corpus files given")
	}
	corpora := make([]*chengyu.Corpus, len(paths))
	reports := make([]FileReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, report, err := LoadFile(path)
			if err != nil {
				return err
			}
			corpora[i] = c
			reports[i] = FileReport{Path: path, LoadReport: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	name := filepath.Base(paths[0])
	if len(paths) > 1 {
		name = fmt.Sprintf("%s+%d", name, len(paths)-1)
	}
	corpus := chengyu.Concat(name, corpora...)
	tracer().Infof("loaded %d idioms from %d file(s)", corpus.Len(), len(paths))
	return corpus, reports, nil
}

// Rejected sums up rejected records over all reports.
func Rejected(reports []FileReport) int {
	n := 0
	for _, r := range reports {
		if r.LoadReport != nil {
			n += len(r.Rejected)
		}
	}
	return n
}
