package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/chengyu"
	"github.com/urfave/cli/v2"
)

// positional query fields, numbered 1–4 on the command line and in the API
var positionalFields = []struct {
	name, usage string
}{
	{"char", "Acceptable characters at position %d"},
	{"initial", "Initial at position %d"},
	{"final", "Final at position %d"},
	{"tone", "Tone (1-4) at position %d"},
}

// global query fields, comma separated lists
var listFields = []struct {
	name, usage string
}{
	{"exclude-initials", "Initials no position may have"},
	{"exclude-finals", "Finals no position may have"},
	{"exclude-tones", "Tones no position may have"},
	{"include-initials", "Initials of which at least one position must have one"},
	{"include-finals", "Finals of which at least one position must have one"},
	{"include-tones", "Tones of which at least one position must have one"},
	{"include-chars", "Characters of which the idiom must contain at least one"},
}

func queryFlags() []cli.Flag {
	var flags []cli.Flag
	for _, f := range positionalFields {
		for pos := 1; pos <= chengyu.IdiomLength; pos++ {
			flags = append(flags, &cli.StringFlag{
				Name:  fmt.Sprintf("%s%d", f.name, pos),
				Usage: fmt.Sprintf(f.usage, pos),
			})
		}
	}
	for _, f := range listFields {
		flags = append(flags, &cli.StringFlag{Name: f.name, Usage: f.usage + " (comma separated)"})
	}
	return append(flags,
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Output as JSON",
		},
		&cli.BoolFlag{
			Name:    "details",
			Aliases: []string{"v"},
			Usage:   "Show the decomposed pronunciation of every match",
		},
	)
}

// buildForm collects query input by field name. Names of list fields use
// sep between words, e.g. "exclude-tones" or "exclude_tones".
func buildForm(get func(name string) string, sep string) *chengyu.QueryForm {
	positional := func(name string) []string {
		values := make([]string, chengyu.IdiomLength)
		for i := range values {
			values[i] = get(fmt.Sprintf("%s%d", name, i+1))
		}
		return values
	}
	list := func(name string) string {
		return get(strings.ReplaceAll(name, "-", sep))
	}
	return &chengyu.QueryForm{
		Chars:           positional("char"),
		Initials:        positional("initial"),
		Finals:          positional("final"),
		Tones:           tones(positional("tone")),
		ExcludeInitials: list("exclude-initials"),
		ExcludeFinals:   list("exclude-finals"),
		ExcludeTones:    chengyu.ToneInput(list("exclude-tones")),
		IncludeInitials: list("include-initials"),
		IncludeFinals:   list("include-finals"),
		IncludeTones:    chengyu.ToneInput(list("include-tones")),
		IncludeChars:    list("include-chars"),
	}
}

func tones(values []string) []chengyu.ToneInput {
	out := make([]chengyu.ToneInput, len(values))
	for i, v := range values {
		out[i] = chengyu.ToneInput(v)
	}
	return out
}

// match is a search result with its pronunciation.
type match struct {
	Idiom     string   `json:"idiom"`
	Syllables []string `json:"syllables,omitempty"`
}

func toMatches(recs []chengyu.IdiomRecord, details bool) []match {
	out := make([]match, len(recs))
	for i, rec := range recs {
		out[i].Idiom = rec.Idiom
		if details {
			out[i].Syllables = make([]string, len(rec.Syllables))
			for j, s := range rec.Syllables {
				out[i].Syllables[j] = s.String()
			}
		}
	}
	return out
}

func searchCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	corpus, err := loadCorpus(c.Context, cfg)
	if err != nil {
		return err
	}
	q := buildForm(c.String, "-").Query()
	tracer().Debugf("searching %s with %v", corpus.Identifier, q)
	recs := chengyu.SearchRecords(q, corpus)
	return writeMatches(c.App.Writer, toMatches(recs, c.Bool("details")), c.Bool("json"))
}

func writeMatches(w io.Writer, matches []match, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(searchResponse{Matches: matches, Count: len(matches)})
	}
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "No matches found.")
		return err
	}
	for _, m := range matches {
		line := m.Idiom
		if len(m.Syllables) > 0 {
			line += "\t" + strings.Join(m.Syllables, " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func decomposeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: chengyu decompose <pinyin>...")
	}
	for _, raw := range strings.Fields(strings.Join(c.Args().Slice(), " ")) {
		s := chengyu.ParseSyllable(raw)
		if _, err := fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%d\n", raw, orDash(s.Initial), orDash(s.Final), s.Tone); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
