// Command chengyu searches four-character idioms by pronunciation patterns.
//
//	chengyu search --data idioms.json --char1 一 --tone4 4 --include-initials zh,y
//	chengyu decompose "yī xīn yī yì"
//	chengyu serve --data idioms.json --listen :8080
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/chengyu"
	"github.com/npillmayer/chengyu/dataset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/urfave/cli/v2"
)

// tracer writes to trace with key 'chengyu.cmd'
func tracer() tracing.Trace {
	return tracing.Select("chengyu.cmd")
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chengyu: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "chengyu",
		Usage: "Find four-character idioms by characters, initials, finals and tones",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (TOML)",
				Value:   defaultConfigFile,
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Search idioms matching a pattern",
				Flags:   append(dataFlags(), queryFlags()...),
				Action:  searchCommand,
			},
			{
				Name:      "decompose",
				Aliases:   []string{"d"},
				Usage:     "Split pinyin syllables into initial, final and tone",
				ArgsUsage: "<pinyin>...",
				Action:    decomposeCommand,
			},
			{
				Name:  "serve",
				Usage: "Serve the idiom search as a JSON API",
				Flags: append(dataFlags(),
					&cli.StringFlag{
						Name:    "listen",
						Aliases: []string{"l"},
						Usage:   "Listen address",
						Value:   ":8080",
					},
					&cli.StringSliceFlag{
						Name:  "cors-origin",
						Usage: "Allowed CORS origin (repeatable; default: any)",
					},
				),
				Action: serveCommand,
			},
		},
	}
}

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "data",
			Aliases: []string{"f"},
			Usage:   "Corpus file, .json or .tsv (repeatable; overrides config)",
		},
	}
}

// loadCorpus loads all configured corpus files. Searching starts only after
// every file has been loaded.
func loadCorpus(ctx context.Context, cfg *Config) (*chengyu.Corpus, error) {
	corpus, reports, err := dataset.LoadFiles(ctx, cfg.Data...)
	if err != nil {
		return nil, err
	}
	if n := dataset.Rejected(reports); n > 0 {
		tracer().Infof("%d malformed record(s) skipped", n)
		for _, r := range reports {
			for _, lerr := range r.Rejected {
				tracer().Debugf("%s: %v", r.Path, lerr)
			}
		}
	}
	return corpus, nil
}
