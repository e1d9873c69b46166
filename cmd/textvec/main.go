// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/textvec"
	"github.com/urfave/cli/v2"
)

// Artefacts a command can produce.
const (
	artefactVocab  = "vocab"
	artefactCounts = "counts"
	artefactTF     = "tf"
	artefactIDF    = "idf"
	artefactTFIDF  = "tfidf"
	artefactAll    = "all"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "textvec",
		Usage: "Convert a text corpus into count, TF, IDF and TF-IDF matrices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   artefactVocab,
				Usage:  "Print the vocabulary in index order with its digest",
				Action: runCommand(artefactVocab),
				Flags:  corpusFlags(),
			},
			{
				Name:   artefactCounts,
				Usage:  "Print the raw term count matrix",
				Action: runCommand(artefactCounts),
				Flags:  corpusFlags(),
			},
			{
				Name:   artefactTF,
				Usage:  "Print the term frequency matrix",
				Action: runCommand(artefactTF),
				Flags:  corpusFlags(),
			},
			{
				Name:   artefactIDF,
				Usage:  "Print the inverse document frequency vector",
				Action: runCommand(artefactIDF),
				Flags:  corpusFlags(),
			},
			{
				Name:   artefactTFIDF,
				Usage:  "Print the TF-IDF matrix",
				Action: runCommand(artefactTFIDF),
				Flags:  corpusFlags(),
			},
			{
				Name:   artefactAll,
				Usage:  "Print vocabulary, counts, TF, IDF and TF-IDF",
				Action: runCommand(artefactAll),
				Flags:  corpusFlags(),
			},
		},
	}
}

// corpusFlags returns fresh flag instances for one command.
func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Corpus file (\"-\" or empty reads stdin)",
		},
		&cli.StringFlag{
			Name:  "input-format",
			Usage: "Corpus encoding: lines (one document per line) or json (array of strings)",
			Value: InputLines,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (json, yaml, table)",
			Value:   FormatJSON,
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Number of workers for per-row computation",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:  "skip-blank",
			Usage: "Drop empty documents before tokenization",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file; explicit flags take precedence",
		},
	}
}

func runCommand(artefact string) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := resolveConfig(c)
		if err != nil {
			return err
		}

		in, err := openInput(c.String("input"), c.App.Reader)
		if err != nil {
			return err
		}
		defer in.Close()

		corpus, err := readCorpus(in, cfg.InputFormat, cfg.SkipBlank)
		if err != nil {
			return err
		}
		slog.Debug("corpus loaded", "documents", len(corpus), "command", artefact)

		p, err := textvec.NewPipeline(
			textvec.WithPoolSize(cfg.Workers),
			textvec.WithLogger(slog.Default()),
		)
		if err != nil {
			return fmt.Errorf("failed to create pipeline: %w", err)
		}
		defer p.Release()

		r, err := buildReport(p, artefact, corpus)
		if err != nil {
			return fmt.Errorf("%s failed: %w", artefact, err)
		}
		return render(c.App.Writer, cfg.Format, r)
	}
}

// resolveConfig layers defaults, the optional config file and explicit flags.
func resolveConfig(c *cli.Context) (*Config, error) {
	cfg := DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("format") {
		cfg.Format = strings.ToLower(c.String("format"))
	}
	if c.IsSet("input-format") {
		cfg.InputFormat = strings.ToLower(c.String("input-format"))
	}
	if c.IsSet("skip-blank") {
		cfg.SkipBlank = c.Bool("skip-blank")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildReport(p *textvec.Pipeline, artefact string, corpus []string) (*report, error) {
	r := &report{}

	switch artefact {
	case artefactVocab:
		vocab := p.Builder().BuildVocabulary(corpus)
		features := vocab.Terms()
		r.Features = &features
		r.Digest = vocab.Digest()
		return r, nil
	case artefactAll:
		res, err := p.Transform(corpus)
		if err != nil {
			return nil, err
		}
		r.Features = &res.FeatureNames
		r.Digest = res.Digest
		r.Counts = &res.Counts
		r.TF = &res.TF
		r.IDF = &res.IDF
		r.TFIDF = &res.TFIDF
		return r, nil
	}

	counts, err := p.Builder().CountMatrix(corpus)
	if err != nil {
		return nil, err
	}
	features := p.FeatureNames()
	r.Features = &features

	switch artefact {
	case artefactCounts:
		r.Counts = &counts
	case artefactTF:
		tf, err := p.Transformer().TermFrequency(counts)
		if err != nil {
			return nil, err
		}
		r.TF = &tf
	case artefactIDF:
		idf, err := p.Transformer().InverseDocumentFrequency(counts)
		if err != nil {
			return nil, err
		}
		r.IDF = &idf
	case artefactTFIDF:
		tfidf, err := p.Transformer().TFIDF(counts)
		if err != nil {
			return nil, err
		}
		r.TFIDF = &tfidf
	default:
		return nil, fmt.Errorf("unknown command %q", artefact)
	}
	return r, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
