// Package main provides the restyle CLI.
//
// restyle parses source files into comment-bearing trees, runs the
// configured rewrite rules over them, and prints the result back,
// either to stdout, in place with --write, or as a changed/unchanged
// verdict with --check.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"restyle/internal/codec"
	"restyle/internal/config"
	"restyle/rewrite"
)

const version = "0.3.0"

func main() {
	app := &cli.App{
		Name:      "restyle",
		Usage:     "rewrite source trees with configurable style rules",
		Version:   version,
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "rewrite files in place instead of printing to stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "exit non-zero when any file would change, writing nothing",
			},
			&cli.IntFlag{
				Name:  "max-width",
				Usage: "line width for the printer (overrides the config file)",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop at the first failing rule instead of logging it",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "number of files processed in parallel",
				Value:   runtime.NumCPU(),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}

			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "restyle: %s\n", err)
		os.Exit(1)
	}
}

type result struct {
	path    string
	out     string
	changed bool
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("no input files")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	ruleList, err := cfg.RuleList()
	if err != nil {
		return err
	}

	pipeline := rewrite.New(ruleList, rewrite.Config{
		Mode:   cfg.FailureMode(),
		Logger: logrus.StandardLogger(),
	})

	files := c.Args().Slice()
	results := make([]result, len(files))

	var g errgroup.Group

	g.SetLimit(c.Int("jobs"))

	for i, path := range files {
		i, path := i, path

		g.Go(func() error {
			r, err := processFile(path, pipeline, cfg)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	switch {
	case c.Bool("check"):
		return verdict(results)
	case c.Bool("write"):
		return writeBack(results)
	default:
		for _, r := range results {
			fmt.Print(r.out)
		}

		return nil
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if w := c.Int("max-width"); w > 0 {
		cfg.MaxWidth = w
	}

	if c.Bool("fail-fast") {
		cfg.FailFast = true
	}

	return cfg, nil
}

func processFile(path string, pipeline *rewrite.Pipeline, cfg *config.Config) (result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return result{}, err
	}

	src := string(data)

	root, cs, err := codec.Parse(src, path)
	if err != nil {
		var perr *codec.ParseError
		if errors.As(err, &perr) {
			logrus.Debug("\n" + perr.Snippet(src))
		}

		return result{}, err
	}

	root, cs, report, err := pipeline.Run(root, cs, path)
	if err != nil {
		return result{}, err
	}

	// Tolerated failures are already logged by the pipeline; here the
	// report only feeds the debug summary.
	if report.HasErrors() {
		logrus.WithField("file", path).Debugf("%d rule failure(s) tolerated", len(report.Errors))
	}

	out := codec.Print(root, cs, codec.Options{MaxWidth: cfg.MaxWidth})

	return result{path: path, out: out, changed: out != src}, nil
}

func verdict(results []result) error {
	changed := 0

	for _, r := range results {
		if r.changed {
			fmt.Println(r.path)

			changed++
		}
	}

	if changed > 0 {
		return cli.Exit(fmt.Sprintf("%d file(s) would change", changed), 1)
	}

	return nil
}

func writeBack(results []result) error {
	for _, r := range results {
		if !r.changed {
			continue
		}

		if err := os.WriteFile(r.path, []byte(r.out), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.path, err)
		}

		logrus.WithField("file", r.path).Debug("rewritten")
	}

	return nil
}
