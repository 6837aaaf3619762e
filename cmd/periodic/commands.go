package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/periodicity/idrange"
	"github.com/katalvlaran/periodicity/internal/config"
	"github.com/katalvlaran/periodicity/internal/logger"
	"github.com/katalvlaran/periodicity/period"
	"github.com/spf13/pflag"
)

// newFlagSet declares the flags shared by every subcommand.
func newFlagSet(name string, stderr io.Writer) (*pflag.FlagSet, *string) {
	d := config.Defaults()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("log-level", d.Log.Level, "log level: debug, info, warn, error")
	fs.String("log-format", d.Log.Format, "log format: json or text")

	return fs, cfgPath
}

// setup parses args into fs, loads the configuration and builds the logger.
// A non-negative code means the caller should return it immediately.
func setup(fs *pflag.FlagSet, cfgPath *string, args []string, stderr io.Writer) (*config.Config, *slog.Logger, int) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, nil, exitOK
		}
		fmt.Fprintf(stderr, "periodic: %v\n%s", err, usage)
		return nil, nil, exitUsage
	}
	cfg, err := config.Load(*cfgPath, fs)
	if err != nil {
		fmt.Fprintf(stderr, "periodic: %v\n", err)
		return nil, nil, exitError
	}
	log, err := logger.Setup(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "periodic: %v\n", err)
		return nil, nil, exitError
	}
	log.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"scan_workers", cfg.Scan.Workers,
		"scan_rule", cfg.Scan.Rule)

	return cfg, log, -1
}

// runCheck prints "word<TAB>periodic<TAB>unit<TAB>repeats" for each word.
// Word and unit are Go-quoted so tabs and control bytes cannot split columns.
// Words come from the positional arguments, or one per line from stdin;
// words starting with '-' must follow a "--" terminator.
func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, cfgPath := newFlagSet("check", stderr)
	shortest := fs.Bool("shortest", false, "report the shortest unit instead of the longest")
	_, log, code := setup(fs, cfgPath, args, stderr)
	if code >= 0 {
		return code
	}

	order := period.FewestRepeats
	if *shortest {
		order = period.MostRepeats
	}

	check := func(word string) error {
		res, err := period.FindString(word, period.WithOrder(order))
		if err != nil {
			return err
		}
		log.Debug("checked", "word", word, "periodic", res.Found, "order", order.String())
		_, err = fmt.Fprintf(stdout, "%q\t%t\t%q\t%d\n", word, res.Found, res.Unit, res.Repeats)
		return err
	}

	if words := fs.Args(); len(words) > 0 {
		for _, w := range words {
			if err := check(w); err != nil {
				log.Error("check failed", "word", w, "error", err)
				return exitError
			}
		}
		return exitOK
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if err := check(sc.Text()); err != nil {
			log.Error("check failed", "error", err)
			return exitError
		}
	}
	if err := sc.Err(); err != nil {
		log.Error("read stdin", "error", err)
		return exitError
	}

	return exitOK
}

// runScan parses a range list from FILE (or stdin for "-" / no argument),
// scans it and prints the match count and sum, plus every ID with --collect.
func runScan(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	d := config.Defaults()
	fs, cfgPath := newFlagSet("scan", stderr)
	fs.String("rule", d.Scan.Rule, "invalid-ID rule: at-least-twice or exactly-twice")
	fs.Int("workers", d.Scan.Workers, "ranges scanned concurrently")
	fs.Bool("collect", d.Scan.Collect, "print every matching ID")
	cfg, log, code := setup(fs, cfgPath, args, stderr)
	if code >= 0 {
		return code
	}

	rule, err := idrange.ParseRule(cfg.Scan.Rule)
	if err != nil {
		log.Error("bad rule", "error", err)
		return exitError
	}

	in := stdin
	if rest := fs.Args(); len(rest) > 0 && rest[0] != "-" {
		f, err := os.Open(rest[0])
		if err != nil {
			log.Error("open input", "path", rest[0], "error", err)
			return exitError
		}
		defer f.Close()
		in = f
	}

	ranges, err := idrange.ParseReader(in)
	if err != nil {
		log.Error("parse ranges", "error", err)
		return exitError
	}

	rep, err := idrange.Scan(ctx, ranges, rule,
		idrange.WithWorkers(cfg.Scan.Workers),
		idrange.WithCollect(cfg.Scan.Collect),
		idrange.WithLogger(log))
	if err != nil {
		log.Error("scan failed", "error", err)
		return exitError
	}
	log.Info("scan complete",
		"ranges", rep.Ranges,
		"checked", rep.Checked,
		"matches", rep.Count,
		"rule", rule.String())

	fmt.Fprintf(stdout, "count\t%d\nsum\t%d\n", rep.Count, rep.Sum)
	for _, id := range rep.IDs {
		fmt.Fprintf(stdout, "id\t%d\n", id)
	}

	return exitOK
}
