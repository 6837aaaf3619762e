// Command periodic checks strings for periodicity and scans product-ID
// ranges for IDs made of a repeated digit block.
//
// Usage:
//
//	periodic check [--shortest] [--] [WORD...]   words from args, else stdin lines
//	periodic scan  [--rule R] [--workers N] [--collect] [FILE|-]
//
// Arguments after "--" are never parsed as flags, so "check -- -1-1" checks
// the word "-1-1". check prints word and unit Go-quoted, tab separated.
//
// Common flags: --config FILE, --log-level LEVEL, --log-format json|text.
// Every setting can also come from PERIODIC_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usage = `usage:
  periodic check [--shortest] [--] [WORD...]
  periodic scan  [--rule at-least-twice|exactly-twice] [--workers N] [--collect] [FILE|-]

Use "--" before words that start with '-'.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "check":
		return runCheck(args[1:], stdin, stdout, stderr)
	case "scan":
		return runScan(ctx, args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "periodic: unknown command %q\n%s", args[0], usage)
		return exitUsage
	}
}
