// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"stir/internal/blocks"
	"stir/internal/builder"
	"stir/internal/config"
	"stir/internal/errors"
	"stir/internal/recipe"
	"stir/internal/translate"
)

const usage = "Usage: stir <fry|fmt|debug|translate> <file.stir>"

func main() {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	commonlog.Configure(cfg.Verbosity, logPath(cfg))
	color.NoColor = color.NoColor || !cfg.Color

	os.Exit(run(os.Args[1:], cfg, os.Stdout))
}

// run executes one subcommand and returns the process exit code.
func run(args []string, cfg *config.Config, out io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(out, usage)
		return 1
	}

	startTime := time.Now()
	command, path := args[0], args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "failed to read file: %v\n", err)
		return 1
	}

	ctx := context.Background()
	if cfg.LoopTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.LoopTimeout)
		defer cancel()
	}

	errorReporter := errors.NewErrorReporter(path, string(source))

	r, errs := builder.Source(path, string(source), builder.Options{Context: ctx})
	if len(errs) > 0 {
		fmt.Fprint(out, errorReporter.FormatErrors(errs))
		fmt.Fprintln(out, color.RedString("Compilation failed after %s", formatDuration(time.Since(startTime))))
		return 1
	}

	switch command {
	case "fry":
		return fry(ctx, out, r, path, errorReporter, startTime)
	case "fmt":
		fmt.Fprint(out, r.Output())
		return 0
	case "debug":
		dump(out, r)
		return 0
	case "translate":
		return lower(out, r, path, errorReporter)
	default:
		fmt.Fprintln(out, usage)
		return 1
	}
}

func fry(ctx context.Context, out io.Writer, r *recipe.Recipe, path string, reporter *errors.ErrorReporter, startTime time.Time) int {
	fmt.Fprintln(out, r.Output())

	result, err := r.Fry()
	if err != nil {
		fmt.Fprint(out, reporter.FormatError(errors.NoEntry(errors.Position{Filename: path, Line: 1, Column: 1})))
		return 1
	}

	duration := formatDuration(time.Since(startTime))
	if ctx.Err() != nil {
		fmt.Fprintln(out, color.YellowString("Loop timeout reached while frying %s", path))
	}
	if result {
		fmt.Fprintln(out, color.GreenString("Fried %s in %s: true", path, duration))
	} else {
		fmt.Fprintln(out, color.RedString("Fried %s in %s: false", path, duration))
	}
	return 0
}

// dump writes the Debug view of every block, then the labels of the
// critical blocks.
func dump(out io.Writer, r *recipe.Recipe) {
	blocks.SetDebugOutput(out)
	for _, label := range r.Labels() {
		block, _ := r.Get(label)
		block.Debug()
	}

	if critical := r.Critical(); len(critical) > 0 {
		fmt.Fprintln(out, color.YellowString("critical: %s", strings.Join(critical, ", ")))
	}
}

// lower asks every registered block for its native form. No backend is
// linked in, so each block reports a translation failure.
func lower(out io.Writer, r *recipe.Recipe, path string, reporter *errors.ErrorReporter) int {
	var errs []errors.CompilerError
	for _, label := range r.Labels() {
		block, _ := r.Get(label)
		if err := translate.Translate(block); err != nil {
			errs = append(errs, errors.TranslateFailure(label, err, errors.Position{Filename: path}))
		}
	}

	if len(errs) > 0 {
		fmt.Fprint(out, reporter.FormatErrors(errs))
		return 1
	}
	return 0
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func logPath(cfg *config.Config) *string {
	if cfg.LogPath == "" {
		return nil
	}
	return &cfg.LogPath
}
