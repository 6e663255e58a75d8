// SPDX-License-Identifier: Apache-2.0

// Package repl reads STIR text one line at a time and fries it.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"stir/internal/builder"
	"stir/internal/errors"
)

const PROMPT = ">> "

const filename = "<repl>"

// Start runs the loop until in is exhausted. A positive loopTimeout bounds
// the loops of each line.
func Start(in io.Reader, out io.Writer, loopTimeout time.Duration) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		eval(line, out, loopTimeout)
	}
}

func eval(line string, out io.Writer, loopTimeout time.Duration) {
	ctx := context.Background()
	if loopTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, loopTimeout)
		defer cancel()
	}

	reporter := errors.NewErrorReporter(filename, line)

	r, errs := builder.Source(filename, line, builder.Options{Context: ctx})
	if len(errs) > 0 {
		fmt.Fprint(out, reporter.FormatErrors(errs))
		return
	}

	fmt.Fprint(out, r.Output())

	result, err := r.Fry()
	if err != nil {
		fmt.Fprint(out, reporter.FormatError(errors.NoEntry(errors.Position{Filename: filename, Line: 1, Column: 1})))
		return
	}

	if result {
		fmt.Fprintln(out, color.GreenString("=> true"))
	} else {
		fmt.Fprintln(out, color.RedString("=> false"))
	}
}
