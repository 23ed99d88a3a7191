/*
   fixedmath cmd/fxrepl - interactive fixed/complex/float arithmetic REPL.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

// Command fxrepl is a line-editing console for exercising this module's
// fixed, cfixed and xfloat packages interactively, the same role
// command/reader's ConsoleReader plays for the teacher's CPU: a liner-driven
// prompt over a small command table, with getopt for startup flags and
// logx for structured logging of anything the session does.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	"github.com/rcornwell/fixedmath/fpcontext"
	"github.com/rcornwell/fixedmath/internal/logx"
)

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Mirror debug-level log records to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var sink io.Writer
	if *optLogFile != "" {
		file, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fxrepl: can't create log file:", err)
			os.Exit(1)
		}
		defer file.Close()
		sink = file
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	logger := slog.New(logx.NewHandler(sink, &slog.HandlerOptions{Level: programLevel}, *optDebug))
	slog.SetDefault(logger)

	logger.Info("fxrepl started")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(s string) []string { return completeCmd(s) })

	repl(line)

	logger.Info("fxrepl exiting")
}

// repl reads and dispatches commands until "quit", Ctrl-D or Ctrl-C. A
// "mode" command recurses into a fresh repl call nested inside
// fpcontext.WithFloatQuantMode, so the override is scoped to exactly the
// commands typed for the remainder of the session and is automatically
// restored once that nested call returns -- mirroring the scoped
// save/restore idiom fpcontext itself documents.
func repl(line *liner.State) {
	for {
		input, err := line.Prompt("fx> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("error reading line", "err", err)
			return
		}
		line.AppendHistory(input)

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "mode" {
			if len(fields) != 2 {
				fmt.Println("usage: mode <rounding-mode>")
				continue
			}
			m, err := parseMode(fields[1])
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fpcontext.WithFloatQuantMode(m, func() {
				repl(line)
			})
			return
		}

		quit, err := dispatch(fields[0], fields[1:])
		if err != nil {
			fmt.Println("Error:", err)
			slog.Debug("command failed", "command", fields[0], "err", err)
		}
		if quit {
			return
		}
	}
}

func dispatch(name string, args []string) (bool, error) {
	for _, c := range cmdList {
		if c.Name != name {
			continue
		}
		if len(args)+1 < c.Min {
			return false, fmt.Errorf("%s needs at least %d arguments", name, c.Min-1)
		}
		return c.Process(args)
	}
	return false, fmt.Errorf("unknown command %q (try \"help\")", name)
}
