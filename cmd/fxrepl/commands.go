/*
   fixedmath cmd/fxrepl - command table.

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

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	xslices "golang.org/x/exp/slices"

	"github.com/rcornwell/fixedmath/cfixed"
	"github.com/rcornwell/fixedmath/fixed"
	"github.com/rcornwell/fixedmath/quant"
	"github.com/rcornwell/fixedmath/xfloat"
)

// cmd is one REPL command, named the way command/parser's cmdList pairs a
// name with its handler.
type cmd struct {
	Name    string
	Min     int
	Process func(args []string) (bool, error)
}

var cmdList = []cmd{
	{Name: "help", Min: 1, Process: cmdHelp},
	{Name: "quit", Min: 1, Process: cmdQuit},
	{Name: "fixed", Min: 6, Process: cmdFixed},
	{Name: "complex", Min: 6, Process: cmdComplex},
	{Name: "float", Min: 5, Process: cmdFloat},
	{Name: "pown", Min: 5, Process: cmdPown},
}

var modeNames = map[string]quant.Mode{
	"TRN": quant.TRN, "TRN_INF": quant.TRN_INF, "TRN_ZERO": quant.TRN_ZERO,
	"TRN_MAG": quant.TRN_MAG, "TRN_AWAY": quant.TRN_AWAY, "RND": quant.RND,
	"RND_ZERO": quant.RND_ZERO, "RND_INF": quant.RND_INF, "RND_MIN_INF": quant.RND_MIN_INF,
	"RND_CONV": quant.RND_CONV, "RND_CONV_ODD": quant.RND_CONV_ODD, "JAM": quant.JAM,
	"JAM_UNBIASED": quant.JAM_UNBIASED, "STOCH_WEIGHTED": quant.STOCH_WEIGHTED,
	"STOCH_EQUAL": quant.STOCH_EQUAL,
}

func parseMode(name string) (quant.Mode, error) {
	m, ok := modeNames[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("unknown rounding mode %q", name)
	}
	return m, nil
}

// sortedModeNames lists every rounding mode name in alphabetical order, for
// the "help" command.
func sortedModeNames() []string {
	names := make([]string, 0, len(modeNames))
	for n := range modeNames {
		names = append(names, n)
	}
	xslices.Sort(names)
	return names
}

// completeCmd completes a REPL command name against cmdList's names, the
// same prefix-match idiom command/parser.CompleteCmd uses for liner.
func completeCmd(line string) []string {
	names := make([]string, 0, len(cmdList)+1)
	for _, c := range cmdList {
		names = append(names, c.Name)
	}
	names = append(names, "mode")
	xslices.Sort(names)

	var matches []string
	for _, n := range names {
		if strings.HasPrefix(n, line) {
			matches = append(matches, n)
		}
	}
	return matches
}

func cmdHelp(_ []string) (bool, error) {
	fmt.Println("commands:")
	fmt.Println("  fixed   add|sub|mul|quo <intBits> <fracBits> <a> <b>")
	fmt.Println("  complex add|sub|mul|quo|conj|abs <intBits> <fracBits> <re1> <im1> [<re2> <im2>]")
	fmt.Println("  float   add|sub|mul|quo <expBits> <manBits> <a> <b>")
	fmt.Println("  float   sqrt <expBits> <manBits> <a>")
	fmt.Println("  pown    <expBits> <manBits> <a> <n>")
	fmt.Println("  mode    <rounding-mode>   -- scopes the float quantization mode for the rest of the session")
	fmt.Println("  help")
	fmt.Println("  quit")
	fmt.Println("rounding modes:", strings.Join(sortedModeNames(), ", "))
	return false, nil
}

func cmdQuit(_ []string) (bool, error) {
	return true, nil
}

func parseInts(args []string) (int, int, error) {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q: %w", args[0], err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q: %w", args[1], err)
	}
	return a, b, nil
}

func cmdFixed(args []string) (bool, error) {
	op := args[0]
	intBits, fracBits, err := parseInts(args[1:3])
	if err != nil {
		return false, err
	}
	a, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[3], err)
	}
	b, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[4], err)
	}

	av, err := fixed.FromFloat64(intBits, fracBits, a)
	if err != nil {
		return false, err
	}
	bv, err := fixed.FromFloat64(intBits, fracBits, b)
	if err != nil {
		return false, err
	}

	var result fixed.Value
	switch op {
	case "add":
		result = fixed.Add(av, bv)
	case "sub":
		result = fixed.Sub(av, bv)
	case "mul":
		result = fixed.Mul(av, bv)
	case "quo":
		result, err = fixed.Quo(av, bv)
		if err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown fixed operation %q", op)
	}
	fmt.Printf("%s (%.17g)\n", result.String(), result.ToFloat64())
	return false, nil
}

func cmdComplex(args []string) (bool, error) {
	op := args[0]
	intBits, fracBits, err := parseInts(args[1:3])
	if err != nil {
		return false, err
	}
	re1, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[3], err)
	}
	im1, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[4], err)
	}
	a, err := cfixed.FromComplex128(intBits, fracBits, complex(re1, im1))
	if err != nil {
		return false, err
	}

	if op == "conj" {
		fmt.Println(cfixed.Conj(a).String())
		return false, nil
	}
	if op == "abs" {
		fmt.Println(cfixed.Abs(a).String())
		return false, nil
	}

	if len(args) < 7 {
		return false, errors.New("complex add|sub|mul|quo need a second operand")
	}
	re2, err := strconv.ParseFloat(args[5], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[5], err)
	}
	im2, err := strconv.ParseFloat(args[6], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[6], err)
	}
	b, err := cfixed.FromComplex128(intBits, fracBits, complex(re2, im2))
	if err != nil {
		return false, err
	}

	var result cfixed.Value
	switch op {
	case "add":
		result = cfixed.Add(a, b)
	case "sub":
		result = cfixed.Sub(a, b)
	case "mul":
		result = cfixed.Mul(a, b)
	case "quo":
		result, err = cfixed.Quo(a, b)
		if err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown complex operation %q", op)
	}
	fmt.Println(result.String())
	return false, nil
}

func cmdFloat(args []string) (bool, error) {
	op := args[0]
	expBits, manBits, err := parseInts(args[1:3])
	if err != nil {
		return false, err
	}
	bias := xfloat.IEEEBias(expBits)

	a, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[3], err)
	}
	av, err := xfloat.FromFloat64(expBits, manBits, bias, a)
	if err != nil {
		return false, err
	}

	if op == "sqrt" {
		fmt.Println(xfloat.Sqrt(av).String())
		return false, nil
	}

	if len(args) < 5 {
		return false, errors.New("float add|sub|mul|quo need a second operand")
	}
	b, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[4], err)
	}
	bv, err := xfloat.FromFloat64(expBits, manBits, bias, b)
	if err != nil {
		return false, err
	}

	var result xfloat.Value
	switch op {
	case "add":
		result = xfloat.Add(av, bv)
	case "sub":
		result = xfloat.Sub(av, bv)
	case "mul":
		result = xfloat.Mul(av, bv)
	case "quo":
		result = xfloat.Quo(av, bv)
	default:
		return false, fmt.Errorf("unknown float operation %q", op)
	}
	fmt.Println(result.String())
	return false, nil
}

func cmdPown(args []string) (bool, error) {
	expBits, manBits, err := parseInts(args[0:2])
	if err != nil {
		return false, err
	}
	bias := xfloat.IEEEBias(expBits)

	a, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return false, fmt.Errorf("bad operand %q: %w", args[2], err)
	}
	n, err := strconv.Atoi(args[3])
	if err != nil {
		return false, fmt.Errorf("bad exponent %q: %w", args[3], err)
	}
	av, err := xfloat.FromFloat64(expBits, manBits, bias, a)
	if err != nil {
		return false, err
	}
	fmt.Println(xfloat.Pown(av, n).String())
	return false, nil
}
