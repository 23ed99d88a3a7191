/*
   fixedmath cmd/fxrepl - command table tests.

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
	"testing"

	"github.com/rcornwell/fixedmath/quant"
)

func TestParseModeCaseInsensitive(t *testing.T) {
	m, err := parseMode("rnd_conv")
	if err != nil {
		t.Fatalf("parseMode: %v", err)
	}
	if m != quant.RND_CONV {
		t.Fatalf("parseMode(rnd_conv) = %v, want RND_CONV", m)
	}
}

func TestParseModeUnknown(t *testing.T) {
	if _, err := parseMode("not_a_mode"); err == nil {
		t.Fatal("parseMode should reject an unknown name")
	}
}

func TestCompleteCmdPrefixMatch(t *testing.T) {
	matches := completeCmd("f")
	if len(matches) != 2 || matches[0] != "fixed" || matches[1] != "float" {
		t.Fatalf("completeCmd(f) = %v, want [fixed float]", matches)
	}
}

func TestCmdFloatSqrtSingleOperand(t *testing.T) {
	if _, err := cmdFloat([]string{"sqrt", "8", "23", "4.0"}); err != nil {
		t.Fatalf("cmdFloat sqrt: %v", err)
	}
}

func TestCmdFloatMissingSecondOperand(t *testing.T) {
	if _, err := cmdFloat([]string{"add", "8", "23", "4.0"}); err == nil {
		t.Fatal("cmdFloat add with one operand should error")
	}
}
