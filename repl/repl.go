// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"circuitssa/grammar"
	"circuitssa/internal/ir"
	"circuitssa/internal/semantic"
)

const PROMPT = ">> "

// Start runs an interactive loop over in: each line is appended to a growing
// .cssa buffer, rebuilt, and decomposed, so a user can watch a constrain
// statement's rewrite appear the moment they type it.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var source strings.Builder

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		candidate := source.String() + line + "\n"

		parsed, err := grammar.ParseString("repl", candidate)
		if err != nil {
			fmt.Fprintf(out, "parse error: %s\n", err)
			continue
		}

		diags := semantic.Check(parsed)
		if semantic.HasErrors(diags) {
			for _, d := range diags {
				fmt.Fprintf(out, "%s: %s\n", d.Code, d.Message)
			}
			continue
		}

		program, err := ir.NewBuilder().Build(parsed)
		if err != nil {
			fmt.Fprintf(out, "build error: %s\n", err)
			continue
		}

		source.WriteString(line + "\n")

		if ir.NewPipeline().Run(program) {
			fmt.Fprint(out, ir.NewPrinter(program.Graph).Print(program))
		} else {
			fmt.Fprintln(out, "(no decomposition opportunity)")
		}
	}
}
