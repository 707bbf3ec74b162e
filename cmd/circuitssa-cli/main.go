// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"circuitssa/grammar"
	"circuitssa/internal/errors"
	"circuitssa/internal/ir"
	"circuitssa/internal/semantic"
	"circuitssa/repl"
)

func main() {
	if len(os.Args) < 2 {
		repl.Start(os.Stdin, os.Stdout)
		return
	}

	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %s\n", err)
		os.Exit(1)
	}

	parsed, err := grammar.ParseFile(path)
	if err != nil {
		os.Exit(1)
	}

	diags := semantic.Check(parsed)
	reportDiagnostics(path, string(source), diags)
	if semantic.HasErrors(diags) {
		os.Exit(1)
	}

	program, err := ir.NewBuilder().Build(parsed)
	if err != nil {
		color.Red("build error: %s", err)
		os.Exit(1)
	}

	fmt.Println("-- before --")
	fmt.Print(ir.NewPrinter(program.Graph).Print(program))

	if ir.NewPipeline().Run(program) {
		fmt.Println("-- after --")
		fmt.Print(ir.NewPrinter(program.Graph).Print(program))
	} else {
		fmt.Println("-- no decomposition opportunities found --")
	}

	color.Green("✅ processed %s", path)
}

func reportDiagnostics(path, source string, diags []errors.CompilerError) {
	if len(diags) == 0 {
		return
	}
	reporter := errors.NewErrorReporter(path, source)
	for _, d := range diags {
		fmt.Print(reporter.FormatError(d))
	}
}
