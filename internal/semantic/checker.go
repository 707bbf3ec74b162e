// Package semantic validates a parsed .cssa program before internal/ir's
// Builder turns it into a DataFlowGraph, so an undefined or duplicated
// reference or an unknown type name surfaces as a positioned diagnostic
// instead of a bare builder error. Operand types are not checked.
package semantic

import (
	"fmt"

	"circuitssa/grammar"
	"circuitssa/internal/errors"
	"circuitssa/internal/ir"
)

// Checker collects diagnostics while walking a grammar.Program in source order.
type Checker struct {
	defined   map[int]string // %N -> declared type name
	definedAt map[int]errors.Position
	order     []int // %N in the order each was defined, for deterministic unused-value reporting
	used      map[int]bool
	diags     []errors.CompilerError
}

// NewChecker returns an empty Checker.
func NewChecker() *Checker {
	return &Checker{
		defined:   make(map[int]string),
		definedAt: make(map[int]errors.Position),
		used:      make(map[int]bool),
	}
}

// Check validates prog and returns every diagnostic found: errors in source
// order, followed by unused-value warnings in definition order.
// An empty (or warning-only) result means the program is safe to build.
func Check(prog *grammar.Program) []errors.CompilerError {
	c := NewChecker()
	for _, line := range prog.Lines {
		switch {
		case line.Def != nil:
			c.checkDefinition(line.Def)
		case line.Constrain != nil:
			c.checkConstrain(line.Constrain)
		}
	}
	c.checkUnused()
	return c.diags
}

func (c *Checker) checkDefinition(def *grammar.Definition) {
	name := fmt.Sprintf("%%%d", def.Result)

	if _, err := ir.ParseType(def.Type); err != nil {
		c.diags = append(c.diags, errors.TypeMismatch("bool, Field, or uN", def.Type, def.Pos))
	}

	_, redefined := c.defined[def.Result]
	if redefined {
		c.diags = append(c.diags, errors.DuplicateDefinition(name, def.Pos))
	}

	switch {
	case def.Rhs.Not != nil:
		c.checkOperandDefined(def.Rhs.Not)
	case def.Rhs.Binary != nil:
		c.checkOperandDefined(def.Rhs.Binary.Lhs)
		c.checkOperandDefined(def.Rhs.Binary.Rhs)
	}

	c.defined[def.Result] = def.Type
	c.definedAt[def.Result] = def.Pos
	if !redefined {
		c.order = append(c.order, def.Result)
	}
}

func (c *Checker) checkConstrain(stmt *grammar.ConstrainStmt) {
	c.checkOperandDefined(stmt.Lhs)
	c.checkOperandDefined(stmt.Rhs)
}

func (c *Checker) checkOperandDefined(o *grammar.Operand) {
	if o.Ref == nil {
		return
	}
	c.used[*o.Ref] = true
	if _, ok := c.defined[*o.Ref]; !ok {
		c.diags = append(c.diags, errors.UndefinedValue(fmt.Sprintf("%%%d", *o.Ref), o.Pos))
	}
}

func (c *Checker) checkUnused() {
	for _, n := range c.order {
		if !c.used[n] {
			c.diags = append(c.diags, errors.UnusedValue(fmt.Sprintf("%%%d", n), c.definedAt[n]))
		}
	}
}

// HasErrors reports whether diags contains anything other than warnings.
func HasErrors(diags []errors.CompilerError) bool {
	for _, d := range diags {
		if d.Level == errors.Error {
			return true
		}
	}
	return false
}
