package ir

import "circuitssa/internal/field"

// SolveInverse returns the unique value x such that evaluating op on x and
// known (with known placed on the side indicated by lhsIsKnown) in type typ
// yields result — or false if op has no unique inverse in typ.
//
// Only fully invertible algebraic operations yield a unique solution.
// Non-field multiplication/division are left unsimplified to avoid unsound
// assumptions about integer wraparound or fractional reasoning; Mod, Lt,
// And, Or lose information and can never be reversed.
func SolveInverse(op BinaryOp, result, known field.Element, typ Type, lhsIsKnown bool) (field.Element, bool) {
	switch op {
	case Add:
		return result.Sub(known), true

	case Sub:
		if lhsIsKnown {
			// known - x = result  =>  x = known - result
			return known.Sub(result), true
		}
		// x - known = result  =>  x = result + known
		return result.Add(known), true

	case Mul:
		if typ.IsNativeField() {
			if known.IsZero() {
				// 0 * x = result is only solvable when result == 0, and then
				// every x satisfies it: not a unique inverse.
				return field.Element{}, false
			}
			return result.Div(known), true
		}
		// Integer multiplication cannot be safely inverted without tracking
		// reduction modulo the type's range; only the degenerate x = 1 case
		// is sound.
		if result.Equal(known) {
			return field.One(), true
		}
		return field.Element{}, false

	case Div:
		if !typ.IsNativeField() {
			return field.Element{}, false
		}
		if lhsIsKnown {
			// known / x == result  =>  x == known / result, which requires
			// dividing by result; refuse rather than assume when it's zero.
			if result.IsZero() {
				return field.Element{}, false
			}
			return known.Div(result), true
		}
		// x / known == result  =>  x == known * result. known is already
		// known nonzero (it's the divisor of a defined division), so this
		// holds even when result == 0: x == 0 is the unique solution.
		return known.Mul(result), true

	case Xor:
		return result.Xor(known, typ.BitSize()), true

	case Eq:
		// Equality on a numeric result is handled by the boolean rewrite
		// rules in decompose.go; reaching here means a non-bool value
		// produced by Eq was misrouted into the numeric bucket.
		panic("ir: SolveInverse invoked with Eq — invariant violation")

	case Mod, Lt, And, Or:
		return field.Element{}, false

	default:
		return field.Element{}, false
	}
}
