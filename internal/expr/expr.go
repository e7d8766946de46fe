// Package expr generates the random arithmetic expressions carried by
// falling tiles. Every expression evaluates to a signed integer delta that
// is added to the Coin score when the tile is collected.
package expr

import (
	"fmt"
	"math/rand"

	"github.com/esmanurarslan/mathrisk/internal/config"
)

// Op is the operator tag of an expression.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpSqrt
)

// Symbol returns the display symbol for the operator.
func (op Op) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpSqrt:
		return "√"
	default:
		return "?"
	}
}

// ParseOp maps a config operator symbol to an Op.
// Returns false for unrecognized symbols.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	case "^":
		return OpPow, true
	case "sqrt", "√":
		return OpSqrt, true
	}
	return OpAdd, false
}

// Expression is an immutable arithmetic expression with its precomputed
// score delta. A and B are the operands; OpSqrt uses only A (the radicand).
type Expression struct {
	Text  string
	Op    Op
	A, B  int
	Delta int
}

// deltaFor is the total mapping from operator tag and operands to the score
// delta. Division operands are constructed to divide exactly, so integer
// division here is never lossy.
func deltaFor(op Op, a, b int) int {
	switch op {
	case OpAdd:
		return a
	case OpSub:
		return -a
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return intPow(a, b)
	case OpSqrt:
		return intSqrt(a)
	}
	return 0
}

// intPow computes a**b for small non-negative exponents.
func intPow(a, b int) int {
	result := 1
	for i := 0; i < b; i++ {
		result *= a
	}
	return result
}

// intSqrt returns the integer square root of a perfect square.
func intSqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// Generator produces random expressions for a difficulty tier.
// It is deterministic for a given seed, which keeps sessions replayable.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for deterministic output.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Reseed resets the generator's random stream.
func (g *Generator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate produces one random expression for the given tier.
// The operator is chosen uniformly from the tier's set; operand ranges are
// bounded so the delta stays within a displayable magnitude. Division never
// uses a zero divisor and roots are always perfect squares.
func (g *Generator) Generate(tier config.TierConfig) Expression {
	ops := parseOps(tier.Operators)
	op := ops[g.rng.Intn(len(ops))]

	min := tier.OperandMin
	if min < 1 {
		min = 1
	}
	max := tier.OperandMax
	if max < min {
		max = min
	}

	switch op {
	case OpAdd:
		n := g.intn(min, max)
		if g.rng.Float64() < tier.NegativeChance {
			n = -n
		}
		return newExpr(OpAdd, n, 0, formatSigned("+", n))

	case OpSub:
		n := g.intn(min, max)
		if g.rng.Float64() < tier.NegativeChance {
			n = -n
		}
		return newExpr(OpSub, n, 0, formatSigned("-", n))

	case OpMul:
		a := g.intn(2, maxInt(3, max/2))
		b := g.intn(2, 5)
		if g.rng.Float64() < tier.NegativeChance {
			a = -a
		}
		return newExpr(OpMul, a, b, fmt.Sprintf("%s*%d", wrapNeg(a), b))

	case OpDiv:
		// Construct the dividend as divisor*quotient so division is exact.
		b := g.intn(2, 5)
		q := g.intn(2, maxInt(3, max/2))
		a := b * q
		if g.rng.Float64() < tier.NegativeChance {
			a = -a
		}
		return newExpr(OpDiv, a, b, fmt.Sprintf("%s/%d", wrapNeg(a), b))

	case OpPow:
		// Small base and exponent keep the delta at most 27.
		a := g.intn(2, 3)
		b := g.intn(2, 3)
		return newExpr(OpPow, a, b, fmt.Sprintf("%d^%d", a, b))

	case OpSqrt:
		// Radicand is always a perfect square.
		r := g.intn(2, minInt(12, maxInt(3, max)))
		return newExpr(OpSqrt, r*r, 0, fmt.Sprintf("√%d", r*r))
	}

	// Unreachable with a valid op set; degrade to the safest expression.
	return newExpr(OpAdd, 1, 0, "+1")
}

// newExpr builds an Expression with its delta computed from the tag.
func newExpr(op Op, a, b int, text string) Expression {
	return Expression{
		Text:  text,
		Op:    op,
		A:     a,
		B:     b,
		Delta: deltaFor(op, a, b),
	}
}

// parseOps resolves the tier's operator symbols, skipping unknown ones.
// An empty or fully unrecognized set degrades to {+, -}.
func parseOps(symbols []string) []Op {
	ops := make([]Op, 0, len(symbols))
	for _, s := range symbols {
		if op, ok := ParseOp(s); ok {
			ops = append(ops, op)
		}
	}
	if len(ops) == 0 {
		return []Op{OpAdd, OpSub}
	}
	return ops
}

// intn returns a uniform value in [min, max].
func (g *Generator) intn(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

// formatSigned renders "+7", "-7" or the parenthesized negative forms
// "+(-3)" and "-(-3)".
func formatSigned(sign string, n int) string {
	if n < 0 {
		return fmt.Sprintf("%s(%d)", sign, n)
	}
	return fmt.Sprintf("%s%d", sign, n)
}

// wrapNeg parenthesizes negative factors for display.
func wrapNeg(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return fmt.Sprintf("%d", n)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
