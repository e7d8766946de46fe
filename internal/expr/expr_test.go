package expr

import (
	"testing"

	"github.com/esmanurarslan/mathrisk/internal/config"
)

func allTiers() map[string]config.TierConfig {
	cfg := config.DefaultConfig()
	return map[string]config.TierConfig{
		"easy":   cfg.Tiers.Easy,
		"medium": cfg.Tiers.Medium,
		"hard":   cfg.Tiers.Hard,
	}
}

func TestGenerateNeverUndefined(t *testing.T) {
	// For all tiers, no division by zero, no inexact division,
	// no non-perfect-square root.
	for name, tier := range allTiers() {
		t.Run(name, func(t *testing.T) {
			g := NewGenerator(12345)
			for i := 0; i < 2000; i++ {
				e := g.Generate(tier)
				switch e.Op {
				case OpDiv:
					if e.B == 0 {
						t.Fatalf("division by zero in %q", e.Text)
					}
					if e.A%e.B != 0 {
						t.Fatalf("inexact division in %q: %d/%d", e.Text, e.A, e.B)
					}
				case OpSqrt:
					r := intSqrt(e.A)
					if r*r != e.A {
						t.Fatalf("non-perfect-square root in %q: radicand %d", e.Text, e.A)
					}
				}
			}
		})
	}
}

func TestGenerateDeltaMatchesOperands(t *testing.T) {
	for name, tier := range allTiers() {
		t.Run(name, func(t *testing.T) {
			g := NewGenerator(99)
			for i := 0; i < 1000; i++ {
				e := g.Generate(tier)
				want := deltaFor(e.Op, e.A, e.B)
				if e.Delta != want {
					t.Fatalf("delta mismatch for %q: got %d, want %d", e.Text, e.Delta, want)
				}
			}
		})
	}
}

func TestDeltaForTotalMapping(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b int
		want int
	}{
		{"add", OpAdd, 7, 0, 7},
		{"add negative", OpAdd, -3, 0, -3},
		{"sub", OpSub, 4, 0, -4},
		{"sub negative", OpSub, -3, 0, 3},
		{"mul", OpMul, 3, 4, 12},
		{"mul negative", OpMul, -3, 4, -12},
		{"div exact", OpDiv, 12, 3, 4},
		{"div negative", OpDiv, -12, 3, -4},
		{"pow", OpPow, 2, 3, 8},
		{"sqrt", OpSqrt, 9, 0, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := deltaFor(tc.op, tc.a, tc.b); got != tc.want {
				t.Errorf("deltaFor(%v, %d, %d) = %d, want %d", tc.op, tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestGenerateEasyTierOperators(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewGenerator(7)
	for i := 0; i < 500; i++ {
		e := g.Generate(cfg.Tiers.Easy)
		if e.Op != OpAdd && e.Op != OpSub {
			t.Fatalf("easy tier produced %v (%q), want only + or -", e.Op, e.Text)
		}
	}
}

func TestGenerateHardTierBounded(t *testing.T) {
	cfg := config.DefaultConfig()
	g := NewGenerator(31337)
	for i := 0; i < 2000; i++ {
		e := g.Generate(cfg.Tiers.Hard)
		if e.Op == OpPow && (e.Delta < 4 || e.Delta > 27) {
			t.Fatalf("power delta out of bounds in %q: %d", e.Text, e.Delta)
		}
		if e.Op == OpSqrt && (e.Delta < 2 || e.Delta > 12) {
			t.Fatalf("root delta out of bounds in %q: %d", e.Text, e.Delta)
		}
	}
}

func TestGenerateUnknownOperatorsFallBack(t *testing.T) {
	tier := config.TierConfig{
		Operators:  []string{"%", "!", "mod"},
		OperandMin: 1,
		OperandMax: 5,
	}

	g := NewGenerator(1)
	for i := 0; i < 200; i++ {
		e := g.Generate(tier)
		if e.Op != OpAdd && e.Op != OpSub {
			t.Fatalf("fallback op set should be {+,-}, got %v (%q)", e.Op, e.Text)
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()

	g1 := NewGenerator(4242)
	g2 := NewGenerator(4242)

	for i := 0; i < 500; i++ {
		e1 := g1.Generate(cfg.Tiers.Hard)
		e2 := g2.Generate(cfg.Tiers.Hard)
		if e1 != e2 {
			t.Fatalf("iteration %d: %+v != %+v", i, e1, e2)
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		op   Op
		ok   bool
	}{
		{"+", OpAdd, true},
		{"-", OpSub, true},
		{"*", OpMul, true},
		{"/", OpDiv, true},
		{"^", OpPow, true},
		{"sqrt", OpSqrt, true},
		{"√", OpSqrt, true},
		{"%", OpAdd, false},
		{"", OpAdd, false},
	}

	for _, tc := range tests {
		op, ok := ParseOp(tc.in)
		if ok != tc.ok || (ok && op != tc.op) {
			t.Errorf("ParseOp(%q) = (%v, %v), want (%v, %v)", tc.in, op, ok, tc.op, tc.ok)
		}
	}
}

func TestFormatting(t *testing.T) {
	if got := formatSigned("+", 7); got != "+7" {
		t.Errorf("formatSigned(+, 7) = %q", got)
	}
	if got := formatSigned("+", -3); got != "+(-3)" {
		t.Errorf("formatSigned(+, -3) = %q", got)
	}
	if got := formatSigned("-", -3); got != "-(-3)" {
		t.Errorf("formatSigned(-, -3) = %q", got)
	}
	if got := wrapNeg(-12); got != "(-12)" {
		t.Errorf("wrapNeg(-12) = %q", got)
	}
	if got := wrapNeg(12); got != "12" {
		t.Errorf("wrapNeg(12) = %q", got)
	}
}
