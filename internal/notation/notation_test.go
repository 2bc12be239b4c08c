package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/rhythmlab/internal/analysis"
	"github.com/san-kum/rhythmlab/internal/pattern"
)

func TestParseTerm(t *testing.T) {
	tests := []struct {
		in      string
		binary  string
		formula string
	}{
		{"P(3,0)", "111", "P(3,0)"},
		{"p(4, 1, 2)", "01010101", "P(4,1,2)"},
		{"E(3,8)", "10010010", "E(3,8)"},
		{"e(3,8,2)", "10100100", "E(3,8,2)"},
		{"b10010010", "10010010", "b10010010"},
		{"1011", "1011", "b1011"},
		{"0x92", "10010010", "0x92"},
		{"tri", "111", "P(3,0)"},
		{"SQUARE", "1111", "P(4,0)"},
		{"~E(3,8)", "01101101", "~E(3,8)"},
		{"rev b1100", "0011", "rev(b1100)"},
		{"b1000@1", "0100", "rot(b1000,1)"},
		{"b1000 @ -1", "0001", "rot(b1000,-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseTerm(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.Binary(); got != tt.binary {
				t.Errorf("expected %s, got %s", tt.binary, got)
			}
			if p.Formula != tt.formula {
				t.Errorf("expected formula %s, got %s", tt.formula, p.Formula)
			}
		})
	}
}

func TestParseTerm_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrSyntax},
		{"Q(3,0)", ErrSyntax},
		{"P(3)", ErrSyntax},
		{"b10201", ErrSyntax},
		{"P(1,0)", pattern.ErrRange},
		{"P(33,0)", pattern.ErrRange},
		{"E(3,65)", pattern.ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if _, err := ParseTerm(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParse_Single(t *testing.T) {
	r, err := Parse("E(5,8)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.IsCombined {
		t.Error("expected single term to be uncombined")
	}
	if r.LCMUsed != 8 {
		t.Errorf("expected lcm 8, got %d", r.LCMUsed)
	}
}

func TestParse_Combination(t *testing.T) {
	r, err := Parse("P(3,0) + P(5,0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.LCMUsed != 15 {
		t.Errorf("expected lcm 15, got %d", r.LCMUsed)
	}
	if diff := cmp.Diff([]int{0, 3, 5, 6, 9, 10, 12}, r.Onsets()); diff != "" {
		t.Errorf("onsets mismatch (-want +got):\n%s", diff)
	}
	if r.Formula != "P(3,0)+P(5,0)" {
		t.Errorf("expected formula P(3,0)+P(5,0), got %s", r.Formula)
	}
}

func TestParse_PerfectUnion(t *testing.T) {
	r, err := Parse("square+hex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := analysis.BalanceOf(r.Pattern); !b.IsPerfectlyBalanced {
		t.Errorf("expected perfect balance, got %s (%.4f)", b.Score, b.Magnitude)
	}
}

func TestParse_Subtraction(t *testing.T) {
	r, err := Parse("P(4,0)+P(6,0)-P(2,0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HasSubtraction {
		t.Error("expected subtraction")
	}
	if len(r.OriginalPatterns) != 2 || len(r.Subtracted) != 1 {
		t.Errorf("expected 2 added and 1 subtracted, got %d and %d", len(r.OriginalPatterns), len(r.Subtracted))
	}
	if diff := cmp.Diff([]int{2, 3, 4, 8, 9, 10}, r.Onsets()); diff != "" {
		t.Errorf("onsets mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NegativeNumbersDoNotSplit(t *testing.T) {
	r, err := Parse("E(3,8,-1)+b1000@-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.HasSubtraction {
		t.Error("expected no subtraction")
	}
	if len(r.OriginalPatterns) != 2 {
		t.Errorf("expected 2 terms, got %d", len(r.OriginalPatterns))
	}
}

func TestSplit(t *testing.T) {
	add, sub, err := split("a + b - c + d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, add); diff != "" {
		t.Errorf("add mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"c", "d"}, sub); diff != "" {
		t.Errorf("subtract mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", "a+", "+a", "P(3,0", "P(3,0))"} {
		if _, _, err := split(bad); !errors.Is(err, ErrSyntax) {
			t.Errorf("split(%q): expected ErrSyntax, got %v", bad, err)
		}
	}
}
