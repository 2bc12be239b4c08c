package numtheory

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{3, 5, 1},
		{7, 7, 7},
		{1, 64, 1},
		{64, 48, 16},
	}

	for _, tt := range tests {
		got, err := GCD(tt.a, tt.b)
		if err != nil {
			t.Fatalf("gcd(%d, %d): unexpected error %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("gcd(%d, %d): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestGCD_InvalidArgument(t *testing.T) {
	for _, pair := range [][2]int{{0, 3}, {3, 0}, {-2, 4}} {
		if _, err := GCD(pair[0], pair[1]); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("gcd(%d, %d): expected ErrInvalidArgument, got %v", pair[0], pair[1], err)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{3, 5, 15},
		{4, 6, 12},
		{8, 8, 8},
		{1, 9, 9},
	}

	for _, tt := range tests {
		got, err := LCM(tt.a, tt.b)
		if err != nil {
			t.Fatalf("lcm(%d, %d): unexpected error %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("lcm(%d, %d): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestLCM_Overflow(t *testing.T) {
	_, err := LCM(math.MaxInt-1, math.MaxInt-2)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestLCMOfList(t *testing.T) {
	got, err := LCMOfList([]int{3, 5, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 60 {
		t.Errorf("expected 60, got %d", got)
	}

	single, err := LCMOfList([]int{7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single != 7 {
		t.Errorf("expected lcm of a single value to be itself, got %d", single)
	}
}

func TestLCMOfList_Invalid(t *testing.T) {
	if _, err := LCMOfList(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty list: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := LCMOfList([]int{3, 0, 5}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero entry: expected ErrInvalidArgument, got %v", err)
	}
}

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{
		-7: false, 0: false, 1: false, 2: true, 3: true, 4: false,
		9: false, 13: true, 25: false, 31: true, 49: false, 97: true,
	}
	for n, want := range primes {
		if got := IsPrime(n); got != want {
			t.Errorf("IsPrime(%d): expected %v, got %v", n, want, got)
		}
	}
}

func TestPrimeFactors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{}},
		{2, []int{2}},
		{12, []int{2, 2, 3}},
		{60, []int{2, 2, 3, 5}},
		{97, []int{97}},
		{64, []int{2, 2, 2, 2, 2, 2}},
	}

	for _, tt := range tests {
		got, err := PrimeFactors(tt.n)
		if err != nil {
			t.Fatalf("PrimeFactors(%d): unexpected error %v", tt.n, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PrimeFactors(%d) mismatch (-want +got):\n%s", tt.n, diff)
		}
	}

	if _, err := PrimeFactors(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for 0, got %v", err)
	}
}

func TestCoprime(t *testing.T) {
	ok, err := Coprime(3, 4)
	if err != nil || !ok {
		t.Errorf("expected 3 and 4 coprime, got %v (err %v)", ok, err)
	}
	ok, err = Coprime(4, 6)
	if err != nil || ok {
		t.Errorf("expected 4 and 6 not coprime, got %v (err %v)", ok, err)
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{5, 2, 10},
		{6, 3, 20},
		{4, 0, 1},
		{4, 4, 1},
		{3, 4, 0},
		{10, -1, 0},
	}
	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("C(%d,%d): expected %d, got %d", tt.n, tt.k, tt.want, got)
		}
	}
}
