package numtheory

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for integer operations.
var (
	// ErrInvalidArgument indicates a non-positive input or an empty list.
	ErrInvalidArgument = errors.New("numtheory: invalid argument")

	// ErrOverflow indicates a result that does not fit in an int.
	ErrOverflow = errors.New("numtheory: integer overflow")
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func requirePositive(name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, name, v)
	}
	return nil
}

// GCD returns the greatest common divisor of two positive integers.
func GCD(a, b int) (int, error) {
	if err := requirePositive("a", a); err != nil {
		return 0, err
	}
	if err := requirePositive("b", b); err != nil {
		return 0, err
	}
	return gcd(a, b), nil
}

// LCM returns a*b/gcd(a,b) for two positive integers.
func LCM(a, b int) (int, error) {
	if err := requirePositive("a", a); err != nil {
		return 0, err
	}
	if err := requirePositive("b", b); err != nil {
		return 0, err
	}
	q := a / gcd(a, b)
	if q > math.MaxInt/b {
		return 0, fmt.Errorf("%w: lcm(%d, %d)", ErrOverflow, a, b)
	}
	return q * b, nil
}

// LCMOfList folds LCM across a non-empty list.
func LCMOfList(values []int) (int, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: empty list", ErrInvalidArgument)
	}
	if err := requirePositive("values[0]", values[0]); err != nil {
		return 0, err
	}
	acc := values[0]
	for i, v := range values[1:] {
		if err := requirePositive(fmt.Sprintf("values[%d]", i+1), v); err != nil {
			return 0, err
		}
		next, err := LCM(acc, v)
		if err != nil {
			return 0, err
		}
		acc = next
	}
	return acc, nil
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b int) (bool, error) {
	g, err := GCD(a, b)
	if err != nil {
		return false, err
	}
	return g == 1, nil
}

// IsPrime tests n by trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the prime factors of n in ascending order, with
// multiplicity. PrimeFactors(1) is empty.
func PrimeFactors(n int) ([]int, error) {
	if err := requirePositive("n", n); err != nil {
		return nil, err
	}
	factors := make([]int, 0)
	for d := 2; d <= n/d; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}

// Binomial returns C(n, k), or 0 when k is outside [0, n].
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
