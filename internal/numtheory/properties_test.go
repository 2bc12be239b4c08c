package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/san-kum/rhythmlab/internal/numtheory"
)

// PropertiesSuite checks identities over every pair of step counts 1..64.
type PropertiesSuite struct {
	suite.Suite
}

func (s *PropertiesSuite) TestGCDTimesLCM() {
	for a := 1; a <= 64; a++ {
		for b := 1; b <= 64; b++ {
			g, err := numtheory.GCD(a, b)
			require.NoError(s.T(), err)
			l, err := numtheory.LCM(a, b)
			require.NoError(s.T(), err)
			require.Equal(s.T(), a*b, g*l, "gcd(%d,%d)*lcm(%d,%d)", a, b, a, b)
		}
	}
}

func (s *PropertiesSuite) TestLCMDividesByBoth() {
	for a := 1; a <= 64; a++ {
		for b := a; b <= 64; b++ {
			l, err := numtheory.LCM(a, b)
			require.NoError(s.T(), err)
			require.Zero(s.T(), l%a)
			require.Zero(s.T(), l%b)
			require.GreaterOrEqual(s.T(), l, b)
		}
	}
}

func (s *PropertiesSuite) TestCoprimeMatchesGCD() {
	for a := 1; a <= 64; a++ {
		for b := 1; b <= 64; b++ {
			ok, err := numtheory.Coprime(a, b)
			require.NoError(s.T(), err)
			g, _ := numtheory.GCD(a, b)
			require.Equal(s.T(), g == 1, ok, "coprime(%d,%d)", a, b)
		}
	}
}

func (s *PropertiesSuite) TestPrimeFactorsMultiplyBack() {
	for n := 1; n <= 1024; n++ {
		factors, err := numtheory.PrimeFactors(n)
		require.NoError(s.T(), err)

		product := 1
		for _, f := range factors {
			require.True(s.T(), numtheory.IsPrime(f), "factor %d of %d", f, n)
			product *= f
		}
		require.Equal(s.T(), n, product)
		require.IsNonDecreasing(s.T(), factors)
	}
}

func (s *PropertiesSuite) TestBinomialSymmetry() {
	for n := 0; n <= 20; n++ {
		sum := 0
		for k := 0; k <= n; k++ {
			require.Equal(s.T(), numtheory.Binomial(n, k), numtheory.Binomial(n, n-k))
			sum += numtheory.Binomial(n, k)
		}
		require.Equal(s.T(), 1<<n, sum)
	}
}

func TestPropertiesSuite(t *testing.T) {
	suite.Run(t, new(PropertiesSuite))
}
