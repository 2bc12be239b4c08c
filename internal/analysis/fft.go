package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DFT returns the discrete Fourier transform of data for any length.
func DFT(data []float64) []complex128 {
	return fft.FFTReal(data)
}

// Spectrum returns |F(k)|/onsets for k = 0..n/2 of a pattern's onset
// indicator. Coefficient 1 is the balance magnitude; coefficient k measures
// how far the onsets are from k-fold symmetry. A pattern with no onsets has
// an all-zero spectrum.
func Spectrum(steps []bool) []float64 {
	n := len(steps)
	data := make([]float64, n)
	onsets := 0
	for i, on := range steps {
		if on {
			data[i] = 1
			onsets++
		}
	}

	ps := make([]float64, n/2+1)
	if onsets == 0 || n == 0 {
		return ps
	}

	f := DFT(data)
	for k := range ps {
		ps[k] = cmplx.Abs(f[k]) / float64(onsets)
	}
	return ps
}
