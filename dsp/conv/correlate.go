package conv

import (
	"fmt"
	"math"
	"slices"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dispatch/vecmath"
)

// Correlate computes the full cross-correlation of a and b using the
// algorithm selected for the running CPU. The result has length
// len(a) + len(b) - 1; index k corresponds to lag k - (len(b) - 1).
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return correlateTable.Get()(a, b)
}

// CorrelateDirect computes cross-correlation with the direct kernel.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	return Direct(a, reversed(b))
}

// CorrelateFFT computes cross-correlation as IFFT(FFT(a) * conj(FFT(b))).
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	for i, v := range a {
		aFreq[i] = complex(v, 0)
	}
	for i, v := range b {
		bFreq[i] = complex(v, 0)
	}
	if err := plan.Forward(aFreq, aFreq); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bFreq); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		bf := bFreq[i]
		aFreq[i] *= complex(real(bf), -imag(bf))
	}
	if err := plan.Inverse(aFreq, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Non-negative lags sit at the start of the circular result, negative
	// lags wrap around to its end.
	result := make([]float64, n+m-1)
	for i := range n {
		result[m-1+i] = real(aFreq[i])
	}
	for i := range m - 1 {
		result[i] = real(aFreq[fftSize-m+1+i])
	}

	return result, nil
}

// CorrelateMode computes cross-correlation with the given output mode.
func CorrelateMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// AutoCorrelate computes the auto-correlation of a. The result has length
// 2*len(a) - 1 with the zero lag at index len(a) - 1.
func AutoCorrelate(a []float64) ([]float64, error) {
	return Correlate(a, a)
}

// AutoCorrelateNormalized computes auto-correlation scaled to a zero-lag
// value of 1.
func AutoCorrelateNormalized(a []float64) ([]float64, error) {
	result, err := AutoCorrelate(a)
	if err != nil {
		return nil, err
	}

	if zeroLag := result[len(a)-1]; zeroLag != 0 {
		vecmath.ScaleBlockInPlace(result, 1/zeroLag)
	}
	return result, nil
}

// CorrelateNormalized computes cross-correlation divided by the product of
// the L2 norms of a and b, so values lie in [-1, 1].
func CorrelateNormalized(a, b []float64) ([]float64, error) {
	result, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	if norm := l2Norm(a) * l2Norm(b); norm != 0 {
		vecmath.ScaleBlockInPlace(result, 1/norm)
	}
	return result, nil
}

func reversed(x []float64) []float64 {
	out := slices.Clone(x)
	slices.Reverse(out)
	return out
}

func l2Norm(x []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(x, x))
}

// FindPeak returns the index and value of the maximum of corr, or -1 for an
// empty slice.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i, v := range corr {
		if v > value {
			index, value = i, v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}
