package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dispatch/vecmath"
)

// ErrLength is returned for signals whose length is not a power of two.
var ErrLength = errors.New("spectrum: length must be a power of two")

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns two pooled slices of length n.
func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	if need := 2 * n; cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:], buf
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	defer scratchPool.Put(buf)

	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	defer scratchPool.Put(buf)

	split(in, re, im)
	vecmath.Power(out, re, im)
	return out
}

// Hann returns the periodic Hann window of length n.
func Hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return w
}

// Analyzer computes one-sided spectra of fixed-size frames. It reuses its
// FFT plan and buffers and is not safe for concurrent use.
type Analyzer struct {
	size   int
	window []float64
	plan   *algofft.Plan[complex128]
	frame  []float64
	bins   []complex128
}

// NewAnalyzer returns an Analyzer for frames of size samples weighted by a
// Hann window. size must be a power of two.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrLength, size)
	}
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}
	return &Analyzer{
		size:   size,
		window: Hann(size),
		plan:   plan,
		frame:  make([]float64, size),
		bins:   make([]complex128, size),
	}, nil
}

// Size returns the frame length.
func (a *Analyzer) Size() int { return a.size }

// transform windows x and leaves its spectrum in a.bins.
func (a *Analyzer) transform(x []float64) error {
	if len(x) != a.size {
		return fmt.Errorf("%w: frame of %d samples for analyzer of %d", ErrLength, len(x), a.size)
	}
	vecmath.MulBlock(a.frame, x, a.window)
	for i, v := range a.frame {
		a.bins[i] = complex(v, 0)
	}
	if err := a.plan.Forward(a.bins, a.bins); err != nil {
		return fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return nil
}

// Magnitude returns |X[k]| for bins 0..size/2 of the windowed frame x.
func (a *Analyzer) Magnitude(x []float64) ([]float64, error) {
	if err := a.transform(x); err != nil {
		return nil, err
	}
	return Magnitude(a.bins[:a.size/2+1]), nil
}

// Power returns |X[k]|^2 for bins 0..size/2 of the windowed frame x.
func (a *Analyzer) Power(x []float64) ([]float64, error) {
	if err := a.transform(x); err != nil {
		return nil, err
	}
	return Power(a.bins[:a.size/2+1]), nil
}

// PeakBin returns the index of the largest value in spec, or -1 for an empty
// slice.
func PeakBin(spec []float64) int {
	peak := -1
	for i, v := range spec {
		if peak < 0 || v > spec[peak] {
			peak = i
		}
	}
	return peak
}
