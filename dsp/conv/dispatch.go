package conv

import (
	"github.com/cwbudde/algo-dispatch/dispatch"
	"github.com/cwbudde/algo-dispatch/target"
)

type pairFn func(a, b []float64) ([]float64, error)

// Variant names.
const (
	VariantFFTAMD64 = "fft-amd64"
	VariantFFTARM64 = "fft-arm64"
)

func fftEntries(fn pairFn) []dispatch.Entry[pairFn] {
	return []dispatch.Entry[pairFn]{
		dispatch.MustEntry(VariantFFTAMD64, "amd64/x86-64-v3", fn),
		dispatch.MustEntry(VariantFFTARM64, "arm64+asimd", fn),
	}
}

var (
	convolveTable  = dispatch.MustNew("conv.Convolve", pairFn(Direct), fftEntries(convolveAuto))
	correlateTable = dispatch.MustNew("conv.Correlate", pairFn(CorrelateDirect), fftEntries(correlateAuto))
)

// convolveAuto uses overlap-add once the shorter input exceeds FFTThreshold.
func convolveAuto(a, b []float64) ([]float64, error) {
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) <= FFTThreshold {
		return Direct(a, b)
	}
	return OverlapAddConvolve(a, b)
}

// correlateAuto uses the FFT once the shorter input exceeds FFTThreshold.
func correlateAuto(a, b []float64) ([]float64, error) {
	if min(len(a), len(b)) <= FFTThreshold {
		return CorrelateDirect(a, b)
	}
	return CorrelateFFT(a, b)
}

// Implementation reports the variant names Convolve and Correlate use on
// the running CPU.
func Implementation() (convolve, correlate string) {
	return convolveTable.Selected().Name, correlateTable.Selected().Name
}

// ConvolveFor returns the convolution routine for code built against r,
// without consulting the running CPU.
func ConvolveFor(r target.Requirement) func(a, b []float64) ([]float64, error) {
	return convolveTable.For(r)
}
