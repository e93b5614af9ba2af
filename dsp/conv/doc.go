// Package conv provides convolution and correlation routines whose
// algorithm is chosen for the running CPU.
//
// Every CPU gets the direct O(N*M) time-domain kernel. CPUs with wide vector
// units (x86-64-v3, arm64 Advanced SIMD) switch to FFT-based overlap-add
// once the shorter input exceeds [FFTThreshold] samples:
//
//	y, err := conv.Convolve(signal, kernel)
//	corr, err := conv.Correlate(signal, template)
//	peakIdx, _ := conv.FindPeak(corr)
//	lag := conv.LagFromIndex(peakIdx, len(template))
//
// For repeated convolution with the same kernel, create an [OverlapAdd]
// convolver to avoid re-planning the FFT.
package conv
