package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd convolves signals with a fixed kernel using FFT block
// convolution. The kernel spectrum and FFT plan are computed once.
//
// An OverlapAdd is not safe for concurrent use.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan    *algofft.Plan[complex128]
	scratch []complex128
}

// NewOverlapAdd creates an overlap-add convolver for kernel. A blockSize of
// 0 or less picks one from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), 256)
	}
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		scratch:   make([]complex128, fftSize),
	}

	if err := oa.forwardReal(oa.kernelFFT, kernel); err != nil {
		return nil, err
	}

	return oa, nil
}

// forwardReal writes the spectrum of x, zero-padded to the FFT size, to dst.
func (oa *OverlapAdd) forwardReal(dst []complex128, x []float64) error {
	clear(dst)
	for i, v := range x {
		dst[i] = complex(v, 0)
	}
	if err := oa.plan.Forward(dst, dst); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	return nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.kernelLen }

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.process(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo convolves input into output, which must have length
// len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}
	if want := len(input) + oa.kernelLen - 1; len(output) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(output))
	}

	clear(output)
	return oa.process(output, input)
}

func (oa *OverlapAdd) process(output, input []float64) error {
	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		if err := oa.forwardReal(oa.scratch, input[start:end]); err != nil {
			return err
		}
		for i := range oa.scratch {
			oa.scratch[i] *= oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.scratch, oa.scratch); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(end-start+oa.kernelLen-1, len(output)-start)
		for i := range n {
			output[start+i] += real(oa.scratch[i])
		}
	}
	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
