package generic

import (
	"fmt"
	"math"
	"testing"
)

func TestBlockOps(t *testing.T) {
	sizes := []int{0, 1, 4, 8, 15, 16, 17, 32, 64, 100, 1000}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := make([]float64, n)
			b := make([]float64, n)
			c := make([]float64, n)
			dst := make([]float64, n)
			for i := 0; i < n; i++ {
				a[i] = float64(i) + 0.5
				b[i] = float64(i) * 2.0
				c[i] = -float64(i)
			}

			AddBlock(dst, a, b)
			for i := 0; i < n; i++ {
				if dst[i] != a[i]+b[i] {
					t.Fatalf("AddBlock[%d] = %v, want %v", i, dst[i], a[i]+b[i])
				}
			}

			MulAddBlock(dst, a, b, c)
			for i := 0; i < n; i++ {
				if want := a[i]*b[i] + c[i]; dst[i] != want {
					t.Fatalf("MulAddBlock[%d] = %v, want %v", i, dst[i], want)
				}
			}

			AddMulBlock(dst, a, b, 0.5)
			for i := 0; i < n; i++ {
				if want := (a[i] + b[i]) * 0.5; dst[i] != want {
					t.Fatalf("AddMulBlock[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestMaxAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"empty", []float64{}, 0},
		{"single positive", []float64{3.5}, 3.5},
		{"single negative", []float64{-4.2}, 4.2},
		{"all negative", []float64{-1, -2, -3, -4, -5}, 5},
		{"mixed", []float64{-1.5, 2.0, -3.5, 4.0, -5.5}, 5.5},
		{"zeros", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxAbs(tt.input); got != tt.expected {
				t.Errorf("MaxAbs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReductions(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v", got)
	}
	if got := Sum([]float64{1, 2, 3.5}); got != 6.5 {
		t.Errorf("Sum = %v, want 6.5", got)
	}
	if got := DotProduct([]float64{1, 2, 3}, []float64{4, 5}); got != 14 {
		t.Errorf("DotProduct = %v, want 14", got)
	}
}

func TestMagnitudePower(t *testing.T) {
	re := []float64{3, 0, -5}
	im := []float64{4, 2, 12}
	mag := make([]float64, 3)
	pow := make([]float64, 3)

	Magnitude(mag, re, im)
	Power(pow, re, im)

	wantMag := []float64{5, 2, 13}
	for i := range mag {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("Magnitude[%d] = %v, want %v", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantMag[i]*wantMag[i]) > 1e-9 {
			t.Errorf("Power[%d] = %v, want %v", i, pow[i], wantMag[i]*wantMag[i])
		}
	}
}

func TestLengthMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != errLength {
			t.Errorf("recovered %v, want %q", r, errLength)
		}
	}()
	MulBlock(make([]float64, 5), make([]float64, 6), make([]float64, 5))
}
