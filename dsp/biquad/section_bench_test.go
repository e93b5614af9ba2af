package biquad

import "testing"

func BenchmarkProcessBlock(b *testing.B) {
	buf := make([]float64, 4096)
	for i := range buf {
		buf[i] = float64(i) * 0.001
	}

	for _, e := range processBlockTable().Entries() {
		b.Run(e.Name, func(b *testing.B) {
			s := NewSection(lowpass())
			c := s.kernelCoefficients()
			b.SetBytes(int64(len(buf) * 8))
			b.ReportAllocs()
			for b.Loop() {
				s.d0, s.d1 = e.Fn(c, s.d0, s.d1, buf)
			}
		})
	}

	b.Run("dispatched", func(b *testing.B) {
		s := NewSection(lowpass())
		b.SetBytes(int64(len(buf) * 8))
		b.ReportAllocs()
		for b.Loop() {
			s.ProcessBlock(buf)
		}
	})
}
