package biquad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
}

func TestNewChain(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	assert.Equal(t, 2, c.NumSections())
	assert.Equal(t, 4, c.Order())
	assert.Equal(t, 1.0, c.Gain())

	c = NewChain(twoSectionCoeffs(), WithGain(0.5))
	assert.Equal(t, 0.5, c.Gain())
}

func TestChain_ProcessSample_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	s1 := NewSection(coeffs[0])
	s2 := NewSection(coeffs[1])
	chain := NewChain(coeffs, WithGain(2))

	for i, x := range []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8} {
		ref := s2.ProcessSample(s1.ProcessSample(x * 2))
		if got := chain.ProcessSample(x); !almostEqual(got, ref, eps) {
			t.Errorf("sample %d: chain=%.15f, ref=%.15f", i, got, ref)
		}
	}
}

func TestChain_ProcessBlock_MatchesSample(t *testing.T) {
	for _, gain := range []float64{1, 0.5} {
		c1 := NewChain(twoSectionCoeffs(), WithGain(gain))
		input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, 0.1}

		ref := make([]float64, len(input))
		for i, x := range input {
			ref[i] = c1.ProcessSample(x)
		}

		c2 := NewChain(twoSectionCoeffs(), WithGain(gain))
		block := append([]float64(nil), input...)
		c2.ProcessBlock(block)

		for i := range block {
			if !almostEqual(block[i], ref[i], eps) {
				t.Errorf("gain %v sample %d: block=%.15f, ref=%.15f", gain, i, block[i], ref[i])
			}
		}
	}
}

func TestChain_UpdateCoefficients(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.ProcessSample(1)
	state := c.State()
	require.Len(t, state, 2)

	swapped := twoSectionCoeffs()
	swapped[0], swapped[1] = swapped[1], swapped[0]
	c.UpdateCoefficients(swapped, 0.25)
	assert.Equal(t, state, c.State(), "state kept when section count is unchanged")
	assert.Equal(t, swapped[0], c.Section(0).Coefficients)
	assert.Equal(t, 0.25, c.Gain())

	c.UpdateCoefficients(swapped[:1], 1)
	assert.Equal(t, [][2]float64{{0, 0}}, c.State())

	c.SetGain(3)
	assert.Equal(t, 3.0, c.Gain())
}

func TestChain_ResetAndSetState(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.ProcessBlock([]float64{1, 0, 0})
	saved := c.State()

	c.Reset()
	assert.Equal(t, [][2]float64{{0, 0}, {0, 0}}, c.State())

	c.SetState(saved)
	assert.Equal(t, saved, c.State())
}
