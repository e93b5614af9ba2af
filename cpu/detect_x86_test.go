//go:build 386 || amd64

package cpu

import (
	"testing"

	"github.com/klauspost/cpuid/v2"
	"github.com/stretchr/testify/assert"
)

func TestXSysProbeReportsGFNIWithoutAVX512(t *testing.T) {
	s := XSysProbe()
	assert.Equal(t, cpuid.CPU.Supports(cpuid.GFNI), s.Has(X86GFNI))
	assert.Equal(t, cpuid.CPU.Supports(cpuid.VAES), s.Has(X86VAES))

	// Both backends agree on the bits x/sys/cpu gates behind AVX-512.
	c := CPUIDProbe()
	assert.Equal(t, c.Has(X86GFNI), s.Has(X86GFNI))
	assert.Equal(t, c.Has(X86VAES), s.Has(X86VAES))
}
