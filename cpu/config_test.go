package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvNoDetect, "true")
	t.Setenv(EnvDetector, " CPUID ")
	t.Setenv(EnvDisable, "avx2, ,fma")

	cfg := ConfigFromEnv()
	assert.True(t, cfg.NoDetect)
	assert.Equal(t, DetectorCPUID, cfg.Detector)
	assert.Equal(t, []string{"avx2", "fma"}, cfg.Disable)
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"TRUE", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envBool(tt.in))
		})
	}
}

func fullAMD64() Snapshot {
	return MustSnapshot(ArchAMD64,
		X86SSE, X86SSE2, X86SSE3, X86SSSE3, X86SSE41, X86SSE42, X86POPCNT,
		X86AVX, X86AVX2, X86FMA, X86F16C, X86BMI1, X86BMI2,
	)
}

func TestProbeMasking(t *testing.T) {
	probe := newProbeFor(ArchAMD64, Config{Disable: []string{"avx"}}, fullAMD64)
	s := probe()

	assert.True(t, s.Has(X86SSE42))
	assert.True(t, s.Has(X86BMI2))
	assert.False(t, s.Has(X86AVX))
	assert.False(t, s.Has(X86AVX2))
	assert.False(t, s.Has(X86FMA))
	assert.False(t, s.Has(X86F16C))
}

func TestProbeIgnoresUnknownDisable(t *testing.T) {
	probe := newProbeFor(ArchAMD64, Config{Disable: []string{"avx9", "bmi2"}}, fullAMD64)
	s := probe()

	assert.True(t, s.Has(X86AVX2))
	assert.False(t, s.Has(X86BMI2))
}

func TestProbeNoDetect(t *testing.T) {
	called := false
	probe := newProbeFor(ArchARM64, Config{NoDetect: true}, func() Snapshot {
		called = true
		return MustSnapshot(ArchARM64, ARM64ASIMD)
	})

	assert.Equal(t, Empty(ArchARM64), probe())
	assert.False(t, called)
}

func TestProbeArchMismatch(t *testing.T) {
	probe := newProbeFor(ArchPPC64, Config{}, fullAMD64)
	s := probe()
	assert.Equal(t, ArchPPC64, s.Arch())
	if Current != ArchPPC64 {
		assert.True(t, s.IsEmpty())
	}
}

func TestBackendSelection(t *testing.T) {
	assert.NotNil(t, backend(""))
	assert.NotNil(t, backend(DetectorXSys))
	assert.NotNil(t, backend(DetectorCPUID))
	assert.NotNil(t, backend("bogus"))
}

func TestProbesReportCurrentArch(t *testing.T) {
	assert.Equal(t, Current, XSysProbe().Arch())
	assert.Equal(t, Current, CPUIDProbe().Arch())
	assert.Equal(t, Current, Guaranteed().Arch())
	assert.Equal(t, Current, Describe().Arch)
}
