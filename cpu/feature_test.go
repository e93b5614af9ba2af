package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		in   string
		want Arch
		ok   bool
	}{
		{"amd64", ArchAMD64, true},
		{"x86_64", ArchAMD64, true},
		{"X86-64", ArchAMD64, true},
		{"i686", Arch386, true},
		{"aarch64", ArchARM64, true},
		{"ppc64le", ArchPPC64, true},
		{"mips64le", ArchMIPS64, true},
		{"wasm32", ArchWasm, true},
		{"sparc", ArchUnknown, false},
		{"", ArchUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseArch(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArchString(t *testing.T) {
	for _, a := range Arches() {
		assert.True(t, a.Known())
		back, ok := ParseArch(a.String())
		require.True(t, ok, a.String())
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "unknown", Arch(200).String())
	assert.False(t, ArchUnknown.Known())
}

func TestLookupFeature(t *testing.T) {
	tests := []struct {
		arch Arch
		name string
		want Feature
		ok   bool
	}{
		{ArchAMD64, "avx2", X86AVX2, true},
		{Arch386, "AVX2", X86AVX2, true},
		{ArchAMD64, "sse4_1", X86SSE41, true},
		{ArchAMD64, "sse4.2", X86SSE42, true},
		{ArchAMD64, "fma3", X86FMA, true},
		{ArchARM64, "neon", ARM64ASIMD, true},
		{ArchARM64, "lse", ARM64ATOMICS, true},
		{ArchARM64, "dotprod", ARM64ASIMDDP, true},
		{ArchARM, "neon", ARMNEON, true},
		{ArchARM64, "aes", ARM64AES, true},
		{ArchAMD64, "aes", X86AES, true},
		{ArchARM64, "avx2", 0, false},
		{ArchAMD64, "neon", 0, false},
		{ArchWasm, "simd128", 0, false},
		{ArchUnknown, "sse", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.arch.String()+"/"+tt.name, func(t *testing.T) {
			got, ok := LookupFeature(tt.arch, tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCatalogConsistency(t *testing.T) {
	for f := Feature(0); f < numFeatures; f++ {
		info := catalog[f]
		require.NotEmpty(t, info.name, "feature %d has no name", f)
		require.NotEqual(t, isaNone, info.isa, info.name)
		for _, g := range info.implies {
			assert.Equal(t, info.isa, catalog[g].isa, "%s implies foreign %s", info.name, catalog[g].name)
			assert.NotEqual(t, f, g)
		}
	}
	assert.LessOrEqual(t, int(numFeatures), 128)
}

func TestParseFeatures(t *testing.T) {
	fs, err := ParseFeatures(ArchAMD64, "avx", "fma")
	require.NoError(t, err)
	assert.Equal(t, []Feature{X86AVX, X86FMA}, fs)

	_, err = ParseFeatures(ArchAMD64, "avx", "neon")
	require.ErrorIs(t, err, ErrUnknownFeature)
}

func TestFeaturesOf(t *testing.T) {
	x86 := FeaturesOf(ArchAMD64)
	assert.Equal(t, x86, FeaturesOf(Arch386))
	assert.Contains(t, x86, X86AVX512F)
	assert.NotContains(t, x86, ARM64ASIMD)

	assert.Equal(t, []Feature{MIPS64MSA}, FeaturesOf(ArchMIPS64))
	assert.Empty(t, FeaturesOf(ArchWasm))
}

func TestFeatureString(t *testing.T) {
	assert.Equal(t, "avx512f", X86AVX512F.String())
	assert.Equal(t, "asimd", ARM64ASIMD.String())
	assert.Equal(t, "feature(250)", Feature(250).String())
	assert.Nil(t, Feature(250).Implies())
	assert.Equal(t, []Feature{X86AVX}, X86AVX2.Implies())
}
