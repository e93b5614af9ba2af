//go:build 386 || amd64

package cpu

import (
	"github.com/klauspost/cpuid/v2"
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads the CPUID bits exposed by golang.org/x/sys/cpu.
//
// x/sys/cpu has no F16C flag; FMA is used as a proxy because every shipping
// x86 core with FMA also implements F16C.
//
// x/sys/cpu only reports GFNI and VAES alongside AVX-512, so cores that ship
// them without AVX-512 (Alder Lake and later hybrids) would under-report.
// Those two bits are taken from cpuid as well.
func XSysProbe() Snapshot {
	x := xcpu.X86
	flags := []struct {
		has bool
		f   Feature
	}{
		{x.HasSSE2, X86SSE},
		{x.HasSSE2, X86SSE2},
		{x.HasSSE3, X86SSE3},
		{x.HasSSSE3, X86SSSE3},
		{x.HasSSE41, X86SSE41},
		{x.HasSSE42, X86SSE42},
		{x.HasPOPCNT, X86POPCNT},
		{x.HasAES, X86AES},
		{x.HasPCLMULQDQ, X86PCLMULQDQ},
		{x.HasAVX, X86AVX},
		{x.HasAVX2, X86AVX2},
		{x.HasFMA, X86FMA},
		{x.HasAVX && x.HasFMA, X86F16C},
		{x.HasBMI1, X86BMI1},
		{x.HasBMI2, X86BMI2},
		{x.HasADX, X86ADX},
		{x.HasERMS, X86ERMS},
		{x.HasRDRAND, X86RDRAND},
		{x.HasRDSEED, X86RDSEED},
		{x.HasAVX512F, X86AVX512F},
		{x.HasAVX512CD, X86AVX512CD},
		{x.HasAVX512BW, X86AVX512BW},
		{x.HasAVX512DQ, X86AVX512DQ},
		{x.HasAVX512VL, X86AVX512VL},
		{x.HasAVX512IFMA, X86AVX512IFMA},
		{x.HasAVX512VBMI, X86AVX512VBMI},
		{x.HasAVX512VBMI2, X86AVX512VBMI2},
		{x.HasAVX512VNNI, X86AVX512VNNI},
		{x.HasAVX512BITALG, X86AVX512BITALG},
		{x.HasAVX512VPOPCNTDQ, X86AVX512VPOPCNTDQ},
		{x.HasAVX512BF16, X86AVX512BF16},
		{x.HasAVX512GFNI || cpuid.CPU.Supports(cpuid.GFNI), X86GFNI},
		{x.HasAVX512VAES || cpuid.CPU.Supports(cpuid.VAES), X86VAES},
		{x.HasAVX512VPCLMULQDQ, X86VPCLMULQDQ},
	}

	var set Set
	for _, fl := range flags {
		if fl.has {
			set = set.With(fl.f)
		}
	}
	return Snapshot{arch: Current, set: set}
}
