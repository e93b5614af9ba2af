package cpu

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

var cpuidX86 = []struct {
	id cpuid.FeatureID
	f  Feature
}{
	{cpuid.SSE, X86SSE},
	{cpuid.SSE2, X86SSE2},
	{cpuid.SSE3, X86SSE3},
	{cpuid.SSSE3, X86SSSE3},
	{cpuid.SSE4, X86SSE41},
	{cpuid.SSE42, X86SSE42},
	{cpuid.POPCNT, X86POPCNT},
	{cpuid.AESNI, X86AES},
	{cpuid.CLMUL, X86PCLMULQDQ},
	{cpuid.AVX, X86AVX},
	{cpuid.AVX2, X86AVX2},
	{cpuid.FMA3, X86FMA},
	{cpuid.F16C, X86F16C},
	{cpuid.BMI1, X86BMI1},
	{cpuid.BMI2, X86BMI2},
	{cpuid.ADX, X86ADX},
	{cpuid.ERMS, X86ERMS},
	{cpuid.RDRAND, X86RDRAND},
	{cpuid.RDSEED, X86RDSEED},
	{cpuid.AVX512F, X86AVX512F},
	{cpuid.AVX512CD, X86AVX512CD},
	{cpuid.AVX512BW, X86AVX512BW},
	{cpuid.AVX512DQ, X86AVX512DQ},
	{cpuid.AVX512VL, X86AVX512VL},
	{cpuid.AVX512IFMA, X86AVX512IFMA},
	{cpuid.AVX512VBMI, X86AVX512VBMI},
	{cpuid.AVX512VBMI2, X86AVX512VBMI2},
	{cpuid.AVX512VNNI, X86AVX512VNNI},
	{cpuid.AVX512BITALG, X86AVX512BITALG},
	{cpuid.AVX512VPOPCNTDQ, X86AVX512VPOPCNTDQ},
	{cpuid.AVX512BF16, X86AVX512BF16},
	{cpuid.GFNI, X86GFNI},
	{cpuid.VAES, X86VAES},
	{cpuid.VPCLMULQDQ, X86VPCLMULQDQ},
}

var cpuidARM64 = []struct {
	id cpuid.FeatureID
	f  Feature
}{
	{cpuid.FP, ARM64FP},
	{cpuid.ASIMD, ARM64ASIMD},
	{cpuid.AESARM, ARM64AES},
	{cpuid.PMULL, ARM64PMULL},
	{cpuid.SHA1, ARM64SHA1},
	{cpuid.SHA2, ARM64SHA2},
	{cpuid.SHA3, ARM64SHA3},
	{cpuid.SHA512, ARM64SHA512},
	{cpuid.SM3, ARM64SM3},
	{cpuid.SM4, ARM64SM4},
	{cpuid.CRC32, ARM64CRC32},
	{cpuid.ATOMICS, ARM64ATOMICS},
	{cpuid.FPHP, ARM64FPHP},
	{cpuid.ASIMDHP, ARM64ASIMDHP},
	{cpuid.ASIMDRDM, ARM64ASIMDRDM},
	{cpuid.ASIMDDP, ARM64ASIMDDP},
	{cpuid.JSCVT, ARM64JSCVT},
	{cpuid.FCMA, ARM64FCMA},
	{cpuid.LRCPC, ARM64LRCPC},
	{cpuid.DCPOP, ARM64DCPOP},
	{cpuid.SVE, ARM64SVE},
}

// On ARM64 some features require explicit detection.
var detectARMOnce sync.Once

// CPUIDProbe reads github.com/klauspost/cpuid/v2. It covers x86 and arm64;
// on other architectures it falls back to XSysProbe.
func CPUIDProbe() Snapshot {
	var set Set
	switch Current.isa() {
	case isaX86:
		for _, m := range cpuidX86 {
			if cpuid.CPU.Supports(m.id) {
				set = set.With(m.f)
			}
		}
	case isaARM64:
		detectARMOnce.Do(cpuid.DetectARM)
		for _, m := range cpuidARM64 {
			if cpuid.CPU.Supports(m.id) {
				set = set.With(m.f)
			}
		}
	default:
		return XSysProbe()
	}
	return Snapshot{arch: Current, set: set}
}

// Info describes the running processor for diagnostics.
type Info struct {
	Arch          Arch
	Vendor        string
	Brand         string
	Family        int
	Model         int
	PhysicalCores int
	LogicalCores  int
	CacheLine     int
	L1D           int
	L2            int
	L3            int
}

// Describe returns processor identification from cpuid. Fields cpuid
// cannot determine are zero or empty.
func Describe() Info {
	if Current.isa() == isaARM64 {
		detectARMOnce.Do(cpuid.DetectARM)
	}
	c := cpuid.CPU
	return Info{
		Arch:          Current,
		Vendor:        c.VendorString,
		Brand:         c.BrandName,
		Family:        c.Family,
		Model:         c.Model,
		PhysicalCores: c.PhysicalCores,
		LogicalCores:  c.LogicalCores,
		CacheLine:     c.CacheLine,
		L1D:           c.Cache.L1D,
		L2:            c.Cache.L2,
		L3:            c.Cache.L3,
	}
}
