//go:build arm64

package cpu

import (
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads the HWCAP bits exposed by golang.org/x/sys/cpu.
//
// On ARMv8 (arm64), FP and ASIMD are mandatory; the kernel still reports
// them and they are taken as reported.
func XSysProbe() Snapshot {
	a := xcpu.ARM64
	flags := []struct {
		has bool
		f   Feature
	}{
		{a.HasFP, ARM64FP},
		{a.HasASIMD, ARM64ASIMD},
		{a.HasAES, ARM64AES},
		{a.HasPMULL, ARM64PMULL},
		{a.HasSHA1, ARM64SHA1},
		{a.HasSHA2, ARM64SHA2},
		{a.HasSHA3, ARM64SHA3},
		{a.HasSHA512, ARM64SHA512},
		{a.HasSM3, ARM64SM3},
		{a.HasSM4, ARM64SM4},
		{a.HasCRC32, ARM64CRC32},
		{a.HasATOMICS, ARM64ATOMICS},
		{a.HasFPHP, ARM64FPHP},
		{a.HasASIMDHP, ARM64ASIMDHP},
		{a.HasASIMDRDM, ARM64ASIMDRDM},
		{a.HasASIMDDP, ARM64ASIMDDP},
		{a.HasASIMDFHM, ARM64ASIMDFHM},
		{a.HasJSCVT, ARM64JSCVT},
		{a.HasFCMA, ARM64FCMA},
		{a.HasLRCPC, ARM64LRCPC},
		{a.HasDCPOP, ARM64DCPOP},
		{a.HasSVE, ARM64SVE},
		{a.HasSVE2, ARM64SVE2},
	}

	var set Set
	for _, fl := range flags {
		if fl.has {
			set = set.With(fl.f)
		}
	}
	return Snapshot{arch: Current, set: set}
}
