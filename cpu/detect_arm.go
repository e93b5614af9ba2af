//go:build arm

package cpu

import (
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads the HWCAP bits exposed by golang.org/x/sys/cpu.
func XSysProbe() Snapshot {
	a := xcpu.ARM
	flags := []struct {
		has bool
		f   Feature
	}{
		{a.HasNEON, ARMNEON},
		{a.HasVFPv3, ARMVFPv3},
		{a.HasVFPv4, ARMVFPv4},
		{a.HasIDIVA, ARMIDIVA},
		{a.HasAES, ARMAES},
		{a.HasPMULL, ARMPMULL},
		{a.HasSHA1, ARMSHA1},
		{a.HasSHA2, ARMSHA2},
		{a.HasCRC32, ARMCRC32},
	}

	var set Set
	for _, fl := range flags {
		if fl.has {
			set = set.With(fl.f)
		}
	}
	return Snapshot{arch: Current, set: set}
}
