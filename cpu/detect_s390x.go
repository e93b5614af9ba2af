//go:build s390x

package cpu

import (
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads the facility bits exposed by golang.org/x/sys/cpu.
func XSysProbe() Snapshot {
	z := xcpu.S390X
	flags := []struct {
		has bool
		f   Feature
	}{
		{z.HasVX, S390XVX},
		{z.HasVXE, S390XVXE},
		{z.HasDFP, S390XDFP},
		{z.HasAES, S390XAES},
		{z.HasGHASH, S390XGHASH},
		{z.HasSHA1, S390XSHA1},
		{z.HasSHA256, S390XSHA256},
		{z.HasSHA512, S390XSHA512},
		{z.HasSHA3, S390XSHA3},
	}

	var set Set
	for _, fl := range flags {
		if fl.has {
			set = set.With(fl.f)
		}
	}
	return Snapshot{arch: Current, set: set}
}
