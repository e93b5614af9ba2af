//go:build riscv64

package cpu

import (
	xcpu "golang.org/x/sys/cpu"
)

// XSysProbe reads golang.org/x/sys/cpu.RISCV64.
func XSysProbe() Snapshot {
	r := xcpu.RISCV64
	flags := []struct {
		has bool
		f   Feature
	}{
		{r.HasC, RISCV64C},
		{r.HasV, RISCV64V},
		{r.HasZba, RISCV64Zba},
		{r.HasZbb, RISCV64Zbb},
		{r.HasZbs, RISCV64Zbs},
	}

	var set Set
	for _, fl := range flags {
		if fl.has {
			set = set.With(fl.f)
		}
	}
	return Snapshot{arch: Current, set: set}
}
