// Package cpu provides CPU feature detection for runtime kernel selection.
//
// The package describes the instruction-set extensions of the running
// processor as an immutable Snapshot: an architecture family plus a set of
// Features drawn from a static catalog. Detection is performed lazily on the
// first call to Detect and the result is published once for the lifetime of
// the process. Concurrent first callers may each query the hardware, but all
// of them observe the single published value.
//
// Detection never fails. On an architecture without a probe, or when
// detection is disabled through DISPATCH_NO_DETECT, the snapshot is empty and
// every feature query reports false.
package cpu

import (
	"runtime"
	"strings"
)

// Arch is an architecture family tag.
type Arch uint8

const (
	// ArchUnknown is any architecture outside the supported families.
	ArchUnknown Arch = iota

	// Arch386 is 32-bit x86.
	Arch386

	// ArchAMD64 is x86-64.
	ArchAMD64

	// ArchARM is 32-bit ARM.
	ArchARM

	// ArchARM64 is AArch64.
	ArchARM64

	// ArchPPC64 is 64-bit POWER, either endianness.
	ArchPPC64

	// ArchS390X is IBM Z.
	ArchS390X

	// ArchRISCV64 is 64-bit RISC-V.
	ArchRISCV64

	// ArchMIPS64 is 64-bit MIPS, either endianness.
	ArchMIPS64

	// ArchLoong64 is LoongArch64.
	ArchLoong64

	// ArchWasm is WebAssembly.
	ArchWasm
)

var archNames = [...]string{
	ArchUnknown: "unknown",
	Arch386:     "386",
	ArchAMD64:   "amd64",
	ArchARM:     "arm",
	ArchARM64:   "arm64",
	ArchPPC64:   "ppc64",
	ArchS390X:   "s390x",
	ArchRISCV64: "riscv64",
	ArchMIPS64:  "mips64",
	ArchLoong64: "loong64",
	ArchWasm:    "wasm",
}

var archAliases = map[string]Arch{
	"386":       Arch386,
	"x86":       Arch386,
	"i386":      Arch386,
	"i686":      Arch386,
	"amd64":     ArchAMD64,
	"x86_64":    ArchAMD64,
	"x86-64":    ArchAMD64,
	"arm":       ArchARM,
	"arm64":     ArchARM64,
	"aarch64":   ArchARM64,
	"ppc64":     ArchPPC64,
	"ppc64le":   ArchPPC64,
	"powerpc64": ArchPPC64,
	"s390x":     ArchS390X,
	"riscv64":   ArchRISCV64,
	"mips64":    ArchMIPS64,
	"mips64le":  ArchMIPS64,
	"loong64":   ArchLoong64,
	"wasm":      ArchWasm,
	"wasm32":    ArchWasm,
}

// Current is the architecture family of the running binary.
var Current = archOf(runtime.GOARCH)

// String returns the canonical name of the architecture family.
func (a Arch) String() string {
	if int(a) < len(archNames) {
		return archNames[a]
	}
	return archNames[ArchUnknown]
}

// Known reports whether a is one of the supported families.
func (a Arch) Known() bool {
	return a != ArchUnknown && int(a) < len(archNames)
}

// ParseArch maps a GOARCH name or a common alias (x86_64, aarch64, ...) to an
// architecture family.
func ParseArch(s string) (Arch, bool) {
	a, ok := archAliases[strings.ToLower(strings.TrimSpace(s))]
	return a, ok
}

// Arches returns every known architecture family.
func Arches() []Arch {
	out := make([]Arch, 0, len(archNames)-1)
	for a := Arch386; int(a) < len(archNames); a++ {
		out = append(out, a)
	}
	return out
}

func archOf(goarch string) Arch {
	if a, ok := ParseArch(goarch); ok {
		return a
	}
	return ArchUnknown
}

// isa groups the architectures that share one feature namespace.
type isa uint8

const (
	isaNone isa = iota
	isaX86
	isaARM64
	isaARM
	isaPPC64
	isaS390X
	isaRISCV64
	isaMIPS64
)

func (a Arch) isa() isa {
	switch a {
	case Arch386, ArchAMD64:
		return isaX86
	case ArchARM64:
		return isaARM64
	case ArchARM:
		return isaARM
	case ArchPPC64:
		return isaPPC64
	case ArchS390X:
		return isaS390X
	case ArchRISCV64:
		return isaRISCV64
	case ArchMIPS64:
		return isaMIPS64
	default:
		return isaNone
	}
}
