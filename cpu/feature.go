package cpu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFeature is returned for a feature name that is not in the
	// catalog of the requested architecture.
	ErrUnknownFeature = errors.New("cpu: unknown feature")

	// ErrFeatureArch is returned when a feature is used with an architecture
	// it does not belong to.
	ErrFeatureArch = errors.New("cpu: feature does not belong to architecture")
)

// Feature identifies one optional instruction-set extension.
//
// Features are scoped to an instruction-set family: the x86 constants are
// valid for both Arch386 and ArchAMD64, the others for their own family only.
type Feature uint8

// x86 and x86-64.
const (
	X86SSE Feature = iota
	X86SSE2
	X86SSE3
	X86SSSE3
	X86SSE41
	X86SSE42
	X86POPCNT
	X86AES
	X86PCLMULQDQ
	X86AVX
	X86AVX2
	X86FMA
	X86F16C
	X86BMI1
	X86BMI2
	X86ADX
	X86ERMS
	X86RDRAND
	X86RDSEED
	X86AVX512F
	X86AVX512CD
	X86AVX512BW
	X86AVX512DQ
	X86AVX512VL
	X86AVX512IFMA
	X86AVX512VBMI
	X86AVX512VBMI2
	X86AVX512VNNI
	X86AVX512BITALG
	X86AVX512VPOPCNTDQ
	X86AVX512BF16
	X86GFNI
	X86VAES
	X86VPCLMULQDQ
)

// AArch64.
const (
	ARM64FP Feature = iota + X86VPCLMULQDQ + 1
	ARM64ASIMD
	ARM64AES
	ARM64PMULL
	ARM64SHA1
	ARM64SHA2
	ARM64SHA3
	ARM64SHA512
	ARM64SM3
	ARM64SM4
	ARM64CRC32
	ARM64ATOMICS
	ARM64FPHP
	ARM64ASIMDHP
	ARM64ASIMDRDM
	ARM64ASIMDDP
	ARM64ASIMDFHM
	ARM64JSCVT
	ARM64FCMA
	ARM64LRCPC
	ARM64DCPOP
	ARM64SVE
	ARM64SVE2
)

// 32-bit ARM.
const (
	ARMNEON Feature = iota + ARM64SVE2 + 1
	ARMVFPv3
	ARMVFPv4
	ARMIDIVA
	ARMAES
	ARMPMULL
	ARMSHA1
	ARMSHA2
	ARMCRC32
)

// POWER.
const (
	PPC64Altivec Feature = iota + ARMCRC32 + 1
	PPC64VSX
	PPC64Power8
	PPC64Power9
	PPC64DARN
	PPC64SCV
)

// IBM Z.
const (
	S390XVX Feature = iota + PPC64SCV + 1
	S390XVXE
	S390XDFP
	S390XAES
	S390XGHASH
	S390XSHA1
	S390XSHA256
	S390XSHA512
	S390XSHA3
)

// RISC-V and MIPS.
const (
	RISCV64C Feature = iota + S390XSHA3 + 1
	RISCV64V
	RISCV64Zba
	RISCV64Zbb
	RISCV64Zbs
	MIPS64MSA

	numFeatures
)

type featureInfo struct {
	name    string
	isa     isa
	aliases []string
	implies []Feature
}

var catalog = [numFeatures]featureInfo{
	X86SSE:             {name: "sse", isa: isaX86},
	X86SSE2:            {name: "sse2", isa: isaX86, implies: []Feature{X86SSE}},
	X86SSE3:            {name: "sse3", isa: isaX86, implies: []Feature{X86SSE2}},
	X86SSSE3:           {name: "ssse3", isa: isaX86, implies: []Feature{X86SSE3}},
	X86SSE41:           {name: "sse4.1", isa: isaX86, aliases: []string{"sse4_1", "sse41"}, implies: []Feature{X86SSSE3}},
	X86SSE42:           {name: "sse4.2", isa: isaX86, aliases: []string{"sse4_2", "sse42"}, implies: []Feature{X86SSE41}},
	X86POPCNT:          {name: "popcnt", isa: isaX86},
	X86AES:             {name: "aes", isa: isaX86, aliases: []string{"aesni"}, implies: []Feature{X86SSE2}},
	X86PCLMULQDQ:       {name: "pclmulqdq", isa: isaX86, aliases: []string{"pclmul", "clmul"}, implies: []Feature{X86SSE2}},
	X86AVX:             {name: "avx", isa: isaX86, implies: []Feature{X86SSE42}},
	X86AVX2:            {name: "avx2", isa: isaX86, implies: []Feature{X86AVX}},
	X86FMA:             {name: "fma", isa: isaX86, aliases: []string{"fma3"}, implies: []Feature{X86AVX}},
	X86F16C:            {name: "f16c", isa: isaX86, implies: []Feature{X86AVX}},
	X86BMI1:            {name: "bmi1", isa: isaX86, aliases: []string{"bmi"}},
	X86BMI2:            {name: "bmi2", isa: isaX86},
	X86ADX:             {name: "adx", isa: isaX86},
	X86ERMS:            {name: "erms", isa: isaX86},
	X86RDRAND:          {name: "rdrand", isa: isaX86},
	X86RDSEED:          {name: "rdseed", isa: isaX86},
	X86AVX512F:         {name: "avx512f", isa: isaX86, implies: []Feature{X86AVX2, X86FMA, X86F16C}},
	X86AVX512CD:        {name: "avx512cd", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512BW:        {name: "avx512bw", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512DQ:        {name: "avx512dq", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512VL:        {name: "avx512vl", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512IFMA:      {name: "avx512ifma", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512VBMI:      {name: "avx512vbmi", isa: isaX86, implies: []Feature{X86AVX512BW}},
	X86AVX512VBMI2:     {name: "avx512vbmi2", isa: isaX86, implies: []Feature{X86AVX512BW}},
	X86AVX512VNNI:      {name: "avx512vnni", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512BITALG:    {name: "avx512bitalg", isa: isaX86, implies: []Feature{X86AVX512BW}},
	X86AVX512VPOPCNTDQ: {name: "avx512vpopcntdq", isa: isaX86, implies: []Feature{X86AVX512F}},
	X86AVX512BF16:      {name: "avx512bf16", isa: isaX86, implies: []Feature{X86AVX512BW}},
	X86GFNI:            {name: "gfni", isa: isaX86, implies: []Feature{X86SSE2}},
	X86VAES:            {name: "vaes", isa: isaX86, implies: []Feature{X86AVX2, X86AES}},
	X86VPCLMULQDQ:      {name: "vpclmulqdq", isa: isaX86, implies: []Feature{X86AVX, X86PCLMULQDQ}},

	ARM64FP:       {name: "fp", isa: isaARM64},
	ARM64ASIMD:    {name: "asimd", isa: isaARM64, aliases: []string{"neon"}, implies: []Feature{ARM64FP}},
	ARM64AES:      {name: "aes", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64PMULL:    {name: "pmull", isa: isaARM64, implies: []Feature{ARM64AES}},
	ARM64SHA1:     {name: "sha1", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64SHA2:     {name: "sha2", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64SHA3:     {name: "sha3", isa: isaARM64, implies: []Feature{ARM64SHA2}},
	ARM64SHA512:   {name: "sha512", isa: isaARM64, implies: []Feature{ARM64SHA2}},
	ARM64SM3:      {name: "sm3", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64SM4:      {name: "sm4", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64CRC32:    {name: "crc32", isa: isaARM64, aliases: []string{"crc"}},
	ARM64ATOMICS:  {name: "atomics", isa: isaARM64, aliases: []string{"lse"}},
	ARM64FPHP:     {name: "fphp", isa: isaARM64, implies: []Feature{ARM64FP}},
	ARM64ASIMDHP:  {name: "asimdhp", isa: isaARM64, aliases: []string{"fp16"}, implies: []Feature{ARM64ASIMD, ARM64FPHP}},
	ARM64ASIMDRDM: {name: "asimdrdm", isa: isaARM64, aliases: []string{"rdm"}, implies: []Feature{ARM64ASIMD}},
	ARM64ASIMDDP:  {name: "asimddp", isa: isaARM64, aliases: []string{"dotprod"}, implies: []Feature{ARM64ASIMD}},
	ARM64ASIMDFHM: {name: "asimdfhm", isa: isaARM64, aliases: []string{"fhm"}, implies: []Feature{ARM64ASIMDHP}},
	ARM64JSCVT:    {name: "jscvt", isa: isaARM64, implies: []Feature{ARM64FP}},
	ARM64FCMA:     {name: "fcma", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64LRCPC:    {name: "lrcpc", isa: isaARM64, aliases: []string{"rcpc"}},
	ARM64DCPOP:    {name: "dcpop", isa: isaARM64, aliases: []string{"dpb"}},
	ARM64SVE:      {name: "sve", isa: isaARM64, implies: []Feature{ARM64ASIMD}},
	ARM64SVE2:     {name: "sve2", isa: isaARM64, implies: []Feature{ARM64SVE}},

	ARMNEON:  {name: "neon", isa: isaARM, implies: []Feature{ARMVFPv3}},
	ARMVFPv3: {name: "vfpv3", isa: isaARM, aliases: []string{"vfp3"}},
	ARMVFPv4: {name: "vfpv4", isa: isaARM, aliases: []string{"vfp4"}, implies: []Feature{ARMVFPv3}},
	ARMIDIVA: {name: "idiva", isa: isaARM},
	ARMAES:   {name: "aes", isa: isaARM, implies: []Feature{ARMNEON}},
	ARMPMULL: {name: "pmull", isa: isaARM, implies: []Feature{ARMNEON}},
	ARMSHA1:  {name: "sha1", isa: isaARM, implies: []Feature{ARMNEON}},
	ARMSHA2:  {name: "sha2", isa: isaARM, implies: []Feature{ARMNEON}},
	ARMCRC32: {name: "crc32", isa: isaARM, aliases: []string{"crc"}},

	PPC64Altivec: {name: "altivec", isa: isaPPC64},
	PPC64VSX:     {name: "vsx", isa: isaPPC64, implies: []Feature{PPC64Altivec}},
	PPC64Power8:  {name: "power8", isa: isaPPC64, aliases: []string{"power8-vector"}, implies: []Feature{PPC64VSX}},
	PPC64Power9:  {name: "power9", isa: isaPPC64, aliases: []string{"power9-vector"}, implies: []Feature{PPC64Power8}},
	PPC64DARN:    {name: "darn", isa: isaPPC64},
	PPC64SCV:     {name: "scv", isa: isaPPC64},

	S390XVX:     {name: "vx", isa: isaS390X, aliases: []string{"vector"}},
	S390XVXE:    {name: "vxe", isa: isaS390X, implies: []Feature{S390XVX}},
	S390XDFP:    {name: "dfp", isa: isaS390X},
	S390XAES:    {name: "aes", isa: isaS390X},
	S390XGHASH:  {name: "ghash", isa: isaS390X},
	S390XSHA1:   {name: "sha1", isa: isaS390X},
	S390XSHA256: {name: "sha256", isa: isaS390X},
	S390XSHA512: {name: "sha512", isa: isaS390X},
	S390XSHA3:   {name: "sha3", isa: isaS390X},

	RISCV64C:   {name: "c", isa: isaRISCV64},
	RISCV64V:   {name: "v", isa: isaRISCV64},
	RISCV64Zba: {name: "zba", isa: isaRISCV64},
	RISCV64Zbb: {name: "zbb", isa: isaRISCV64},
	RISCV64Zbs: {name: "zbs", isa: isaRISCV64},

	MIPS64MSA: {name: "msa", isa: isaMIPS64},
}

// byName indexes the catalog by instruction-set family and lowercase name or
// alias.
var byName = func() map[isa]map[string]Feature {
	m := make(map[isa]map[string]Feature)
	for f := Feature(0); f < numFeatures; f++ {
		info := catalog[f]
		names := m[info.isa]
		if names == nil {
			names = make(map[string]Feature)
			m[info.isa] = names
		}
		names[info.name] = f
		for _, alias := range info.aliases {
			names[alias] = f
		}
	}
	return m
}()

// String returns the canonical feature name.
func (f Feature) String() string {
	if f.valid() {
		return catalog[f].name
	}
	return fmt.Sprintf("feature(%d)", uint8(f))
}

// ValidFor reports whether f belongs to the feature namespace of a.
func (f Feature) ValidFor(a Arch) bool {
	return f.valid() && a.isa() != isaNone && catalog[f].isa == a.isa()
}

// Implies returns the features directly implied by f.
func (f Feature) Implies() []Feature {
	if !f.valid() {
		return nil
	}
	out := make([]Feature, len(catalog[f].implies))
	copy(out, catalog[f].implies)
	return out
}

func (f Feature) valid() bool {
	return f < numFeatures
}

// LookupFeature finds the feature called name (canonical name or alias,
// case-insensitive) in the namespace of a.
func LookupFeature(a Arch, name string) (Feature, bool) {
	names := byName[a.isa()]
	if names == nil {
		return 0, false
	}
	f, ok := names[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// ParseFeatures resolves names in the namespace of a.
func ParseFeatures(a Arch, names ...string) ([]Feature, error) {
	out := make([]Feature, 0, len(names))
	for _, name := range names {
		f, ok := LookupFeature(a, name)
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownFeature, name, a)
		}
		out = append(out, f)
	}
	return out, nil
}

// FeaturesOf returns the catalog of a in declaration order.
func FeaturesOf(a Arch) []Feature {
	var out []Feature
	for f := Feature(0); f < numFeatures; f++ {
		if f.ValidFor(a) {
			out = append(out, f)
		}
	}
	return out
}
