//go:build !386 && !amd64 && !arm && !arm64 && !ppc64 && !ppc64le && !s390x && !riscv64 && !mips64 && !mips64le

package cpu

// XSysProbe reports no features on architectures without a probe.
func XSysProbe() Snapshot {
	return Empty(Current)
}
