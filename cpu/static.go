package cpu

// Guaranteed returns the features the binary may assume from its compile
// target. A binary built for GOAMD64=v3 cannot start on a CPU without AVX2,
// so those features hold without querying the hardware.
func Guaranteed() Snapshot {
	return Snapshot{arch: Current, set: staticFeatures}
}
