package testutil

import (
	"sync/atomic"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/target"
)

// SnapshotOf returns the snapshot of a CPU with exactly the features the
// target string spec requires, implied features included. It panics on a
// malformed spec.
func SnapshotOf(spec string) cpu.Snapshot {
	r := target.MustParse(spec)
	return cpu.MustSnapshot(r.Arch(), r.Closure().Features()...)
}

// CountingProbe wraps a fixed snapshot in a probe that counts its calls.
type CountingProbe struct {
	Snapshot cpu.Snapshot
	calls    atomic.Int64
}

// Probe returns the snapshot and records the call.
func (p *CountingProbe) Probe() cpu.Snapshot {
	p.calls.Add(1)
	return p.Snapshot
}

// Calls returns how often Probe ran.
func (p *CountingProbe) Calls() int64 { return p.calls.Load() }
