package cpu

import (
	"sync/atomic"

	"github.com/cwbudde/algo-dispatch/internal/logging"
)

// Probe queries the hardware once and reports what it found. A probe must be
// a pure function of the running CPU: calling it twice returns equal values.
type Probe func() Snapshot

// Detector publishes the result of a Probe exactly once.
//
// Concurrent first callers of Snapshot may each run the probe. The first to
// publish wins and every caller, including the losers, returns the winning
// value. No lock is held while probing.
type Detector struct {
	probe Probe
	snap  atomic.Pointer[Snapshot]
}

// NewDetector returns a Detector over probe. A nil probe uses the
// environment-configured default (see ConfigFromEnv and NewProbe).
func NewDetector(probe Probe) *Detector {
	return &Detector{probe: probe}
}

// Snapshot returns the published snapshot, probing on first use.
func (d *Detector) Snapshot() Snapshot {
	if s := d.snap.Load(); s != nil {
		return *s
	}

	probe := d.probe
	if probe == nil {
		probe = NewProbe(ConfigFromEnv())
	}
	s := probe()

	if d.snap.CompareAndSwap(nil, &s) {
		logging.Default().LogDetected(s.Arch().String(), s.String(), s.Set().Len())
		return s
	}
	return *d.snap.Load()
}

// Published reports whether a snapshot has been published.
func (d *Detector) Published() bool {
	return d.snap.Load() != nil
}

var (
	// process is the detector behind Detect.
	process = NewDetector(nil)

	// forced overrides process for tests.
	forced atomic.Pointer[Snapshot]
)

// Detect returns the process-wide feature snapshot.
//
// The snapshot is computed on first use and never changes afterwards. It is
// assumed valid on every core the process runs on. On processors whose cores
// expose different extensions, a variant selected from this snapshot may not
// be executable on a weaker core; this is a known limitation.
func Detect() Snapshot {
	if s := forced.Load(); s != nil {
		return *s
	}
	return process.Snapshot()
}

// Has reports whether f is available on the running CPU.
func Has(f Feature) bool {
	return Detect().Has(f)
}

// HasName reports whether the feature called name is available on the
// running CPU. Unknown names and disabled detection report false.
func HasName(name string) bool {
	return Detect().HasName(name)
}

// Process returns the detector behind Detect. Tables use it unless they are
// given another one.
func Process() *Detector {
	return process
}

// SetForced overrides detection with s.
// This is intended for testing purposes only.
func SetForced(s Snapshot) {
	forced.Store(&s)
}

// ResetDetection clears any forced snapshot and the process detector's
// published value.
// This is intended for testing purposes only.
func ResetDetection() {
	forced.Store(nil)
	process.snap.Store(nil)
}
