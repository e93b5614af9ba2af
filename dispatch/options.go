package dispatch

import (
	"log/slog"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/internal/logging"
)

// Option configures a Table.
type Option func(*options)

type options struct {
	snapshot   func() cpu.Snapshot
	guaranteed cpu.Snapshot
	logger     *logging.Logger
}

func defaultOptions() options {
	return options{
		snapshot:   cpu.Detect,
		guaranteed: cpu.Guaranteed(),
	}
}

// WithDetector makes the table resolve against d instead of the process-wide
// detector.
func WithDetector(d *cpu.Detector) Option {
	return func(o *options) {
		if d != nil {
			o.snapshot = d.Snapshot
		}
	}
}

// WithSnapshot makes the table resolve against the snapshot returned by fn.
// fn must be idempotent.
func WithSnapshot(fn func() cpu.Snapshot) Option {
	return func(o *options) {
		if fn != nil {
			o.snapshot = fn
		}
	}
}

// WithLogger sets the logger for resolution records. Without it the table
// logs to logging.Default at resolution time.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = logging.Wrap(l)
		}
	}
}

// WithGuaranteed replaces the compile-time guarantee the table may assume
// without detection. The default is cpu.Guaranteed(). Passing an empty
// snapshot makes every resolution consult the snapshot source.
func WithGuaranteed(s cpu.Snapshot) Option {
	return func(o *options) {
		o.guaranteed = s
	}
}
