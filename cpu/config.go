package cpu

import (
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dispatch/internal/logging"
)

// Environment variables read by ConfigFromEnv.
const (
	// EnvNoDetect disables detection. Any non-empty value other than a false
	// boolean ("0", "false", ...) counts as set.
	EnvNoDetect = "DISPATCH_NO_DETECT"

	// EnvDetector selects the probe backend: "xsys" (default) or "cpuid".
	EnvDetector = "DISPATCH_DETECTOR"

	// EnvDisable holds a comma-separated list of feature names to mask out.
	EnvDisable = "DISPATCH_DISABLE"
)

// Detector backends accepted in Config.Detector.
const (
	DetectorXSys  = "xsys"
	DetectorCPUID = "cpuid"
)

// Config controls how the default probe behaves.
type Config struct {
	// NoDetect yields the empty snapshot without querying the hardware.
	NoDetect bool

	// Detector names the probe backend. Empty means DetectorXSys.
	Detector string

	// Disable lists feature names to remove from the detected snapshot.
	// Features implying a disabled feature are removed as well.
	Disable []string
}

// ConfigFromEnv reads EnvNoDetect, EnvDetector and EnvDisable.
func ConfigFromEnv() Config {
	return Config{
		NoDetect: envBool(os.Getenv(EnvNoDetect)),
		Detector: strings.ToLower(strings.TrimSpace(os.Getenv(EnvDetector))),
		Disable:  splitList(os.Getenv(EnvDisable)),
	}
}

// NewProbe builds the probe described by cfg for Current.
//
// The detected snapshot is the union of the backend's result and
// Guaranteed, minus the disabled features. Unknown backends and feature
// names are logged and ignored.
func NewProbe(cfg Config) Probe {
	return newProbeFor(Current, cfg, backend(cfg.Detector))
}

func newProbeFor(a Arch, cfg Config, base Probe) Probe {
	if cfg.NoDetect {
		return func() Snapshot { return Empty(a) }
	}

	var masked Set
	for _, name := range cfg.Disable {
		f, ok := LookupFeature(a, name)
		if !ok {
			logging.Default().LogIgnoredFeature(EnvDisable, name, a.String())
			continue
		}
		masked = masked.With(f)
	}

	return func() Snapshot {
		s := base()
		if s.Arch() != a {
			s = Empty(a)
		}
		if a == Current {
			s = s.Union(Guaranteed().Set())
		}
		return s.Mask(masked)
	}
}

func backend(name string) Probe {
	switch name {
	case "", DetectorXSys:
		return XSysProbe
	case DetectorCPUID:
		return CPUIDProbe
	default:
		logging.Default().LogIgnoredSetting(EnvDetector, name)
		return XSysProbe
	}
}

func envBool(val string) bool {
	val = strings.TrimSpace(val)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
