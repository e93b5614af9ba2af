package vecmath

import (
	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/dispatch"
)

// Strategy names reported by Implementations.
const (
	StrategyIndirect = "indirect"
	StrategyDirect   = "direct"
	StrategyStatic   = "static"
)

// Implementation describes the variant an operation runs on this CPU.
type Implementation struct {
	Op          string
	Variant     string
	Requirement string
	Strategy    string

	// Variants lists every variant of the operation in resolution order.
	Variants []string
}

// Implementations reports the selected variant of every operation in a
// stable order. Cached tables are resolved as a side effect.
func Implementations() []Implementation {
	return []Implementation{
		describe(addBlockTable, StrategyIndirect),
		describe(addBlockInPlaceTable, StrategyIndirect),
		describe(mulBlockTable, StrategyIndirect),
		describe(mulBlockInPlaceTable, StrategyIndirect),
		describe(scaleBlockTable, StrategyIndirect),
		describe(scaleBlockInPlaceTable, StrategyIndirect),
		describe(addMulBlockTable, StrategyIndirect),
		describe(mulAddBlockTable, StrategyIndirect),
		describe(sumTable, StrategyIndirect),
		describe(dotProductTable, StrategyIndirect),
		describe(maxAbsTable, StrategyDirect),
		describe(magnitudeTable, StrategyIndirect),
		describe(powerTable, StrategyIndirect),
		describe(normalizeTable, StrategyStatic),
	}
}

func describe[F any](t *dispatch.Table[F], strategy string) Implementation {
	var e dispatch.Entry[F]
	if strategy == StrategyDirect {
		// Direct branches may assume what the binary was compiled for.
		e = t.SelectEntry(cpu.Detect().Union(cpu.Guaranteed().Set()))
	} else {
		sel := t.Selected()
		e = t.Entries()[sel.Index]
	}

	entries := t.Entries()
	names := make([]string, len(entries))
	for i, v := range entries {
		names[i] = v.Name
	}

	return Implementation{
		Op:          t.Name(),
		Variant:     e.Name,
		Requirement: e.Requirement.String(),
		Strategy:    strategy,
		Variants:    names,
	}
}
