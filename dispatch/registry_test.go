package dispatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-dispatch/cpu"
	"github.com/cwbudde/algo-dispatch/target"
)

func TestRegistryRegister(t *testing.T) {
	reg := &Registry[kernel]{}

	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})
	reg.Register(entry("avx2", "amd64+avx2"))

	entries := reg.ListEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "generic", entries[0].Name)
}

func TestRegistryBuildPriority(t *testing.T) {
	reg := &Registry[kernel]{}

	// Registered in random order to test sorting.
	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})
	reg.Register(Entry[kernel]{Name: "avx", Requirement: target.MustParse("amd64+avx"), Priority: 10, Fn: named("avx")})
	reg.Register(Entry[kernel]{Name: "avx2", Requirement: target.MustParse("amd64+avx2"), Priority: 20, Fn: named("avx2")})
	reg.Register(Entry[kernel]{Name: "neon", Requirement: target.MustParse("arm64+neon"), Priority: 15, Fn: named("neon")})

	tbl, err := reg.Build("priority", WithSnapshot(func() cpu.Snapshot { return avxChain(cpu.X86AVX2) }))
	require.NoError(t, err)

	var names []string
	for _, e := range tbl.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"avx2", "neon", "avx", DefaultName}, names)
	assert.Equal(t, "avx2", tbl.Get()())
	assert.Equal(t, "generic", tbl.Default()())
}

func TestRegistryTiesGoToSpecificity(t *testing.T) {
	reg := &Registry[kernel]{}
	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})
	reg.Register(entry("avx", "amd64+avx"))
	reg.Register(entry("v3", "amd64/x86-64-v3"))

	tbl, err := reg.Build("ties")
	require.NoError(t, err)
	assert.Equal(t, "v3", tbl.Entries()[0].Name)
}

func TestRegistryLookup(t *testing.T) {
	tests := []struct {
		name string
		snap cpu.Snapshot
		want string
	}{
		{"avx2 available - select avx2", avxChain(cpu.X86AVX2), "avx2"},
		{"avx only - select avx", avxChain(), "avx"},
		{"no simd - select generic", cpu.Empty(cpu.ArchAMD64), "generic"},
		{"arm64 - select neon", cpu.MustSnapshot(cpu.ArchARM64, cpu.ARM64FP, cpu.ARM64ASIMD), "neon"},
	}

	reg := &Registry[kernel]{}
	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})
	reg.Register(Entry[kernel]{Name: "avx2", Requirement: target.MustParse("amd64+avx2"), Priority: 20, Fn: named("avx2")})
	reg.Register(Entry[kernel]{Name: "avx", Requirement: target.MustParse("amd64+avx"), Priority: 10, Fn: named("avx")})
	reg.Register(Entry[kernel]{Name: "neon", Requirement: target.MustParse("arm64+neon"), Priority: 10, Fn: named("neon")})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.snap)
			require.NotNil(t, entry)
			assert.Equal(t, tt.want, entry.Name)
		})
	}

	empty := &Registry[kernel]{}
	assert.Nil(t, empty.Lookup(avxChain()))
}

func TestRegistryBuildErrors(t *testing.T) {
	reg := &Registry[kernel]{}
	reg.Register(entry("avx2", "amd64+avx2"))

	_, err := reg.Build("no-default")
	require.ErrorIs(t, err, ErrNoDefault)

	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})
	reg.Register(Entry[kernel]{Name: "purego", Fn: named("purego")})
	_, err = reg.Build("two-defaults")
	require.ErrorIs(t, err, ErrMultipleDefaults)

	assert.Panics(t, func() { reg.MustBuild("two-defaults") })

	reg.Reset()
	assert.Empty(t, reg.ListEntries())

	// A low-priority specific entry sorted after a general one is shadowed.
	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})
	reg.Register(Entry[kernel]{Name: "avx", Requirement: target.MustParse("amd64+avx"), Priority: 20, Fn: named("avx")})
	reg.Register(Entry[kernel]{Name: "avx2", Requirement: target.MustParse("amd64+avx2"), Priority: 10, Fn: named("avx2")})
	_, err = reg.Build("shadowed")
	require.ErrorIs(t, err, ErrShadowedEntry)
}

func TestRegistryBuildDuringRegister(t *testing.T) {
	reg := &Registry[kernel]{}
	reg.Register(Entry[kernel]{Name: "generic", Fn: named("generic")})

	specs := []string{"amd64+sse2", "amd64+avx", "amd64+avx2", "amd64/x86-64-v3", "amd64/x86-64-v4"}

	var g errgroup.Group
	g.Go(func() error {
		for i, spec := range specs {
			reg.Register(Entry[kernel]{Name: spec, Requirement: target.MustParse(spec), Priority: i, Fn: named(spec)})
		}
		return nil
	})
	for range 8 {
		g.Go(func() error {
			tbl, err := reg.Build("racing")
			if err != nil {
				return err
			}
			entries := tbl.Entries()
			for i := 1; i < len(entries)-1; i++ {
				if before(entries[i], entries[i-1]) {
					return fmt.Errorf("entry %q sorted after %q", entries[i].Name, entries[i-1].Name)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	tbl := reg.MustBuild("settled")
	assert.Equal(t, "amd64/x86-64-v4", tbl.Entries()[0].Name)
	assert.Equal(t, len(specs)+1, tbl.Len())
}
