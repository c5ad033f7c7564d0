package scan

import (
	"sort"

	"github.com/samber/lo"

	"github.com/coolbeans/lawindex/pkg/law"
)

// ChainBuilder accumulates revision entries keyed by law id as the
// corpus walk discovers files. Discovery order carries no meaning:
// chains are ordered only when read back out. The builder is plain
// owned state for a sequential scan; it is not safe for concurrent
// use.
type ChainBuilder struct {
	chains map[string][]law.PatchInfo
}

// NewChainBuilder returns an empty builder.
func NewChainBuilder() *ChainBuilder {
	return &ChainBuilder{chains: make(map[string][]law.PatchInfo)}
}

// Add records one revision entry under its law id.
func (b *ChainBuilder) Add(info law.PatchInfo) {
	b.chains[info.ID] = append(b.chains[info.ID], info)
}

// Len returns the number of distinct law ids seen so far.
func (b *ChainBuilder) Len() int {
	return len(b.chains)
}

// LawIDs returns every law id seen so far in lexicographic order.
func (b *ChainBuilder) LawIDs() []string {
	ids := lo.Keys(b.chains)
	sort.Strings(ids)
	return ids
}

// Ordered returns the revision chain for a law id in ascending date
// order. Entries sharing an exact date are tie-broken by patch id,
// then file name, so the order is total and independent of discovery
// order. The returned slice is a copy.
func (b *ChainBuilder) Ordered(id string) []law.PatchInfo {
	entries := b.chains[id]
	ordered := make([]law.PatchInfo, len(entries))
	copy(ordered, entries)
	sort.Slice(ordered, func(i, j int) bool {
		return patchBefore(ordered[i], ordered[j])
	})
	return ordered
}

// Authoritative returns the revision with the latest patch date, the
// entry whose file content supplies the law's name and number fields.
// The second return is false when the id has never been seen.
func (b *ChainBuilder) Authoritative(id string) (law.PatchInfo, bool) {
	entries := b.chains[id]
	if len(entries) == 0 {
		return law.PatchInfo{}, false
	}
	latest := lo.MaxBy(entries, func(a, b law.PatchInfo) bool {
		return patchBefore(b, a)
	})
	return latest, true
}

// patchBefore is the total order used for chains: patch date, then
// patch id, then file name.
func patchBefore(a, b law.PatchInfo) bool {
	if c := a.PatchDate.Compare(b.PatchDate); c != 0 {
		return c < 0
	}
	if a.PatchID != b.PatchID {
		return a.PatchID < b.PatchID
	}
	return a.File < b.File
}
