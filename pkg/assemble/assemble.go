// Package assemble combines extracted XML fields, filename-derived
// revision metadata, and (optionally) the external identifier
// registry into final law records.
package assemble

import (
	"log/slog"

	"github.com/coolbeans/lawindex/pkg/extract"
	"github.com/coolbeans/lawindex/pkg/law"
	"github.com/coolbeans/lawindex/pkg/registry"
)

// Assembler builds LawRecord values. With a registry attached, the
// law's canonical id and name come from the registry keyed by the
// extracted law number; a miss drops the record with a warning, never
// an error. Without a registry, the name comes from the extracted
// title and the id from the file name.
type Assembler struct {
	logger *slog.Logger
	reg    *registry.Registry
}

// New creates an Assembler. reg may be nil to disable registry
// resolution. A nil logger falls back to slog.Default.
func New(logger *slog.Logger, reg *registry.Registry) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger, reg: reg}
}

// Assemble merges the extracted fields of the authoritative revision
// with the ordered revision chain. The chain must already be in
// ascending date order; it is attached as-is. The boolean is false
// when the record was dropped on a registry miss.
func (a *Assembler) Assemble(fields *extract.Fields, authoritative law.PatchInfo, chain []law.PatchInfo) (law.LawRecord, bool) {
	record := law.LawRecord{
		Date:  fields.Date,
		File:  authoritative.Path(),
		Name:  fields.Title,
		Num:   fields.Num,
		ID:    authoritative.ID,
		Patch: chain,
	}

	if a.reg != nil {
		entry, ok := a.reg.Lookup(fields.Num)
		if !ok {
			a.logger.Warn("law number not found in registry, dropping record",
				slog.String("num", fields.Num), slog.String("file", record.File))
			return law.LawRecord{}, false
		}
		record.ID = entry.ID
		record.Name = entry.Name
	}

	return record, true
}
