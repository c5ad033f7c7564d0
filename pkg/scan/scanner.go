package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Scanner walks the two-level corpus layout (one subdirectory per law
// id, one XML file per revision) and accumulates the discovered
// revisions into per-law chains. Files whose names do not match the
// revision grammar, or whose dates fall outside the era table, are
// skipped with a warning; only filesystem failures abort the scan.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner creates a Scanner. A nil logger falls back to
// slog.Default.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{logger: logger}
}

// Report summarizes one corpus scan.
type Report struct {
	// Discovered counts every regular file seen under the corpus root.
	Discovered int
	// Accepted counts files added to a revision chain.
	Accepted int
	// Skipped counts files rejected with a per-file warning.
	Skipped int
}

// Scan walks the corpus under root and returns the populated chain
// builder together with a scan report. The walk is sequential; entry
// order within a directory is irrelevant to the result.
func (s *Scanner) Scan(root string) (*ChainBuilder, *Report, error) {
	builder := NewChainBuilder()
	report := &Report{}

	rootEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read corpus root %s: %w", root, err)
	}

	for _, rootEntry := range rootEntries {
		if !rootEntry.IsDir() {
			continue
		}
		dirName := rootEntry.Name()

		lawEntries, err := os.ReadDir(filepath.Join(root, dirName))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read law directory %s: %w", dirName, err)
		}

		for _, lawEntry := range lawEntries {
			if lawEntry.IsDir() {
				continue
			}
			fileName := lawEntry.Name()
			report.Discovered++

			s.logger.Debug("discovered revision file",
				slog.String("dir", dirName), slog.String("file", fileName))

			_, info, err := PatchInfoFromName(dirName, fileName)
			if err != nil {
				s.logger.Warn("skipping file",
					slog.String("file", fileName), slog.String("reason", err.Error()))
				report.Skipped++
				continue
			}

			builder.Add(info)
			report.Accepted++
		}
	}

	return builder, report, nil
}
