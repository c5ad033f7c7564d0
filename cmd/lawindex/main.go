package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coolbeans/lawindex/pkg/assemble"
	"github.com/coolbeans/lawindex/pkg/extract"
	"github.com/coolbeans/lawindex/pkg/output"
	"github.com/coolbeans/lawindex/pkg/registry"
	"github.com/coolbeans/lawindex/pkg/scan"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lawindex",
		Short: "Japanese law corpus metadata indexer",
		Long: `Lawindex extracts structured metadata from the XML corpus
distributed by the e-Gov law search service and assembles an indexed
JSON record per law.

For every law it produces the promulgation date on the era calendar,
the law title and number, the canonical law id, and the full revision
history in ascending date order.`,
		Version: version,
	}

	rootCmd.AddCommand(listupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listup",
		Short: "List up every law in a corpus into a JSON index",
		Long: `Walk a corpus directory (one subdirectory per law id, one XML
file per revision), extract each law's metadata, and write the index
as a JSON array.

With --registry, the law's canonical id and name are resolved through
the all_law_list.csv registry keyed by the extracted law number;
records whose law number is absent from the registry are dropped with
a warning.

Example:
  lawindex listup --work path/to/law_xml_directory --output output.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, _ := cmd.Flags().GetString("work")
			outputPath, _ := cmd.Flags().GetString("output")
			registryPath, _ := cmd.Flags().GetString("registry")
			verbose, _ := cmd.Flags().GetBool("verbose")

			if workDir == "" {
				return fmt.Errorf("--work flag is required")
			}
			if outputPath == "" {
				return fmt.Errorf("--output flag is required")
			}

			logger := newLogger(verbose)

			var reg *registry.Registry
			if registryPath != "" {
				loaded, err := registry.Load(registryPath)
				if err != nil {
					return err
				}
				reg = loaded
				logger.Info("loaded law-identifier registry",
					slog.String("path", registryPath), slog.Int("entries", reg.Len()))
			}

			return runListup(logger, workDir, outputPath, reg)
		},
	}

	cmd.Flags().String("work", "", "corpus root directory of law XML files")
	cmd.Flags().String("output", "", "output JSON file path")
	cmd.Flags().String("registry", "", "optional all_law_list.csv registry path")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")

	return cmd
}

// runListup drives the whole pipeline: scan the corpus into revision
// chains, extract fields from each law's authoritative revision, and
// stream the assembled records to the output file. Per-file problems
// skip that law with a warning; only filesystem failures abort.
func runListup(logger *slog.Logger, workDir, outputPath string, reg *registry.Registry) error {
	logger.Info("scanning corpus", slog.String("work", workDir))
	scanner := scan.NewScanner(logger)
	builder, report, err := scanner.Scan(workDir)
	if err != nil {
		return err
	}
	logger.Info("corpus scan finished",
		slog.Int("files", report.Discovered),
		slog.Int("accepted", report.Accepted),
		slog.Int("skipped", report.Skipped),
		slog.Int("laws", builder.Len()))

	writer, err := output.NewWriter(outputPath)
	if err != nil {
		return err
	}
	defer writer.Close()

	assembler := assemble.New(logger, reg)
	dropped := 0

	logger.Info("writing law index", slog.String("output", outputPath))
	for _, lawID := range builder.LawIDs() {
		authoritative, ok := builder.Authoritative(lawID)
		if !ok {
			continue
		}

		path := filepath.Join(workDir, authoritative.Dir, authoritative.File)
		fields, err := extract.ExtractFile(path)
		if err != nil {
			logger.Warn("skipping law, cannot extract fields",
				slog.String("file", authoritative.Path()), slog.String("reason", err.Error()))
			dropped++
			continue
		}
		if fields == nil {
			logger.Warn("skipping law, no promulgation metadata in XML",
				slog.String("file", authoritative.Path()))
			dropped++
			continue
		}

		record, ok := assembler.Assemble(fields, authoritative, builder.Ordered(lawID))
		if !ok {
			dropped++
			continue
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	logger.Info("law index written",
		slog.Int("records", writer.Count()), slog.Int("dropped", dropped))

	fmt.Printf("Indexed %d laws to %s (%d dropped, %d files skipped)\n",
		writer.Count(), outputPath, dropped, report.Skipped)
	return nil
}

// newLogger builds the stderr logger used for diagnostics; stdout is
// reserved for command output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
