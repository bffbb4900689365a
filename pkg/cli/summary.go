package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/utam-tools/utam-extract/pkg/domain/model"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

// topNamespaces caps how many rows of the stats table are printed.
const topNamespaces = 15

// printSummary writes the post-run report: the extraction line, the top
// namespaces table, and the manifest location.
func printSummary(w io.Writer, result *model.ExtractResult, stats []model.NamespaceStat, noColor bool) {
	bold := color.New(color.Bold)
	header := color.New(color.Bold, color.FgCyan)
	if noColor {
		bold.DisableColor()
		header.DisableColor()
	}

	fmt.Fprintf(w, "Extracted %s page objects (v%s) to %s/\n",
		bold.Sprintf("%d", result.FileCount),
		result.Version,
		result.OutputDir,
	)
	fmt.Fprintln(w)

	if len(stats) > 0 {
		header.Fprintln(w, "Top namespaces:")
		for i, stat := range stats {
			if i == topNamespaces {
				break
			}
			fmt.Fprintf(w, "  %-30s %4d files\n", stat.Name, stat.FileCount)
		}
		if len(stats) > topNamespaces {
			fmt.Fprintf(w, "  ... and %d more namespaces\n", len(stats)-topNamespaces)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Manifest: %s\n", filepath.Join(result.OutputDir, types.ManifestFilename))
}

// printValidation reports the optional JSON well-formedness pass.
func printValidation(w io.Writer, result *model.ValidationResult, noColor bool) {
	warn := color.New(color.Bold, color.FgYellow)
	if noColor {
		warn.DisableColor()
	}

	if len(result.Invalid) == 0 {
		fmt.Fprintf(w, "Validated %d page objects, all well-formed\n", result.Checked)
		return
	}

	warn.Fprintf(w, "Validated %d page objects, %d invalid:\n", result.Checked, len(result.Invalid))
	for _, path := range result.Invalid {
		fmt.Fprintf(w, "  %s\n", path)
	}
}
