package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/utam-tools/utam-extract/pkg/domain/model"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer

	result := &model.ExtractResult{
		FileCount: 8,
		Version:   "10.0.2",
		OutputDir: "/tmp/pageobjects",
	}
	stats := []model.NamespaceStat{
		{Name: "salesforceIdentity", FileCount: 5},
		{Name: "utam", FileCount: 3},
	}

	printSummary(&buf, result, stats, true)

	out := buf.String()
	gt.String(t, out).Contains("Extracted 8 page objects (v10.0.2) to /tmp/pageobjects/")
	gt.String(t, out).Contains("Top namespaces:")
	gt.String(t, out).Contains("salesforceIdentity")
	gt.String(t, out).Contains("5 files")
	gt.String(t, out).Contains("Manifest: /tmp/pageobjects/MANIFEST.json")
}

func TestPrintSummary_TruncatesNamespaceTable(t *testing.T) {
	var buf bytes.Buffer

	result := &model.ExtractResult{FileCount: 17, Version: "1.0.0", OutputDir: "/out"}

	var stats []model.NamespaceStat
	for i := 0; i < 17; i++ {
		stats = append(stats, model.NamespaceStat{
			Name:      fmt.Sprintf("ns%02d", i),
			FileCount: 17 - i,
		})
	}

	printSummary(&buf, result, stats, true)

	out := buf.String()
	gt.String(t, out).Contains("ns14")
	gt.String(t, out).Contains("... and 2 more namespaces")
}

func TestPrintSummary_NoNamespaces(t *testing.T) {
	var buf bytes.Buffer

	result := &model.ExtractResult{FileCount: 0, Version: "unknown", OutputDir: "/out"}

	printSummary(&buf, result, nil, true)

	out := buf.String()
	gt.String(t, out).Contains("Extracted 0 page objects")
	gt.Value(t, bytes.Contains(buf.Bytes(), []byte("Top namespaces:"))).Equal(false)
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer

	printValidation(&buf, &model.ValidationResult{Checked: 3}, true)
	gt.String(t, buf.String()).Contains("Validated 3 page objects, all well-formed")

	buf.Reset()
	printValidation(&buf, &model.ValidationResult{
		Checked: 3,
		Invalid: []string{"ns/Bad.utam.json"},
	}, true)

	out := buf.String()
	gt.String(t, out).Contains("1 invalid")
	gt.String(t, out).Contains("ns/Bad.utam.json")
}
