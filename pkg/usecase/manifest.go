package usecase

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/domain/model"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

// writeManifest records the run's metadata at the output root,
// overwriting any prior manifest. FileCount is taken verbatim from the
// extraction result so the two can never disagree.
func (uc *extractor) writeManifest(result *model.ExtractResult) error {
	manifest := model.Manifest{
		Source:    types.SourceName,
		Version:   result.Version,
		Extracted: time.Now().Format(time.RFC3339),
		FileCount: result.FileCount,
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal manifest")
	}

	path := filepath.Join(uc.outputDir, types.ManifestFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write manifest", goerr.V("path", path))
	}

	return nil
}
