package usecase

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/domain/model"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

// Validate checks that every extracted page object file parses as JSON.
// Invalid files are reported, never removed, and do not fail the run.
func (uc *extractor) Validate(ctx context.Context) (*model.ValidationResult, error) {
	logger := ctxlog.From(ctx)

	result := &model.ValidationResult{}

	err := filepath.WalkDir(uc.outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), types.MemberSuffix) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		result.Checked++
		if !json.Valid(data) {
			rel, err := filepath.Rel(uc.outputDir, path)
			if err != nil {
				rel = path
			}
			logger.Warn("Page object is not valid JSON", "path", rel)
			result.Invalid = append(result.Invalid, rel)
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to validate extracted files", goerr.V("dir", uc.outputDir))
	}

	return result, nil
}
