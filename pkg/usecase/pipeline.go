package usecase

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/domain/model"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

// Run executes the pipeline: acquire the package tarball into a scratch
// directory, extract matching members beneath the output root, then
// record the manifest. The scratch directory is removed on every exit
// path. Extraction and the manifest write are not transactional.
func (uc *extractor) Run(ctx context.Context) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx).With("run_id", uuid.NewString())
	ctx = ctxlog.With(ctx, logger)

	spec := types.SourceName + "@" + uc.versionSelector

	logger.Info("Starting extraction run",
		"spec", spec,
		"output_dir", uc.outputDir,
	)

	scratchDir, err := os.MkdirTemp("", "utam-extract-*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create scratch directory")
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			logger.Warn("Failed to remove scratch directory", "dir", scratchDir, "error", err)
		}
	}()

	tarball, err := uc.fetcher.Pack(ctx, spec, scratchDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download package", goerr.V("spec", spec))
	}

	logger.Debug("Downloaded package tarball", "tarball", tarball)

	result, err := uc.extractArchive(ctx, tarball)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract archive", goerr.V("tarball", tarball))
	}

	if err := uc.writeManifest(result); err != nil {
		return nil, goerr.Wrap(err, "failed to write manifest")
	}

	logger.Info("Extraction run complete",
		"file_count", result.FileCount,
		"version", result.Version,
	)

	return result, nil
}
