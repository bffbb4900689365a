package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/cli/config"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
	"github.com/utam-tools/utam-extract/pkg/infra/npm"
	"github.com/utam-tools/utam-extract/pkg/usecase"
)

func runExtract(ctx context.Context, cfg *config.Extract) error {
	outputDir, err := filepath.Abs(cfg.Output)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve output directory", goerr.V("output", cfg.Output))
	}

	if !cfg.Quiet {
		fmt.Printf("Downloading %s@%s...\n", types.SourceName, cfg.Version)
	}

	uc := usecase.NewExtractor(
		npm.NewClient(),
		usecase.WithOutputDir(outputDir),
		usecase.WithVersionSelector(cfg.Version),
	)

	result, err := uc.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.Validate {
		validation, err := uc.Validate(ctx)
		if err != nil {
			return err
		}
		if !cfg.Quiet {
			printValidation(os.Stdout, validation, cfg.NoColor)
		}
	}

	if cfg.Quiet {
		return nil
	}

	stats, err := uc.NamespaceStats()
	if err != nil {
		return err
	}

	printSummary(os.Stdout, result, stats, cfg.NoColor)
	return nil
}
