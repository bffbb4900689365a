package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
	"github.com/utam-tools/utam-extract/pkg/cli/config"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg  config.Logger
		extractCfg config.Extract
		logger     *slog.Logger
	)

	flags := append(loggerCfg.Flags(), extractCfg.Flags()...)

	app := &cli.Command{
		Name:  "utam-extract",
		Usage: "Extract UTAM page objects from the salesforce-pageobjects npm package",
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := extractCfg.ApplyFile(c.IsSet); err != nil {
				return err
			}
			return runExtract(ctx, &extractCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
