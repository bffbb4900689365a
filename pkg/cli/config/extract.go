package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

// Extract holds extraction configuration
type Extract struct {
	Output   string
	Version  string
	Quiet    bool
	Validate bool
	NoColor  bool
	Config   string
}

// Flags returns CLI flags for extraction configuration
func (c *Extract) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output directory",
			Value:       "./" + types.SourceName,
			Destination: &c.Output,
			Sources:     cli.EnvVars("UTAM_EXTRACT_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "Package version selector",
			Value:       "latest",
			Destination: &c.Version,
			Sources:     cli.EnvVars("UTAM_EXTRACT_VERSION"),
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "Suppress progress and summary output",
			Destination: &c.Quiet,
			Sources:     cli.EnvVars("UTAM_EXTRACT_QUIET"),
		},
		&cli.BoolFlag{
			Name:        "validate",
			Usage:       "Check extracted files parse as JSON",
			Destination: &c.Validate,
			Sources:     cli.EnvVars("UTAM_EXTRACT_VALIDATE"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored summary output",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("UTAM_EXTRACT_NO_COLOR"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML config file providing defaults",
			Destination: &c.Config,
			Sources:     cli.EnvVars("UTAM_EXTRACT_CONFIG"),
		},
	}
}

// fileValues mirrors the optional TOML config file. Pointer fields so
// absent keys are distinguishable from zero values.
type fileValues struct {
	Output   *string `toml:"output"`
	Version  *string `toml:"version"`
	Quiet    *bool   `toml:"quiet"`
	Validate *bool   `toml:"validate"`
	NoColor  *bool   `toml:"no_color"`
}

// ApplyFile overlays values from the TOML config file. Values set
// explicitly on the command line (or via environment) win; isSet reports
// whether a flag was set that way.
func (c *Extract) ApplyFile(isSet func(name string) bool) error {
	if c.Config == "" {
		return nil
	}

	data, err := os.ReadFile(c.Config)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Config))
	}

	var values fileValues
	if err := toml.Unmarshal(data, &values); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Config))
	}

	if values.Output != nil && !isSet("output") {
		c.Output = *values.Output
	}
	if values.Version != nil && !isSet("version") {
		c.Version = *values.Version
	}
	if values.Quiet != nil && !isSet("quiet") {
		c.Quiet = *values.Quiet
	}
	if values.Validate != nil && !isSet("validate") {
		c.Validate = *values.Validate
	}
	if values.NoColor != nil && !isSet("no-color") {
		c.NoColor = *values.NoColor
	}

	return nil
}
