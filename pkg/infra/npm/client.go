package npm

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/domain/interfaces"
)

type client struct {
	binary string
}

// Option configures the npm client
type Option func(*client)

// WithBinary overrides the npm executable path
func WithBinary(path string) Option {
	return func(c *client) {
		c.binary = path
	}
}

// NewClient creates a package fetcher backed by the npm CLI
func NewClient(opts ...Option) interfaces.PackageFetcher {
	c := &client{
		binary: "npm",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pack runs `npm pack <spec> --silent` in dir and returns the path of the
// downloaded tarball. A non-zero exit surfaces npm's stderr in the error.
func (c *client) Pack(ctx context.Context, spec string, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, "pack", spec, "--silent")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(err, "npm pack failed",
			goerr.V("spec", spec),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	// npm names the tarball <name>-<version>.tgz
	name, _, _ := strings.Cut(spec, "@")
	matches, err := filepath.Glob(filepath.Join(dir, name+"-*.tgz"))
	if err != nil {
		return "", goerr.Wrap(err, "failed to glob for tarball", goerr.V("dir", dir))
	}
	if len(matches) == 0 {
		return "", goerr.New("no tarball found after npm pack",
			goerr.V("spec", spec),
			goerr.V("dir", dir),
		)
	}

	return matches[0], nil
}
