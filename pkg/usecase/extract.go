package usecase

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/domain/interfaces"
	"github.com/utam-tools/utam-extract/pkg/domain/model"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

type extractor struct {
	fetcher         interfaces.PackageFetcher
	outputDir       string
	versionSelector string
}

// Option configures the extract use case
type Option func(*extractor)

// WithOutputDir sets the destination root for extracted files
func WithOutputDir(dir string) Option {
	return func(uc *extractor) {
		uc.outputDir = dir
	}
}

// WithVersionSelector sets the package version selector passed to the fetcher
func WithVersionSelector(selector string) Option {
	return func(uc *extractor) {
		uc.versionSelector = selector
	}
}

// NewExtractor creates a new instance of ExtractUseCase
func NewExtractor(fetcher interfaces.PackageFetcher, opts ...Option) interfaces.ExtractUseCase {
	uc := &extractor{
		fetcher:         fetcher,
		outputDir:       "./" + types.SourceName,
		versionSelector: "latest",
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// extractArchive streams the tarball's member list, writing every member
// that matches the page object naming convention beneath outputDir.
//
// The metadata member is parsed for the package version; a missing or
// unparsable metadata member degrades to the "unknown" sentinel rather
// than failing the run. Should the archive carry duplicate metadata
// entries (tar permits this), the last one wins by sequential processing.
//
// Destination paths are derived by stripping the source subtree prefix
// and must resolve beneath outputDir; members that escape via `..`
// segments are rejected.
func (uc *extractor) extractArchive(ctx context.Context, tarball string) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx)

	f, err := os.Open(tarball)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open tarball", goerr.V("path", tarball))
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, goerr.Wrap(err, "tarball is not a valid gzip stream", goerr.V("path", tarball))
	}
	defer gz.Close()

	if err := os.MkdirAll(uc.outputDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", uc.outputDir))
	}

	count := 0
	version := types.UnknownVersion

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "malformed tar stream", goerr.V("path", tarball))
		}

		if hdr.Name == types.MetadataMember {
			version = readVersion(ctx, tr)
			continue
		}

		if !strings.HasSuffix(hdr.Name, types.MemberSuffix) ||
			!strings.HasPrefix(hdr.Name, types.MemberPrefix) {
			logger.Debug("Skipping member outside filter", "member", hdr.Name)
			continue
		}

		if hdr.Typeflag != tar.TypeReg {
			logger.Debug("Skipping non-regular member", "member", hdr.Name)
			continue
		}

		if err := uc.writeMember(hdr.Name, tr); err != nil {
			if errors.Is(err, errUnsafePath) {
				logger.Warn("Rejecting member escaping output root", "member", hdr.Name)
				continue
			}
			return nil, goerr.Wrap(err, "failed to write member", goerr.V("member", hdr.Name))
		}
		count++
	}

	return &model.ExtractResult{
		FileCount: count,
		Version:   version,
		OutputDir: uc.outputDir,
	}, nil
}

var errUnsafePath = errors.New("member path escapes output root")

// writeMember writes one member's bytes to its destination path, derived
// by stripping the source subtree prefix from the member name.
func (uc *extractor) writeMember(name string, r io.Reader) error {
	rel := strings.TrimPrefix(name, types.MemberPrefix)

	destPath := filepath.Join(uc.outputDir, filepath.FromSlash(rel))
	if !strings.HasPrefix(destPath, filepath.Clean(uc.outputDir)+string(os.PathSeparator)) {
		return errUnsafePath
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.V("dir", filepath.Dir(destPath)))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return goerr.Wrap(err, "failed to read member content")
	}

	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.V("path", destPath))
	}

	return nil
}

// readVersion parses the metadata member as generic JSON and returns its
// version field, degrading to the sentinel on any anomaly.
func readVersion(ctx context.Context, r io.Reader) string {
	logger := ctxlog.From(ctx)

	var pkg map[string]any
	if err := json.NewDecoder(r).Decode(&pkg); err != nil {
		logger.Warn("Package metadata is not valid JSON, version unknown", "error", err)
		return types.UnknownVersion
	}

	version, ok := pkg["version"].(string)
	if !ok {
		logger.Warn("Package metadata declares no version, version unknown")
		return types.UnknownVersion
	}

	return version
}
