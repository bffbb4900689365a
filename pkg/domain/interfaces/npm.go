package interfaces

import "context"

// PackageFetcher defines the package acquisition collaborator
type PackageFetcher interface {
	// Pack downloads the package identified by spec (name@selector) into
	// dir and returns the path of the produced tarball
	Pack(ctx context.Context, spec string, dir string) (string, error)
}
