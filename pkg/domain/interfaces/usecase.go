package interfaces

import (
	"context"

	"github.com/utam-tools/utam-extract/pkg/domain/model"
)

// ExtractUseCase defines the extraction pipeline
type ExtractUseCase interface {
	// Run executes the acquire/extract/record pipeline
	Run(ctx context.Context) (*model.ExtractResult, error)

	// NamespaceStats reports per-namespace file counts beneath the
	// output root, descending by count, zero-count entries omitted
	NamespaceStats() ([]model.NamespaceStat, error)

	// Validate checks every extracted file parses as JSON
	Validate(ctx context.Context) (*model.ValidationResult, error)
}
