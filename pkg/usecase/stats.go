package usecase

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/utam-tools/utam-extract/pkg/domain/model"
	"github.com/utam-tools/utam-extract/pkg/domain/types"
)

// NamespaceStats counts page object files beneath each immediate
// subdirectory of the output root. Zero-count namespaces are omitted and
// results are ordered by descending count, ties by name. Read-only.
func (uc *extractor) NamespaceStats() ([]model.NamespaceStat, error) {
	entries, err := os.ReadDir(uc.outputDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read output directory", goerr.V("dir", uc.outputDir))
	}

	var stats []model.NamespaceStat
	for _, entry := range entries {
		if !entry.IsDir() || entry.Name() == types.ReservedCacheDir {
			continue
		}

		count, err := countPageObjects(filepath.Join(uc.outputDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if count == 0 {
			continue
		}

		stats = append(stats, model.NamespaceStat{
			Name:      entry.Name(),
			FileCount: count,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].FileCount != stats[j].FileCount {
			return stats[i].FileCount > stats[j].FileCount
		}
		return stats[i].Name < stats[j].Name
	})

	return stats, nil
}

func countPageObjects(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), types.MemberSuffix) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to walk namespace directory", goerr.V("dir", dir))
	}
	return count, nil
}
