package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/pkgkraft/internal/domain"
)

// WorkspaceService scores every package of an npm workspace (monorepo).
type WorkspaceService struct {
	loader domain.ManifestLoader
	scorer *ScoreService
	limit  int
}

func NewWorkspaceService(loader domain.ManifestLoader, scorer *ScoreService) *WorkspaceService {
	return &WorkspaceService{
		loader: loader,
		scorer: scorer,
		limit:  runtime.GOMAXPROCS(0),
	}
}

// ScoreWorkspace scores root and, when root declares workspaces, each
// workspace package instead. Results are sorted by path. The first failure
// cancels outstanding work and is returned.
func (s *WorkspaceService) ScoreWorkspace(ctx context.Context, root string) ([]domain.PackageReport, error) {
	rootManifest, err := s.loader.Load(root)
	if err != nil {
		return nil, err
	}

	dirs, err := s.packageDirs(root, rootManifest.Workspaces())
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		dirs = []string{root}
	}

	results := make([]domain.PackageReport, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for i, dir := range dirs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := s.scorer.ScorePackage(dir)
			if err != nil {
				return fmt.Errorf("workspace %s: %w", dir, err)
			}
			results[i] = domain.PackageReport{Path: dir, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// packageDirs expands workspace globs into the directories holding a manifest.
func (s *WorkspaceService) packageDirs(root string, globs []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	for _, pattern := range globs {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("expanding workspace %q: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() || seen[match] {
				continue
			}
			if _, err := s.loader.Load(match); err != nil {
				if errors.Is(err, domain.ErrManifestNotFound) {
					continue
				}
				return nil, err
			}
			seen[match] = true
			dirs = append(dirs, match)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}
