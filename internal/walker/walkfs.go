package walker

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/standardbeagle/snipcore/internal/config"
	"github.com/standardbeagle/snipcore/internal/errs"
	"github.com/standardbeagle/snipcore/internal/model"
)

var errRootNotDirectory = errors.New("root is not a directory")

// candidate is a file that survived every filter during discovery and
// is ready for hashing and dispatch.
type candidate struct {
	relPath string
	absPath string
}

// discovery is the filesystem enumeration pass of spec.md §4.3's walk
// semantics, kept separate from dispatch so the directory tree and file
// counts are known before any worker touches file content.
type discovery struct {
	candidates     []candidate
	tree           *model.DirNode
	totalFilesSeen int
	skipped        int
}

// discover performs the pre-order, pruned, depth-capped traversal
// spec.md §4.3 describes: directories are visited before files at the
// same level (the driver's documented, stable ordering choice), ignore
// patterns and the only-extensions whitelist are applied per entry, and
// symlinks are skipped unless follow_symlinks is set, in which case a
// visited real-paths set prevents cycles.
func discover(root string, cfg config.DirectoryConfig) (*discovery, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errs.WalkFailure(root, err)
	}
	if !info.IsDir() {
		return nil, errs.WalkFailure(root, errRootNotDirectory)
	}

	d := &discovery{}
	visited := map[string]bool{}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		visited[real] = true
	}

	var tree *model.DirNode
	if cfg.IncludeDirectoryStructure {
		tree = &model.DirNode{Name: filepath.Base(root), IsDir: true}
	}

	if err := walkDir(root, root, 0, cfg, visited, d, tree); err != nil {
		return nil, err
	}
	d.tree = tree

	return d, nil
}

func relSlash(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		rel = abs
	}
	return filepath.ToSlash(rel)
}

func walkDir(root, dir string, depth int, cfg config.DirectoryConfig, visited map[string]bool, d *discovery, node *model.DirNode) error {
	if depth > cfg.MaxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == root {
			return errs.WalkFailure(dir, err)
		}
		// A non-root directory read failure (permissions, race with a
		// delete) is isolated rather than terminal for the whole walk.
		return nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var dirs, files []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	for _, e := range dirs {
		absPath := filepath.Join(dir, e.Name())
		relPath := relSlash(root, absPath)
		if matchesIgnorePattern(relPath, cfg.IgnorePatterns) {
			continue
		}

		target := absPath
		childInfo, err := e.Info()
		if err != nil {
			continue
		}
		if childInfo.Mode()&os.ModeSymlink != 0 {
			if !cfg.FollowSymlinks {
				continue
			}
			real, err := filepath.EvalSymlinks(absPath)
			if err != nil || visited[real] {
				continue
			}
			info, err := os.Stat(real)
			if err != nil || !info.IsDir() {
				continue
			}
			visited[real] = true
			target = real
		}

		var childNode *model.DirNode
		if node != nil {
			childNode = &model.DirNode{Name: e.Name(), IsDir: true}
			node.Children = append(node.Children, childNode)
		}

		if err := walkDir(root, target, depth+1, cfg, visited, d, childNode); err != nil {
			return err
		}
	}

	for _, e := range files {
		if cfg.MaxFiles > 0 && d.totalFilesSeen >= cfg.MaxFiles {
			d.skipped++
			continue
		}

		absPath := filepath.Join(dir, e.Name())
		relPath := relSlash(root, absPath)

		childInfo, err := e.Info()
		if err != nil {
			continue
		}
		finalAbs := absPath
		if childInfo.Mode()&os.ModeSymlink != 0 {
			if !cfg.FollowSymlinks {
				continue
			}
			real, err := filepath.EvalSymlinks(absPath)
			if err != nil {
				continue
			}
			finalAbs = real
		}

		d.totalFilesSeen++
		if node != nil {
			node.Children = append(node.Children, &model.DirNode{Name: e.Name(), IsDir: false})
		}

		if !surviveFilters(relPath, cfg) {
			d.skipped++
			continue
		}

		d.candidates = append(d.candidates, candidate{relPath: relPath, absPath: finalAbs})
	}

	return nil
}
