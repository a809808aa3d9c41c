// Package adapter contains UI and infrastructure adapters for the dbgc CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/dbgc/internal/model"
)

// SkippedDirs are never descended into.
var SkippedDirs = map[string]struct{}{
	".git":         {},
	"vendor":       {},
	"node_modules": {},
	"target":       {},
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects the files under roots accepted by filter.
	Get(roots []m.Path, filter FileFilter) ([]m.File, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of an existing file, keeping its mode.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FileFilter selects which files Get returns.
type FileFilter struct {
	// Accept is consulted for every regular file; nil accepts all.
	Accept func(path string) bool
	// Exclude drops any path matching one of the expressions.
	Exclude []*regexp.Regexp
	// Recursive descends into sub-directories of plain directory roots.
	// A "dir/..." root is always recursive.
	Recursive bool
}

func (f FileFilter) keep(path string) bool {
	for _, re := range f.Exclude {
		if re.MatchString(path) {
			return false
		}
	}

	return f.Accept == nil || f.Accept(path)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects files for the provided roots. Paths are absolute and unique.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter FileFilter) ([]m.File, error) {
	if len(roots) == 0 {
		return []m.File{}, nil
	}

	seen := make(map[string]struct{})

	var files []m.File

	add := func(path string) error {
		if _, exists := seen[path]; exists || !filter.keep(path) {
			return nil
		}

		hash, err := a.HashFile(m.Path(path))
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", path, err)
		}

		seen[path] = struct{}{}
		files = append(files, m.File{Path: m.Path(path), Hash: hash})

		return nil
	}

	for _, root := range roots {
		rootPath, forced, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), forced || filter.Recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			return add(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
// SkippedDirs are pruned even when recursive.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if _, skip := SkippedDirs[info.Name()]; skip || !recursive {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile overwrites path, keeping the permission bits of the existing file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	info, err := os.Stat(string(path))
	if err != nil {
		return err
	}

	return os.WriteFile(string(path), content, info.Mode().Perm())
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// HashContent returns the SHA-256 hash of data in the same form as HashFile.
func HashContent(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if trimmed, ok := strings.CutSuffix(rootStr, "/..."); ok {
		return trimmed, true
	}

	return rootStr, false
}
