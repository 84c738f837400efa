// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/minic/internal/ports/secondary"
)

// WorkspaceAdapter implements secondary.SourceReader and
// secondary.ArtifactWriter against the local filesystem.
type WorkspaceAdapter struct {
	baseDir string
}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
// Relative paths are resolved against baseDir; if baseDir is empty the
// current working directory is used.
func NewWorkspaceAdapter(baseDir string) (*WorkspaceAdapter, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	return &WorkspaceAdapter{baseDir: baseDir}, nil
}

// ReadSource returns the contents of the source file at path.
func (a *WorkspaceAdapter) ReadSource(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := a.resolve(path)
	info, err := os.Stat(fullPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("source file %s not found", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat source file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source path %s is a directory", path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to read source file: %w", err)
	}

	return string(data), nil
}

// WriteArtifact writes content to path, creating parent directories.
func (a *WorkspaceAdapter) WriteArtifact(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := a.resolve(path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	return nil
}

func (a *WorkspaceAdapter) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.baseDir, path)
}

// Ensure WorkspaceAdapter implements the interfaces
var (
	_ secondary.SourceReader   = (*WorkspaceAdapter)(nil)
	_ secondary.ArtifactWriter = (*WorkspaceAdapter)(nil)
)
