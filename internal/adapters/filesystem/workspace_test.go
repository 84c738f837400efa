package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/minic/internal/adapters/filesystem"
)

func TestWorkspaceAdapter_ReadSource(t *testing.T) {
	tmpDir := t.TempDir()
	adapter, err := filesystem.NewWorkspaceAdapter(tmpDir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	src := "int main() {\n    return 0;\n}\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "prog.c"), []byte(src), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ctx := context.Background()

	// Relative path resolves against the base directory
	got, err := adapter.ReadSource(ctx, "prog.c")
	if err != nil {
		t.Fatalf("ReadSource failed: %v", err)
	}
	if got != src {
		t.Errorf("expected %q, got %q", src, got)
	}

	// Absolute path is used as-is
	got, err = adapter.ReadSource(ctx, filepath.Join(tmpDir, "prog.c"))
	if err != nil {
		t.Fatalf("ReadSource with absolute path failed: %v", err)
	}
	if got != src {
		t.Errorf("expected %q, got %q", src, got)
	}
}

func TestWorkspaceAdapter_ReadSource_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	adapter, err := filesystem.NewWorkspaceAdapter(tmpDir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "dir.c"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", "missing.c", "source file missing.c not found"},
		{"directory", "dir.c", "is a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.ReadSource(context.Background(), tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestWorkspaceAdapter_WriteArtifact(t *testing.T) {
	tmpDir := t.TempDir()
	adapter, err := filesystem.NewWorkspaceAdapter(tmpDir)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	ctx := context.Background()
	content := []byte("func main:\nreturn 0\n")

	// Parent directories are created on demand
	if err := adapter.WriteArtifact(ctx, filepath.Join("build", "ir", "out.txt"), content); err != nil {
		t.Fatalf("WriteArtifact failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "build", "ir", "out.txt"))
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("expected %q, got %q", content, data)
	}

	// Overwrites existing artifacts
	if err := adapter.WriteArtifact(ctx, filepath.Join("build", "ir", "out.txt"), []byte("x")); err != nil {
		t.Fatalf("second WriteArtifact failed: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(tmpDir, "build", "ir", "out.txt"))
	if string(data) != "x" {
		t.Errorf("expected overwrite, got %q", data)
	}
}

func TestWorkspaceAdapter_CanceledContext(t *testing.T) {
	adapter, err := filesystem.NewWorkspaceAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adapter.ReadSource(ctx, "prog.c"); err != context.Canceled {
		t.Errorf("expected context.Canceled from ReadSource, got %v", err)
	}
	if err := adapter.WriteArtifact(ctx, "out.txt", nil); err != context.Canceled {
		t.Errorf("expected context.Canceled from WriteArtifact, got %v", err)
	}
}
