package secondary

import "context"

// SourceReader defines the secondary port for loading program sources.
type SourceReader interface {
	// ReadSource returns the contents of the source file at path.
	ReadSource(ctx context.Context, path string) (string, error)
}

// ArtifactWriter defines the secondary port for writing build artifacts
// such as intermediate code listings.
type ArtifactWriter interface {
	// WriteArtifact writes content to path, creating parent directories.
	WriteArtifact(ctx context.Context, path string, content []byte) error
}
