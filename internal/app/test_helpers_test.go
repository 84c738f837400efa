package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/minic/internal/logging"
	"github.com/example/minic/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.RunRepository  = (*mockRunRepository)(nil)
	_ secondary.SourceReader   = (*mockSourceReader)(nil)
	_ secondary.ArtifactWriter = (*mockArtifactWriter)(nil)
)

// mockRunRepository implements secondary.RunRepository for testing.
type mockRunRepository struct {
	runs         map[string]*secondary.RunRecord
	maxID        int
	createErr    error
	nextIDErr    error
	listErr      error
	deleteAllErr error

	lastFilters secondary.RunFilters
}

func newMockRunRepository() *mockRunRepository {
	return &mockRunRepository{runs: make(map[string]*secondary.RunRecord)}
}

func (m *mockRunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.runs[run.ID] = run
	m.maxID++
	return nil
}

func (m *mockRunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	if run, ok := m.runs[id]; ok {
		return run, nil
	}
	return nil, fmt.Errorf("run %s not found", id)
}

func (m *mockRunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	m.lastFilters = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.RunRecord
	for _, run := range m.runs {
		if filters.Kind == "" || run.Kind == filters.Kind {
			result = append(result, run)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockRunRepository) DeleteAll(ctx context.Context) (int, error) {
	if m.deleteAllErr != nil {
		return 0, m.deleteAllErr
	}
	n := len(m.runs)
	m.runs = make(map[string]*secondary.RunRecord)
	return n, nil
}

func (m *mockRunRepository) GetNextID(ctx context.Context) (string, error) {
	if m.nextIDErr != nil {
		return "", m.nextIDErr
	}
	return fmt.Sprintf("RUN-%03d", m.maxID+1), nil
}

// only returns the single recorded run, failing if there is not exactly one.
func (m *mockRunRepository) only() (*secondary.RunRecord, error) {
	if len(m.runs) != 1 {
		return nil, fmt.Errorf("expected 1 recorded run, got %d", len(m.runs))
	}
	for _, run := range m.runs {
		return run, nil
	}
	return nil, errors.New("unreachable")
}

// mockSourceReader implements secondary.SourceReader over an in-memory map.
type mockSourceReader struct {
	files map[string]string
}

func (m *mockSourceReader) ReadSource(ctx context.Context, path string) (string, error) {
	src, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("source file %s not found", path)
	}
	return src, nil
}

// mockArtifactWriter implements secondary.ArtifactWriter for testing.
type mockArtifactWriter struct {
	written  map[string]string
	writeErr error
}

func newMockArtifactWriter() *mockArtifactWriter {
	return &mockArtifactWriter{written: make(map[string]string)}
}

func (m *mockArtifactWriter) WriteArtifact(ctx context.Context, path string, content []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written[path] = string(content)
	return nil
}

var testLogger = logging.Discard()
