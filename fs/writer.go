package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
)

// Ensure Writer implements docindex.IndexWriter at compile time.
var _ docindex.IndexWriter = (*Writer)(nil)

// Writer writes the index as indented JSON below an output directory.
type Writer struct {
	baseDir string
	path    string
}

// NewWriter creates a Writer for path relative to baseDir. An empty path
// uses docindex.DefaultOutput.
func NewWriter(baseDir, path string) *Writer {
	if path == "" {
		path = docindex.DefaultOutput
	}
	return &Writer{baseDir: baseDir, path: path}
}

// Encode renders idx as the JSON wire document.
func Encode(idx *docindex.SearchIndex) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(idx); err != nil {
		return nil, docindex.Errorf(docindex.EINTERNAL, "failed to encode index: %v", err)
	}
	return buf.Bytes(), nil
}

// WriteIndex writes idx to a temporary file and renames it into place, so
// readers never observe a partially written index.
func (w *Writer) WriteIndex(ctx context.Context, idx *docindex.SearchIndex) (*docindex.WriteResult, error) {
	if idx == nil {
		return nil, docindex.Errorf(docindex.EINVALID, "index required")
	}
	fullPath, err := safeJoin(w.baseDir, w.path)
	if err != nil {
		return nil, err
	}

	data, err := Encode(idx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, err
	}
	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return nil, err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	return &docindex.WriteResult{
		Path:     fullPath,
		Bytes:    len(data),
		Checksum: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}, nil
}
