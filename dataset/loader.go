// Package dataset reads clinical trial exports from disk and decodes them
// into raw trial records.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/giygas/clinicaltrials-api/logging"
	"github.com/giygas/clinicaltrials-api/trials"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrNotFound is returned when the dataset file does not exist
	ErrNotFound = errors.New("dataset file not found")
	// ErrMalformed is returned when the content is not a JSON list of studies
	ErrMalformed = errors.New("malformed dataset")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Compile-time check to ensure FileLoader implements Loader interface
var _ interfaces.Loader = (*FileLoader)(nil)

// FileLoader loads a dataset document from a path on disk
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the given dataset path
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: filepath.Clean(path)}
}

// Path returns the dataset path this loader reads
func (l *FileLoader) Path() string {
	return l.path
}

// Load reads and decodes the dataset file
func (l *FileLoader) Load() ([]trials.RawRecord, error) {
	file, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", l.path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.Warn("Failed to close dataset file", "error", err)
		}
	}()

	records, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", l.path, err)
	}

	logging.Debug("Dataset decoded", "path", l.path, "records", len(records))
	return records, nil
}

// Decode parses a dataset document. The document is either a JSON array of
// studies or an object carrying them under "studies". Content that is not
// valid UTF-8 is decoded as ISO-8859-1.
func Decode(r io.Reader) ([]trials.RawRecord, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	body = bytes.TrimPrefix(body, utf8BOM)

	if !utf8.Valid(body) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid encoding: %v", ErrMalformed, err)
		}
		body = decoded
	}

	var document any
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var studies []any
	switch doc := document.(type) {
	case []any:
		studies = doc
	case map[string]any:
		list, ok := doc["studies"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: object without a studies array", ErrMalformed)
		}
		studies = list
	default:
		return nil, fmt.Errorf("%w: expected a list of studies, got %T", ErrMalformed, document)
	}

	records := make([]trials.RawRecord, 0, len(studies))
	for _, study := range studies {
		// Entries that are not objects still count as a record, with nothing to extract
		obj, _ := study.(map[string]any)
		records = append(records, trials.RawRecord(obj))
	}

	return records, nil
}
