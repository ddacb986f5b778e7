package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/uc3m-money/account_management_app/internal/apperrors"
)

// Store persists one category of record as a single pretty-printed JSON
// array file. Writes go through a temp file next to the target followed by
// a rename, so a crash mid-write leaves the previous contents intact. A
// per-store mutex serializes the load-append-rewrite cycle.
type Store[T any] struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store backed by the JSON array file at path. The file
// does not have to exist yet; it is created on first append.
func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// LoadOrEmpty reads every record in the store. A missing file reads as an
// empty store, not an error.
func (s *Store[T]) LoadOrEmpty() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readArray[T](s.path)
}

// LoadStrict reads every record, failing when the file is absent. It serves
// required inputs such as the transactions log, where a missing file means
// the caller pointed at the wrong path rather than an empty ledger.
func (s *Store[T]) LoadStrict() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingInput, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrStore, s.path, err)
	}
	return decodeArray[T](s.path, data)
}

// Append reads the current records, adds one, and atomically rewrites the
// whole file, preserving order.
func (s *Store[T]) Append(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := readArray[T](s.path)
	if err != nil {
		return err
	}
	records = append(records, record)
	return writeArray(s.path, records)
}

// ReadInput decodes a single JSON object from an externally supplied input
// file. Unlike a ledger read, a missing input file is an error.
func ReadInput[T any](path string) (T, error) {
	var v T
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return v, fmt.Errorf("%w: %s", apperrors.ErrMissingInput, path)
	}
	if err != nil {
		return v, fmt.Errorf("%w: read %s: %v", apperrors.ErrStore, path, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %s", apperrors.ErrMalformedStore, path)
	}
	return v, nil
}

func readArray[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperrors.ErrStore, path, err)
	}
	return decodeArray[T](path, data)
}

func decodeArray[T any](path string, data []byte) ([]T, error) {
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMalformedStore, path)
	}
	// A JSON "null" document decodes without error but is not an array.
	if records == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrMalformedStore, path)
	}
	return records, nil
}

func writeArray[T any](path string, records []T) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStore, path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStore, path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStore, path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: write %s: %v", apperrors.ErrStore, path, err)
	}
	return nil
}
