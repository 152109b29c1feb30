// Package store persists the task collection to a single JSON file.
//
// The whole collection is loaded into memory at the start of an invocation
// and rewritten in full on any mutation. Writes go through a temp file and
// a rename so a concurrent reader never observes a partial file.
package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tasktrack/internal/task"
)

//go:embed schema.json
var schemaJSON string

// taskSchema validates the on-disk document shape before it is trusted.
var taskSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// Store reads and writes a task collection at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given file path. The file is not touched;
// it is created lazily on the first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task collection. A missing or empty file yields an empty
// collection. A file that exists but does not parse as a valid collection
// yields a task.CorruptDataError.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []task.Task{}, nil
	}

	// Validate the raw document against the schema first so a mangled
	// file is reported as corruption, not half-decoded into zero values.
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, &task.CorruptDataError{Path: s.path, Err: err}
	}
	if err := taskSchema.Validate(doc); err != nil {
		return nil, &task.CorruptDataError{Path: s.path, Err: err}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &task.CorruptDataError{Path: s.path, Err: err}
	}
	return tasks, nil
}

// Save writes the full collection, replacing the file in one step.
func (s *Store) Save(tasks []task.Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.json")
	if err != nil {
		return fmt.Errorf("create temp task file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write task file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write task file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace task file: %w", err)
	}
	return nil
}
