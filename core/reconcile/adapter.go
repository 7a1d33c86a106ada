package reconcile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"listsync/core/utils"
)

var (
	// ErrMissingID is returned when a decoded record has no usable identifier.
	ErrMissingID = errors.New("record has no identifier")

	// ErrDuplicateID is returned when two records of a snapshot share an identifier.
	ErrDuplicateID = errors.New("duplicate record identifier")
)

// Adapter decodes a snapshot object into records.
type Adapter interface {
	// Name returns the format name (e.g., "json", "ndjson").
	Name() string

	// Decode reads every record from r, extracting the identifier from idField.
	Decode(r io.Reader, idField string) ([]Record, error)
}

// AdapterFor returns the adapter registered for format.
func AdapterFor(format string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return JSONAdapter{}, nil
	case "ndjson", "jsonl":
		return NDJSONAdapter{}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// JSONAdapter decodes a JSON array of objects.
type JSONAdapter struct{}

func (JSONAdapter) Name() string { return "json" }

func (JSONAdapter) Decode(r io.Reader, idField string) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode json array: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, fields := range raw {
		rec, err := NewRecord(fields, idField)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

// NDJSONAdapter decodes one JSON object per line. Blank lines are skipped.
type NDJSONAdapter struct{}

func (NDJSONAdapter) Name() string { return "ndjson" }

func (NDJSONAdapter) Decode(r io.Reader, idField string) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(text))
		dec.UseNumber()

		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := NewRecord(fields, idField)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ndjson: %w", err)
	}
	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

// NewRecord builds a record from decoded fields.
func NewRecord(fields map[string]any, idField string) (Record, error) {
	if idField == "" {
		idField = "id"
	}
	val, ok := fields[idField]
	if !ok || val == nil {
		return Record{}, fmt.Errorf("%w: field %q", ErrMissingID, idField)
	}
	id := utils.ToString(val)
	if id == "" {
		return Record{}, fmt.Errorf("%w: field %q is empty", ErrMissingID, idField)
	}
	return Record{ID: id, Fields: fields}, nil
}

// checkUnique rejects snapshots whose records share an identifier. Such a source
// cannot be placed by position, and the last occurrence would shadow the others.
func checkUnique(records []Record) error {
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if first, ok := seen[rec.ID]; ok {
			return fmt.Errorf("%w: %q at records %d and %d", ErrDuplicateID, rec.ID, first, i)
		}
		seen[rec.ID] = i
	}
	return nil
}
