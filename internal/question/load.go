package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DefaultPath is where the hourly job looks for questions, relative to the
// working directory.
const DefaultPath = "../data/questions.json"

// LoadList opens path and parses it as a top-level JSON array.
func LoadList(path string) (List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions: %w: %w", ErrUnreadable, err)
	}
	defer file.Close()
	return ParseList(file)
}

// ParseList decodes a single JSON array from r. Anything other than one
// array, including trailing documents, is reported as ErrMalformed.
func ParseList(r io.Reader) (List, error) {
	decoder := json.NewDecoder(r)
	var raw json.RawMessage
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse questions: %w: empty input", ErrMalformed)
		}
		if isReadError(err) {
			return nil, fmt.Errorf("read questions: %w: %w", ErrUnreadable, err)
		}
		return nil, fmt.Errorf("parse questions: %w: %w", ErrMalformed, err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil || !isReadError(err) {
			return nil, fmt.Errorf("parse questions: %w: multiple documents are not supported", ErrMalformed)
		}
		return nil, fmt.Errorf("read questions: %w: %w", ErrUnreadable, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("parse questions: %w: top-level value is not an array", ErrMalformed)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("parse questions: %w: %w", ErrMalformed, err)
	}
	list := make(List, 0, len(items))
	for _, item := range items {
		list = append(list, Record(item))
	}
	return list, nil
}

// isReadError separates I/O failures from JSON syntax and type errors.
func isReadError(err error) bool {
	switch err.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		return false
	}
	return err != io.ErrUnexpectedEOF
}
