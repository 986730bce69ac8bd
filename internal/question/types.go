package question

import (
	"bytes"
	"encoding/json"
)

// Record is one element of the questions array, kept as raw JSON.
type Record json.RawMessage

// List is the ordered set of records loaded for a single run.
type List []Record

// Text returns the loggable form of a record. Strings are unquoted; every
// other value is rendered as compact JSON.
func (record Record) Text() string {
	raw := bytes.TrimSpace(record)
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			return text
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}
