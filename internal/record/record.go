package record

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the demonstration payload: a fixed two-field document built,
// rendered, and discarded within a single call.
type Record struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// Default returns the payload the template ships with.
func Default() Record {
	return Record{Name: "Enigma", Age: 1020}
}

// Render returns the 2-space-indented JSON form of the record. Repeated
// calls produce byte-identical output.
func (r Record) Render() (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render record: %w", err)
	}
	return string(b), nil
}

// Print writes the rendering to w behind the "JSON: " prefix.
func (r Record) Print(w io.Writer) error {
	s, err := r.Render()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "JSON: %s\n", s)
	return err
}
