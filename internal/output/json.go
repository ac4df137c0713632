// Package output writes the JSON documents consumed by the frontend.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Indent is the indentation used for every document.
const Indent = "  "

// Marshal encodes v as indented UTF-8 JSON. Non-ASCII text and HTML
// characters are written as-is. The result ends with a newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteJSON encodes v and writes it to path, replacing any existing file.
func WriteJSON(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
