// Package conflict removes Git merge-conflict markers from text files.
//
// The "ours" side of each conflict (before =======) is kept and the
// "theirs" side (between ======= and >>>>>>>) is dropped together with the
// marker lines themselves.
package conflict

import (
	"fmt"
	"os"
	"strings"
)

// Marker prefixes as written by git.
const (
	StartMarker = "<<<<<<< "
	MidMarker   = "======="
	EndMarker   = ">>>>>>> "
)

// Result describes the outcome of cleaning one document.
type Result struct {
	Content string
	// Blocks counts start markers seen.
	Blocks  int
	Removed int
	// Unterminated is set when input ended inside a "theirs" section.
	// Everything after the last ======= was discarded in that case.
	Unterminated bool
}

// Changed reports whether any line was removed.
func (r Result) Changed() bool {
	return r.Removed > 0
}

// Clean filters conflict markers and duplicate sections out of content.
func Clean(content string) Result {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))

	var res Result

	inDuplicate := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, StartMarker):
			inDuplicate = false
			res.Blocks++
		case strings.HasPrefix(line, MidMarker):
			inDuplicate = true
		case strings.HasPrefix(line, EndMarker):
			inDuplicate = false
		case inDuplicate:
		default:
			kept = append(kept, line)
			continue
		}

		res.Removed++
	}

	res.Content = strings.Join(kept, "\n")
	res.Unterminated = inDuplicate

	return res
}

// CleanFile cleans the file at path and rewrites it in place.
// The file is rewritten even when nothing changed.
func CleanFile(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := Clean(string(data))

	if err := os.WriteFile(path, []byte(res.Content), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return res, nil
}
