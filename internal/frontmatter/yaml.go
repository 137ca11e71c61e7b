// Package frontmatter detects and normalizes metadata headers on notes.
//
// Two incompatible header syntaxes exist in the wild: YAML frontmatter
// fenced by "---" lines, and the legacy sigil form ("= Notebook",
// "@ tags"). YAMLProcessor parses the former; LegacyProcessor rewrites
// the latter into plain header lines for a downstream parser.
package frontmatter

import (
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/sgx-labs/notegate/internal/metadata"
)

// Delimiter fences a YAML frontmatter block.
const Delimiter = "---"

// YAMLProcessor extracts a YAML frontmatter block from a note.
// The source file is only ever read, never rewritten.
type YAMLProcessor struct{}

// Process reads the note and, when its first line is the delimiter and a
// closing delimiter line follows, returns the parsed mapping and the body
// after the closing line. In every other case — no delimiter, no closing
// line, unparseable block, or an unreadable handle — it returns an empty
// record and found=false, meaning the caller should use the original
// document unchanged. Absence of frontmatter is not an error.
func (YAMLProcessor) Process(f *os.File) (metadata.Record, string, bool) {
	content, err := readAll(f)
	if err != nil {
		return metadata.Record{}, "", false
	}

	first, rest, _ := strings.Cut(content, "\n")
	if strings.TrimRight(first, "\r") != Delimiter {
		return metadata.Record{}, "", false
	}
	if !hasClosingDelimiter(rest) {
		return metadata.Record{}, "", false
	}

	var matter map[string]any
	body, err := frontmatter.Parse(strings.NewReader(content), &matter)
	if err != nil {
		// Opening delimiter without a valid block; leave the note alone.
		return metadata.Record{}, "", false
	}

	rec := make(metadata.Record, len(matter))
	for k, v := range matter {
		if v == nil || v == "" {
			continue
		}
		rec[k] = v
	}
	return rec, string(body), true
}

// hasClosingDelimiter reports whether any full line after the opening
// marker consists solely of the delimiter.
func hasClosingDelimiter(rest string) bool {
	for _, line := range strings.Split(rest, "\n") {
		if strings.TrimRight(line, "\r") == Delimiter {
			return true
		}
	}
	return false
}

// readAll reads the whole note from the start of the handle.
func readAll(f *os.File) (string, error) {
	if f == nil {
		return "", os.ErrInvalid
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
