package frontmatter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sgx-labs/notegate/internal/metadata"
)

// Sigil prefixes recognized at the head of a legacy note.
const (
	notebookSigil = "= "
	tagsSigil     = "@ "
)

// Rule is one line-prefix substitution applied by a Substituter.
type Rule struct {
	Prefix      string
	Replacement string
}

// LegacyRules are the two rewrites that turn sigil lines into plain
// header lines.
var LegacyRules = []Rule{
	{Prefix: notebookSigil, Replacement: "Notebook: "},
	{Prefix: tagsSigil, Replacement: "Tags: "},
}

// Substituter applies line-prefix substitution rules to a document.
// Implementations run an external tool; a non-zero exit must surface as
// an error.
type Substituter interface {
	Substitute(content string, rules []Rule) (string, error)
}

// ConvertError reports a failed legacy-header rewrite. ExitCode carries
// the substitution tool's exit status, or -1 when the tool never ran.
type ConvertError struct {
	ExitCode int
	Err      error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("legacy frontmatter conversion failed (exit %d): %v", e.ExitCode, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// LegacyProcessor rewrites sigil-style headers into plain header lines.
type LegacyProcessor struct {
	sub Substituter
}

// NewLegacyProcessor builds a LegacyProcessor around the given
// substitution capability.
func NewLegacyProcessor(sub Substituter) *LegacyProcessor {
	return &LegacyProcessor{sub: sub}
}

// Process reads the note and, when a contiguous block of sigil lines sits
// at its head, rewrites every sigil prefix in the document via the
// substituter. The result is ordinary header text rather than a mapping,
// so the returned record is always empty; converted reports whether the
// content was rewritten. A failed substitution is fatal and comes back as
// a *ConvertError — never retried, never swallowed.
func (p *LegacyProcessor) Process(f *os.File) (rec metadata.Record, content string, converted bool, err error) {
	text, readErr := readAll(f)
	if readErr != nil {
		return metadata.Record{}, "", false, nil
	}

	if !hasSigilHeader(text) {
		return metadata.Record{}, text, false, nil
	}

	out, subErr := p.sub.Substitute(text, LegacyRules)
	if subErr != nil {
		code := -1
		var exitErr interface{ ExitCode() int }
		if errors.As(subErr, &exitErr) {
			code = exitErr.ExitCode()
		}
		return nil, "", false, &ConvertError{ExitCode: code, Err: subErr}
	}
	return metadata.Record{}, out, true, nil
}

// hasSigilHeader reports whether the document starts with at least one
// sigil line. Only the contiguous block at the very top counts; a sigil
// further down is body text.
func hasSigilHeader(text string) bool {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimRight(first, "\r")
	return strings.HasPrefix(first, notebookSigil) || strings.HasPrefix(first, tagsSigil)
}
