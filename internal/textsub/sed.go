// Package textsub runs the external line-substitution tool used to
// rewrite legacy note headers.
package textsub

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sgx-labs/notegate/internal/frontmatter"
)

// Sed applies substitution rules by piping the document through sed.
// The invocation is synchronous with no timeout; the tool is local and
// fast.
type Sed struct {
	// Bin is the sed executable, "sed" when empty.
	Bin string
}

// Substitute pipes content through sed with one `s/^prefix/replacement/`
// expression per rule. A non-zero exit comes back wrapped around the
// *exec.ExitError so callers can read the exit status.
func (s Sed) Substitute(content string, rules []frontmatter.Rule) (string, error) {
	bin := s.Bin
	if bin == "" {
		bin = "sed"
	}

	args := make([]string, 0, 2*len(rules))
	for _, r := range rules {
		args = append(args, "-e", Expression(r))
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(content)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %s: %w", bin, msg, err)
		}
		return "", fmt.Errorf("%s: %w", bin, err)
	}
	return stdout.String(), nil
}

// Expression renders one rule as a sed substitution anchored to the
// start of the line.
func Expression(r frontmatter.Rule) string {
	return "s/^" + escape(r.Prefix) + "/" + escape(r.Replacement) + "/"
}

// escape guards the characters sed treats specially inside an s///
// expression, so a rule always matches its prefix literally.
func escape(s string) string {
	repl := strings.NewReplacer(
		`\`, `\\`, `/`, `\/`, `&`, `\&`,
		`.`, `\.`, `*`, `\*`, `[`, `\[`, `]`, `\]`, `^`, `\^`, `$`, `\$`,
	)
	return repl.Replace(s)
}
