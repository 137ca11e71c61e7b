// Package spotlight reads note attributes from the OS metadata index.
package spotlight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sgx-labs/notegate/internal/metadata"
)

// Querier looks up one attribute for a file path in the metadata index.
// An attribute the index does not carry yields (nil, nil).
type Querier interface {
	Query(path, attribute string) (any, error)
}

// NewProcessor builds an aggregator whose sources are index attributes,
// resolved through q against the file's path.
func NewProcessor(keys map[string][]string, q Querier) (*metadata.Aggregator, error) {
	if q == nil {
		return nil, metadata.ErrNilLookup
	}
	return metadata.NewAggregator(keys, func(f *os.File, attribute string) (any, error) {
		return q.Query(f.Name(), attribute)
	})
}

// MDLS queries the index through the mdls tool, one attribute per
// invocation.
type MDLS struct {
	// Bin is the mdls executable, "mdls" when empty.
	Bin string
}

// Query runs `mdls -raw -name <attribute> <path>` and decodes its output.
func (m MDLS) Query(path, attribute string) (any, error) {
	bin := m.Bin
	if bin == "" {
		bin = "mdls"
	}
	out, err := exec.Command(bin, "-raw", "-name", attribute, path).Output()
	if err != nil {
		return nil, fmt.Errorf("mdls %s %s: %w", attribute, path, err)
	}
	return ParseRaw(string(out)), nil
}

// ParseRaw decodes mdls -raw output: "(null)" means the attribute is
// absent, a parenthesised block is a list with one quoted item per line,
// anything else is a bare scalar.
func ParseRaw(out string) any {
	out = strings.TrimSpace(out)
	if out == "" || out == "(null)" {
		return nil
	}

	if strings.HasPrefix(out, "(") && strings.HasSuffix(out, ")") {
		inner := out[1 : len(out)-1]
		var items []any
		for _, line := range strings.Split(inner, "\n") {
			item := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
			item = strings.Trim(item, `"`)
			if item == "" {
				continue
			}
			items = append(items, item)
		}
		return items
	}

	return strings.Trim(out, `"`)
}
