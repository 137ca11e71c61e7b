// Package fileprops reads note attributes straight from the filesystem.
package fileprops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sgx-labs/notegate/internal/metadata"
)

// Getter reads one named attribute from an open file.
type Getter func(f *os.File) (any, error)

// accessors maps the attribute names a key table may reference to their
// getters. Resolved once at configuration time; an unknown name is a
// configuration error, not a runtime miss.
var accessors = map[string]Getter{
	"path": func(f *os.File) (any, error) {
		return filepath.Abs(f.Name())
	},
	"name": func(f *os.File) (any, error) {
		return filepath.Base(f.Name()), nil
	},
	"size": func(f *os.File) (any, error) {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		return info.Size(), nil
	},
	"mtime": func(f *os.File) (any, error) {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		return info.ModTime().UTC().Format(time.RFC3339), nil
	},
	"mode": func(f *os.File) (any, error) {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		return info.Mode().String(), nil
	},
}

// Attributes lists the attribute names a key table may use as sources.
func Attributes() []string {
	names := make([]string, 0, len(accessors))
	for name := range accessors {
		names = append(names, name)
	}
	return names
}

// NewProcessor builds an aggregator whose sources are filesystem
// attributes of the open note. Every configured source key must name a
// known attribute.
func NewProcessor(keys map[string][]string) (*metadata.Aggregator, error) {
	for target, sources := range keys {
		for _, src := range sources {
			if _, ok := accessors[src]; !ok {
				return nil, fmt.Errorf("fileprops: target %q references unknown attribute %q", target, src)
			}
		}
	}
	return metadata.NewAggregator(keys, func(f *os.File, attribute string) (any, error) {
		return accessors[attribute](f)
	})
}
