package metadata

import (
	"errors"
	"fmt"
	"os"
)

// Configuration errors, surfaced at construction time.
var (
	ErrNoKeys    = errors.New("metadata: aggregator needs at least one target key")
	ErrNilLookup = errors.New("metadata: aggregator needs a lookup function")
)

// LookupFunc resolves one source key against a document. It returns a
// scalar, a list of scalars, or nil when the source has nothing for the
// key. Errors are not downgraded: a failing source fails the whole call.
type LookupFunc func(f *os.File, sourceKey string) (any, error)

// Aggregator runs a set of raw lookups per target key and merges them
// into one Record entry each.
type Aggregator struct {
	keys   map[string][]string
	lookup LookupFunc
}

// NewAggregator builds an Aggregator from a target-key → source-keys
// mapping and a lookup function. Both are required; a target key with an
// empty source list is rejected too.
func NewAggregator(keys map[string][]string, lookup LookupFunc) (*Aggregator, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	if lookup == nil {
		return nil, ErrNilLookup
	}
	own := make(map[string][]string, len(keys))
	for target, sources := range keys {
		if len(sources) == 0 {
			return nil, fmt.Errorf("%w: target %q has no source keys", ErrNoKeys, target)
		}
		own[target] = append([]string(nil), sources...)
	}
	return &Aggregator{keys: own, lookup: lookup}, nil
}

// Keys returns a copy of the configured target-key → source-keys mapping.
func (a *Aggregator) Keys() map[string][]string {
	out := make(map[string][]string, len(a.keys))
	for target, sources := range a.keys {
		out[target] = append([]string(nil), sources...)
	}
	return out
}

// Process looks up every source key for every target key and merges the
// results. The returned Record has one entry per target key; a target
// whose sources all came back empty maps to an empty list.
func (a *Aggregator) Process(f *os.File) (Record, error) {
	rec := make(Record, len(a.keys))
	for target, sources := range a.keys {
		raws := make([]any, 0, len(sources))
		for _, src := range sources {
			raw, err := a.lookup(f, src)
			if err != nil {
				return nil, fmt.Errorf("lookup %s for %s: %w", src, target, err)
			}
			raws = append(raws, raw)
		}
		rec[target] = Merge(raws)
	}
	return rec, nil
}
