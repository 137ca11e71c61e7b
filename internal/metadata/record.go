// Package metadata merges raw attribute lookups into logical note fields.
package metadata

// Record maps a field name to either a single scalar or an ordered,
// duplicate-free list of scalars. Built fresh per document; never mutated
// after it is returned.
type Record map[string]any

// Merge combines raw lookup results for one field into a single value.
// Each raw result is flattened (a scalar becomes a one-element sequence,
// a list stays as-is, nil becomes empty), the sequences are concatenated
// in input order, nil and empty-string elements are removed, and the rest
// is deduplicated keeping the first occurrence. A one-element result
// collapses to the bare scalar.
func Merge(raws []any) any {
	var flat []any
	for _, raw := range raws {
		switch v := raw.(type) {
		case nil:
		case []any:
			flat = append(flat, v...)
		case []string:
			for _, s := range v {
				flat = append(flat, s)
			}
		default:
			flat = append(flat, v)
		}
	}

	seen := make(map[any]struct{}, len(flat))
	merged := make([]any, 0, len(flat))
	for _, v := range flat {
		if v == nil || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		merged = append(merged, v)
	}

	if len(merged) == 1 {
		return merged[0]
	}
	return merged
}
