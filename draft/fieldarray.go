package draft

import "fmt"

// Index-addressed operations over a repeatable group. All of them are
// copy-on-write: the input slice is never mutated, so identity comparison
// detects change in the consuming layer. An out-of-range index is a
// programmer error and panics; indices are always derived from the current
// sequence before calling in.

func Append(records []Record, rec Record) []Record {
	out := make([]Record, len(records)+1)
	copy(out, records)
	out[len(records)] = rec
	return out
}

// UpdateAt replaces only the fields present in patch, preserving the rest
// of the record.
func UpdateAt(records []Record, i int, patch Record) []Record {
	mustBeInRange(i, len(records))
	out := make([]Record, len(records))
	copy(out, records)
	merged := records[i].clone()
	for k, v := range patch {
		merged[k] = v
	}
	out[i] = merged
	return out
}

func RemoveAt(records []Record, i int) []Record {
	mustBeInRange(i, len(records))
	out := make([]Record, 0, len(records)-1)
	out = append(out, records[:i]...)
	out = append(out, records[i+1:]...)
	return out
}

// EnsureMinimumOne re-seeds a group that must never render empty with one
// blank record. Deliberate UX default for link lists and their kin.
func EnsureMinimumOne(records []Record, factory func() Record) []Record {
	if len(records) > 0 {
		return records
	}
	return []Record{factory()}
}

func mustBeInRange(i, length int) {
	if i < 0 || i >= length {
		panic(fmt.Sprintf("draft: record index %d out of range [0,%d)", i, length))
	}
}
