package draft

import "luxadmin/attach"

// Record is one structured item inside a repeatable group. Values are the
// Go forms matching the field's Kind: string, float64, bool, []string,
// *attach.Slot, *attach.Group or []Record.
type Record map[string]any

// NewRecord builds a record with every field at its empty value. Nested
// repeatable groups start empty, or with one blank record when seeded.
func NewRecord(gs *GroupSpec) Record {
	r := Record{}
	for _, f := range gs.Fields {
		r[f.Name] = emptyValue(f)
	}
	return r
}

func emptyValue(f FieldSpec) any {
	switch f.Kind {
	case String:
		return ""
	case Number:
		return float64(0)
	case Bool:
		return false
	case StringList:
		return []string{}
	case Slot:
		return attach.NewSlot()
	case SlotGroup:
		return attach.NewGroup(f.Cap)
	case RecordGroup:
		if f.Seeded {
			return []Record{NewRecord(f.Group)}
		}
		return []Record{}
	}
	return nil
}

// clone copies the record map itself; contained slices and groups are
// shared until an operation replaces them.
func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
