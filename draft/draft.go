package draft

import (
	"fmt"

	"luxadmin/attach"
)

// Draft is the in-memory, user-editable tree of one entity being created
// or edited. It is owned by exactly one form session and mutated only
// through its setters and the field-array operations.
type Draft struct {
	Shape   *Shape
	Fields  map[string]any
	touched map[string]bool
}

func New(shape *Shape) *Draft {
	d := &Draft{Shape: shape}
	d.Reset()
	return d
}

// Reset returns every field to its initial empty value.
func (d *Draft) Reset() {
	fields := make(map[string]any, len(d.Shape.Fields))
	for _, f := range d.Shape.Fields {
		fields[f.Name] = emptyValue(f)
	}
	d.Fields = fields
	d.touched = make(map[string]bool)
}

// SetScalar assigns a top-level scalar or string-list field. The value must
// match the field's declared primitive type; range and format checks are
// the validator's job. The field is marked touched for edit dirty-tracking.
func (d *Draft) SetScalar(name string, value any) error {
	spec, ok := d.Shape.Field(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	coerced, err := coerceScalar(spec, value)
	if err != nil {
		return err
	}
	d.Fields[name] = coerced
	d.touched[name] = true
	return nil
}

func coerceScalar(spec FieldSpec, value any) (any, error) {
	switch spec.Kind {
	case String:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case Number:
		switch n := value.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
	case Bool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
	case StringList:
		switch l := value.(type) {
		case []string:
			return l, nil
		case []any:
			out := make([]string, 0, len(l))
			for _, v := range l {
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("field %q expects a list of strings", spec.Name)
				}
				out = append(out, s)
			}
			return out, nil
		}
	default:
		return nil, fmt.Errorf("field %q is not a scalar", spec.Name)
	}
	return nil, fmt.Errorf("field %q expects %s", spec.Name, kindName(spec.Kind))
}

func kindName(k Kind) string {
	switch k {
	case String:
		return "a string"
	case Number:
		return "a number"
	case Bool:
		return "a boolean"
	case StringList:
		return "a list of strings"
	}
	return "an unsupported type"
}

func (d *Draft) Touched(name string) bool { return d.touched[name] }

// --- Typed read access ---

func (d *Draft) String(name string) string {
	s, _ := d.Fields[name].(string)
	return s
}

func (d *Draft) Number(name string) float64 {
	n, _ := d.Fields[name].(float64)
	return n
}

func (d *Draft) Bool(name string) bool {
	b, _ := d.Fields[name].(bool)
	return b
}

func (d *Draft) List(name string) []string {
	l, _ := d.Fields[name].([]string)
	return l
}

func (d *Draft) Slot(name string) *attach.Slot {
	s, _ := d.Fields[name].(*attach.Slot)
	return s
}

func (d *Draft) SlotGroup(name string) *attach.Group {
	g, _ := d.Fields[name].(*attach.Group)
	return g
}

// --- Nested group resolution ---

// GroupAt resolves a repeatable group addressed by path. Every segment but
// the last must carry a record index; the final segment names the group.
func (d *Draft) GroupAt(path Path) ([]Record, *GroupSpec, error) {
	if len(path) == 0 {
		return nil, nil, fmt.Errorf("empty group path")
	}
	spec, ok := d.Shape.Field(path[0].Name)
	if !ok || spec.Kind != RecordGroup {
		return nil, nil, fmt.Errorf("no group %q", path[0].Name)
	}
	records, _ := d.Fields[path[0].Name].([]Record)

	for i := 0; i < len(path)-1; i++ {
		seg := path[i]
		if seg.Index < 0 || seg.Index >= len(records) {
			return nil, nil, fmt.Errorf("index %d out of range in group %q", seg.Index, seg.Name)
		}
		next := path[i+1]
		sub, ok := spec.Group.field(next.Name)
		if !ok || sub.Kind != RecordGroup {
			return nil, nil, fmt.Errorf("no group %q in %q", next.Name, seg.Name)
		}
		records, _ = records[seg.Index][next.Name].([]Record)
		spec = sub
	}
	return records, spec.Group, nil
}

// SlotAt resolves a single attachment slot addressed by path (a slot field
// on the draft itself or inside a record).
func (d *Draft) SlotAt(path Path) (*attach.Slot, error) {
	v, spec, err := d.valueAt(path)
	if err != nil {
		return nil, err
	}
	if spec.Kind != Slot {
		return nil, fmt.Errorf("%s is not an attachment slot", path)
	}
	return v.(*attach.Slot), nil
}

// SlotGroupAt resolves a multi-image group addressed by path.
func (d *Draft) SlotGroupAt(path Path) (*attach.Group, error) {
	v, spec, err := d.valueAt(path)
	if err != nil {
		return nil, err
	}
	if spec.Kind != SlotGroup {
		return nil, fmt.Errorf("%s is not an image group", path)
	}
	return v.(*attach.Group), nil
}

func (d *Draft) valueAt(path Path) (any, FieldSpec, error) {
	if len(path) == 0 {
		return nil, FieldSpec{}, fmt.Errorf("empty path")
	}
	if len(path) == 1 {
		spec, ok := d.Shape.Field(path[0].Name)
		if !ok {
			return nil, FieldSpec{}, fmt.Errorf("unknown field %q", path[0].Name)
		}
		return d.Fields[path[0].Name], spec, nil
	}
	parent := path[:len(path)-1]
	records, gs, err := d.GroupAt(parent)
	if err != nil {
		return nil, FieldSpec{}, err
	}
	last := parent[len(parent)-1]
	if last.Index < 0 || last.Index >= len(records) {
		return nil, FieldSpec{}, fmt.Errorf("index %d out of range in group %q", last.Index, last.Name)
	}
	leaf := path[len(path)-1]
	spec, ok := gs.field(leaf.Name)
	if !ok {
		return nil, FieldSpec{}, fmt.Errorf("unknown field %q in %q", leaf.Name, last.Name)
	}
	return records[last.Index][leaf.Name], spec, nil
}

// apply rewrites the group at path through op, rebuilding fresh record
// copies up the chain so parent identities change as well.
func (d *Draft) apply(path Path, op func([]Record, *GroupSpec) ([]Record, error)) error {
	records, gs, err := d.GroupAt(path)
	if err != nil {
		return err
	}
	updated, err := op(records, gs)
	if err != nil {
		return err
	}
	d.Fields[path[0].Name] = d.rebuild(path, updated)
	d.touched[path[0].Name] = true
	return nil
}

// rebuild returns the new top-level record slice with the updated group
// spliced in at the nested position.
func (d *Draft) rebuild(path Path, updated []Record) []Record {
	if len(path) == 1 {
		return updated
	}
	top, _ := d.Fields[path[0].Name].([]Record)
	return splice(top, path, 0, updated)
}

func splice(records []Record, path Path, depth int, updated []Record) []Record {
	seg := path[depth]
	out := make([]Record, len(records))
	copy(out, records)
	rec := records[seg.Index].clone()
	childName := path[depth+1].Name
	if depth+1 == len(path)-1 {
		rec[childName] = updated
	} else {
		child, _ := records[seg.Index][childName].([]Record)
		rec[childName] = splice(child, path, depth+1, updated)
	}
	out[seg.Index] = rec
	return out
}

// AppendAt adds one blank record to the group at path.
func (d *Draft) AppendAt(path Path) error {
	return d.apply(path, func(records []Record, gs *GroupSpec) ([]Record, error) {
		return Append(records, NewRecord(gs)), nil
	})
}

// UpdateRecordAt patches the record at index in the group at path. Patch
// values are coerced against the group's field specs.
func (d *Draft) UpdateRecordAt(path Path, index int, patch map[string]any) error {
	return d.apply(path, func(records []Record, gs *GroupSpec) ([]Record, error) {
		if index < 0 || index >= len(records) {
			return nil, fmt.Errorf("index %d out of range in group %q", index, path[len(path)-1].Name)
		}
		coerced := Record{}
		for k, v := range patch {
			spec, ok := gs.field(k)
			if !ok {
				return nil, fmt.Errorf("unknown field %q in group %q", k, path[len(path)-1].Name)
			}
			cv, err := coerceScalar(spec, v)
			if err != nil {
				return nil, err
			}
			coerced[k] = cv
		}
		return UpdateAt(records, index, coerced), nil
	})
}

// RemoveRecordAt removes the record at index, re-seeding one blank record
// for groups declared Seeded. Day labels of remaining itinerary records are
// left as they were.
func (d *Draft) RemoveRecordAt(path Path, index int) error {
	gspec, err := d.GroupSpecAt(path)
	if err != nil {
		return err
	}
	return d.apply(path, func(records []Record, gs *GroupSpec) ([]Record, error) {
		if index < 0 || index >= len(records) {
			return nil, fmt.Errorf("index %d out of range in group %q", index, path[len(path)-1].Name)
		}
		out := RemoveAt(records, index)
		if gspec.Seeded {
			out = EnsureMinimumOne(out, func() Record { return NewRecord(gs) })
		}
		return out, nil
	})
}

// GroupSpecAt returns the FieldSpec declaring the group at path.
func (d *Draft) GroupSpecAt(path Path) (FieldSpec, error) {
	if len(path) == 0 {
		return FieldSpec{}, fmt.Errorf("empty group path")
	}
	if len(path) == 1 {
		spec, ok := d.Shape.Field(path[0].Name)
		if !ok || spec.Kind != RecordGroup {
			return FieldSpec{}, fmt.Errorf("no group %q", path[0].Name)
		}
		return spec, nil
	}
	_, gs, err := d.GroupAt(path[:len(path)-1])
	if err != nil {
		return FieldSpec{}, err
	}
	spec, ok := gs.field(path[len(path)-1].Name)
	if !ok || spec.Kind != RecordGroup {
		return FieldSpec{}, fmt.Errorf("no group %q", path[len(path)-1].Name)
	}
	return spec, nil
}

// Slots walks the whole tree and returns every attachment slot; used for
// session teardown so each outstanding preview is released exactly once.
func (d *Draft) Slots() []*attach.Slot {
	var out []*attach.Slot
	for _, f := range d.Shape.Fields {
		out = append(out, collectSlots(f, d.Fields[f.Name])...)
	}
	return out
}

func collectSlots(f FieldSpec, v any) []*attach.Slot {
	switch f.Kind {
	case Slot:
		if s, ok := v.(*attach.Slot); ok {
			return []*attach.Slot{s}
		}
	case SlotGroup:
		if g, ok := v.(*attach.Group); ok {
			return g.Slots
		}
	case RecordGroup:
		records, _ := v.([]Record)
		var out []*attach.Slot
		for _, rec := range records {
			for _, sub := range f.Group.Fields {
				out = append(out, collectSlots(sub, rec[sub.Name])...)
			}
		}
		return out
	}
	return nil
}
