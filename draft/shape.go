package draft

// Kind declares the primitive type of a draft field.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	StringList
	Slot        // single attachment slot (thumbnail, logo)
	SlotGroup   // ordered multi-image group with a capacity
	RecordGroup // repeatable group of records
)

// FieldSpec declares one field of a draft or record. Name doubles as the
// upstream form/JSON key.
type FieldSpec struct {
	Name   string
	Kind   Kind
	Group  *GroupSpec // RecordGroup only
	Cap    int        // SlotGroup only
	Seeded bool       // RecordGroup: never left empty, re-seeds one blank record
}

// GroupSpec declares the record layout of a repeatable group.
type GroupSpec struct {
	Fields []FieldSpec
}

func (g *GroupSpec) field(name string) (FieldSpec, bool) {
	for _, f := range g.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Shape is the full declared layout of one entity's draft.
type Shape struct {
	Entity string
	Fields []FieldSpec
}

func (s *Shape) Field(name string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
