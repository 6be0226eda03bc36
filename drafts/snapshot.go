package drafts

import (
	"path/filepath"

	"luxadmin/attach"
	"luxadmin/draft"
)

// Snapshot renders the draft tree for the admin UI: scalars verbatim,
// attachment slots as state + displayable URL.
func Snapshot(d *draft.Draft) map[string]any {
	out := map[string]any{}
	for _, f := range d.Shape.Fields {
		out[f.Name] = snapshotValue(f, d.Fields[f.Name])
	}
	return out
}

func snapshotValue(f draft.FieldSpec, v any) any {
	switch f.Kind {
	case draft.Slot:
		s, _ := v.(*attach.Slot)
		return slotSnapshot(s)
	case draft.SlotGroup:
		g, _ := v.(*attach.Group)
		if g == nil {
			return nil
		}
		slots := make([]map[string]any, 0, len(g.Slots))
		for _, s := range g.Slots {
			if s.State() == attach.Empty {
				continue
			}
			slots = append(slots, slotSnapshot(s))
		}
		return map[string]any{"cap": g.Cap, "slots": slots}
	case draft.RecordGroup:
		records, _ := v.([]draft.Record)
		out := make([]map[string]any, 0, len(records))
		for _, rec := range records {
			obj := map[string]any{}
			for _, sub := range f.Group.Fields {
				obj[sub.Name] = snapshotValue(sub, rec[sub.Name])
			}
			out = append(out, obj)
		}
		return out
	}
	return v
}

func slotSnapshot(s *attach.Slot) map[string]any {
	if s == nil {
		return map[string]any{"state": "empty"}
	}
	switch s.State() {
	case attach.RemoteReference:
		return map[string]any{"state": "remote", "url": s.URL()}
	case attach.LocalPending:
		return map[string]any{"state": "local", "preview": "/" + filepath.ToSlash(s.Staged())}
	}
	return map[string]any{"state": "empty"}
}
