package draft

import "luxadmin/attach"

// Hydrate replaces the whole draft with one derived from a fetched remote
// record (a decoded JSON object). Every attachment slot comes back as a
// remote reference; repeatable groups are rebuilt from the remote arrays.
// Calling it again overwrites in-progress edits.
func (d *Draft) Hydrate(remote map[string]any) {
	d.Reset()
	for _, f := range d.Shape.Fields {
		rv, ok := remote[f.Name]
		if !ok || rv == nil {
			continue
		}
		d.Fields[f.Name] = hydrateValue(f, rv)
	}
}

func hydrateValue(f FieldSpec, rv any) any {
	switch f.Kind {
	case String:
		if s, ok := rv.(string); ok {
			return s
		}
	case Number:
		switch n := rv.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	case Bool:
		if b, ok := rv.(bool); ok {
			return b
		}
	case StringList:
		return toStringList(rv)
	case Slot:
		if url, ok := rv.(string); ok && url != "" {
			return attach.FromRemote(url)
		}
	case SlotGroup:
		g := attach.NewGroup(f.Cap)
		for _, url := range toStringList(rv) {
			g.Slots = append(g.Slots, attach.FromRemote(url))
		}
		return g
	case RecordGroup:
		items, ok := rv.([]any)
		if !ok {
			break
		}
		records := make([]Record, 0, len(items))
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			rec := NewRecord(f.Group)
			for _, sub := range f.Group.Fields {
				if sv, ok := obj[sub.Name]; ok && sv != nil {
					rec[sub.Name] = hydrateValue(sub, sv)
				}
			}
			records = append(records, rec)
		}
		if f.Seeded {
			records = EnsureMinimumOne(records, func() Record { return NewRecord(f.Group) })
		}
		return records
	}
	return emptyValue(f)
}

func toStringList(rv any) []string {
	switch l := rv.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, v := range l {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}
