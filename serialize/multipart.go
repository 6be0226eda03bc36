package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"luxadmin/attach"
	"luxadmin/draft"
)

// Mode selects create (full payload) or edit (merge) semantics.
type Mode int

const (
	Create Mode = iota
	Edit
)

// Build flattens a validated draft into a multipart payload. Scalars become
// flat form values, pure-data groups a single JSON-string-valued key, and
// every LocalPending attachment a binary part under its group's shared
// field name, in traversal order. Edit payloads omit attachments still in
// RemoteReference state (the upstream retains them when the key is absent)
// and report explicitly cleared or replaced images under "removedImages".
//
// Build is not reentrant for one draft; callers hold the session's
// in-flight flag around it and the upstream call.
func Build(d *draft.Draft, mode Mode) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	var removed []string

	for _, f := range d.Shape.Fields {
		v := d.Fields[f.Name]
		switch f.Kind {
		case draft.String:
			if err := w.WriteField(f.Name, d.String(f.Name)); err != nil {
				return nil, "", err
			}
		case draft.Number:
			if err := w.WriteField(f.Name, formatNumber(d.Number(f.Name))); err != nil {
				return nil, "", err
			}
		case draft.Bool:
			if err := w.WriteField(f.Name, strconv.FormatBool(d.Bool(f.Name))); err != nil {
				return nil, "", err
			}
		case draft.StringList:
			if err := writeJSONField(w, f.Name, d.List(f.Name)); err != nil {
				return nil, "", err
			}
		case draft.Slot:
			slot := d.Slot(f.Name)
			r, err := writeSlot(w, f.Name, slot, mode)
			if err != nil {
				return nil, "", err
			}
			removed = append(removed, r...)
		case draft.SlotGroup:
			group := d.SlotGroup(f.Name)
			r, err := writeSlotGroup(w, f.Name, group, mode)
			if err != nil {
				return nil, "", err
			}
			removed = append(removed, r...)
		case draft.RecordGroup:
			records, _ := v.([]draft.Record)
			data, r, err := groupData(w, f, records, mode)
			if err != nil {
				return nil, "", err
			}
			removed = append(removed, r...)
			if err := writeJSONField(w, f.Name, data); err != nil {
				return nil, "", err
			}
		}
	}

	if mode == Edit && len(removed) > 0 {
		if err := writeJSONField(w, "removedImages", removed); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func writeSlot(w *multipart.Writer, field string, s *attach.Slot, mode Mode) ([]string, error) {
	if s == nil {
		return nil, nil
	}
	var removed []string
	if mode == Edit && s.URL() != "" && (s.Change() == attach.Cleared || s.Change() == attach.Replaced) {
		removed = append(removed, s.URL())
	}
	switch s.State() {
	case attach.LocalPending:
		if err := writeFilePart(w, field, s.Staged()); err != nil {
			return nil, err
		}
	case attach.RemoteReference:
		// Create sends the reference through; edit omits it so the
		// upstream keeps the stored image.
		if mode == Create {
			if err := w.WriteField(field, s.URL()); err != nil {
				return nil, err
			}
		}
	}
	return removed, nil
}

func writeSlotGroup(w *multipart.Writer, field string, g *attach.Group, mode Mode) ([]string, error) {
	if g == nil {
		return nil, nil
	}
	var removed []string
	if mode == Edit {
		removed = g.Removed()
	}
	for _, s := range g.Pending() {
		if err := writeFilePart(w, field, s.Staged()); err != nil {
			return nil, err
		}
	}
	if mode == Create {
		if remotes := g.Remotes(); len(remotes) > 0 {
			if err := writeJSONField(w, field+"Existing", remotes); err != nil {
				return nil, err
			}
		}
	}
	return removed, nil
}

// groupData renders a repeatable group as plain data for its JSON key and
// emits binary parts for any nested pending attachments on the way.
func groupData(w *multipart.Writer, f draft.FieldSpec, records []draft.Record, mode Mode) ([]map[string]any, []string, error) {
	out := make([]map[string]any, 0, len(records))
	var removed []string
	for _, rec := range records {
		obj := map[string]any{}
		for _, sub := range f.Group.Fields {
			v := rec[sub.Name]
			switch sub.Kind {
			case draft.String, draft.Number, draft.Bool, draft.StringList:
				obj[sub.Name] = v
			case draft.Slot:
				s, _ := v.(*attach.Slot)
				if s != nil && s.State() == attach.RemoteReference {
					obj[sub.Name] = s.URL()
				}
			case draft.SlotGroup:
				g, _ := v.(*attach.Group)
				if g == nil {
					obj[sub.Name] = []string{}
					continue
				}
				if mode == Edit {
					removed = append(removed, g.Removed()...)
				}
				for _, s := range g.Pending() {
					if err := writeFilePart(w, sub.Name, s.Staged()); err != nil {
						return nil, nil, err
					}
				}
				obj[sub.Name] = g.Remotes()
			case draft.RecordGroup:
				subRecords, _ := v.([]draft.Record)
				nested, r, err := groupData(w, sub, subRecords, mode)
				if err != nil {
					return nil, nil, err
				}
				removed = append(removed, r...)
				obj[sub.Name] = nested
			}
		}
		out = append(out, obj)
	}
	return out, removed, nil
}

func writeFilePart(w *multipart.Writer, field, stagedPath string) error {
	src, err := os.Open(stagedPath)
	if err != nil {
		return fmt.Errorf("open staged file: %w", err)
	}
	defer src.Close()

	part, err := w.CreateFormFile(field, filepath.Base(stagedPath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy staged file: %w", err)
	}
	return nil
}

func writeJSONField(w *multipart.Writer, field string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteField(field, string(data))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
