package validate

import (
	"fmt"
	"strings"
	"unicode"

	"luxadmin/attach"
	"luxadmin/draft"
)

// ErrorMap maps rendered field paths (rooms[2].roomFacilities) to one
// human-readable message each. It is rebuilt from scratch on every pass.
type ErrorMap map[string]string

type Result struct {
	OK     bool     `json:"ok"`
	Errors ErrorMap `json:"errors,omitempty"`
}

// Rule is one declarative constraint on a field. The first violated check
// for a path wins; fields without a rule are never validated.
type Rule struct {
	Field     string
	Label     string
	Required  bool
	Min       *float64
	Exclusive bool // Min is an exclusive bound (price > 0)
	Max       *float64
	MinLen    int
	In        []string
}

// Schema is the rule set for one entity, with nested schemas for its
// repeatable groups keyed by group field name.
type Schema struct {
	Rules  []Rule
	Groups map[string]*Schema
}

// Validate traverses the schema depth-first against the draft tree and
// collects every failing path.
func Validate(d *draft.Draft, s *Schema) Result {
	errs := ErrorMap{}
	checkLevel(s, draft.Path{}, func(name string) any { return d.Fields[name] }, errs)
	return Result{OK: len(errs) == 0, Errors: errs}
}

func checkLevel(s *Schema, base draft.Path, lookup func(string) any, errs ErrorMap) {
	for _, rule := range s.Rules {
		path := base.Child(draft.F(rule.Field))
		if msg := check(rule, lookup(rule.Field)); msg != "" {
			key := path.String()
			if _, dup := errs[key]; !dup {
				errs[key] = msg
			}
		}
	}
	for name, sub := range s.Groups {
		records, _ := lookup(name).([]draft.Record)
		for i, rec := range records {
			rec := rec
			recBase := base.Child(draft.At(name, i))
			checkLevel(sub, recBase, func(field string) any { return rec[field] }, errs)
		}
	}
}

func check(r Rule, v any) string {
	label := r.Label
	if label == "" {
		label = labelFor(r.Field)
	}

	switch value := v.(type) {
	case string:
		trimmed := strings.TrimSpace(value)
		if r.Required && trimmed == "" {
			return label + " is required"
		}
		if trimmed != "" && len(r.In) > 0 && !contains(r.In, trimmed) {
			return label + " must be one of: " + strings.Join(r.In, ", ")
		}
	case float64:
		if !r.Required && value == 0 {
			return ""
		}
		if r.Min != nil {
			if r.Exclusive && value <= *r.Min {
				return fmt.Sprintf("%s must be greater than %g", label, *r.Min)
			}
			if !r.Exclusive && value < *r.Min {
				return fmt.Sprintf("%s must be at least %g", label, *r.Min)
			}
		}
		if r.Max != nil && value > *r.Max {
			return fmt.Sprintf("%s must be at most %g", label, *r.Max)
		}
	case []string:
		if minLen(r) > 0 && len(value) < minLen(r) {
			return requiredListMessage(label, minLen(r))
		}
	case []draft.Record:
		if minLen(r) > 0 && len(value) < minLen(r) {
			return requiredListMessage(label, minLen(r))
		}
	case *attach.Slot:
		if r.Required && value.State() == attach.Empty {
			return label + " is required"
		}
	case *attach.Group:
		if minLen(r) > 0 && value.Active() < minLen(r) {
			return requiredListMessage(label, minLen(r))
		}
	case nil:
		if r.Required || r.MinLen > 0 {
			return label + " is required"
		}
	}
	return ""
}

// minLen treats Required on an array-valued field as "at least one".
func minLen(r Rule) int {
	if r.MinLen > 0 {
		return r.MinLen
	}
	if r.Required {
		return 1
	}
	return 0
}

func requiredListMessage(label string, n int) string {
	if n == 1 {
		return label + " is required"
	}
	return fmt.Sprintf("%s requires at least %d entries", label, n)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// labelFor renders a camelCase field name as a spaced, capitalized label:
// roomFacilities -> Room Facilities.
func labelFor(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func f(v float64) *float64 { return &v }
