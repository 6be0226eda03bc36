package validate

import (
	"testing"

	"luxadmin/draft"
)

// minimal rule set mirroring the tour form's core constraints
var coreTourRules = &Schema{
	Rules: []Rule{
		{Field: "title", Required: true},
		{Field: "price", Required: true, Min: f(0), Exclusive: true},
		{Field: "highlights", MinLen: 1},
	},
}

func TestCoreRulesOnEmptyDraft(t *testing.T) {
	d := draft.New(draft.TourShape)
	result := Validate(d, coreTourRules)

	if len(result.Errors) != 3 {
		t.Fatalf("expected exactly 3 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	for _, key := range []string{"title", "price", "highlights"} {
		if result.Errors[key] == "" {
			t.Errorf("missing error at %q", key)
		}
	}
}

func TestHighlightFixedByAppending(t *testing.T) {
	d := draft.New(draft.TourShape)
	d.SetScalar("title", "Everest Trek")
	d.SetScalar("price", 5000)

	result := Validate(d, coreTourRules)
	if result.OK {
		t.Fatal("draft without highlights validated")
	}
	if len(result.Errors) != 1 || result.Errors["highlights"] == "" {
		t.Fatalf("errors = %v", result.Errors)
	}

	hp := draft.Path{draft.F("highlights")}
	d.AppendAt(hp)
	d.UpdateRecordAt(hp, 0, map[string]any{"highlightsTitle": "Sunrise"})

	result = Validate(d, coreTourRules)
	if !result.OK {
		t.Fatalf("still failing: %v", result.Errors)
	}
}
