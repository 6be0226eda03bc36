package draft

import "testing"

func testGroup() *GroupSpec {
	return &GroupSpec{Fields: []FieldSpec{
		{Name: "title", Kind: String},
		{Name: "day", Kind: Number},
	}}
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	gs := testGroup()
	original := []Record{{"title": "one"}}
	out := Append(original, NewRecord(gs))

	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if len(original) != 1 {
		t.Fatalf("input slice was mutated, len=%d", len(original))
	}
	if &out[0] == &original[0] {
		// backing arrays must differ
		t.Fatal("append reused the input backing array")
	}
}

func TestUpdateAtMergesPatch(t *testing.T) {
	records := []Record{{"title": "one", "day": float64(1)}}
	out := UpdateAt(records, 0, Record{"title": "changed"})

	if out[0]["title"] != "changed" {
		t.Fatalf("patch not applied: %v", out[0])
	}
	if out[0]["day"] != float64(1) {
		t.Fatalf("untouched field lost: %v", out[0])
	}
	if records[0]["title"] != "one" {
		t.Fatal("input record was mutated")
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	records := []Record{{"title": "a"}, {"title": "b"}, {"title": "c"}}
	out := RemoveAt(records, 1)

	if len(out) != 2 || out[0]["title"] != "a" || out[1]["title"] != "c" {
		t.Fatalf("unexpected result: %v", out)
	}
	if len(records) != 3 {
		t.Fatal("input slice was mutated")
	}
}

func TestAppendThenRemoveLastRestores(t *testing.T) {
	gs := testGroup()
	records := []Record{{"title": "a"}, {"title": "b"}}
	grown := Append(records, NewRecord(gs))
	shrunk := RemoveAt(grown, len(grown)-1)

	if len(shrunk) != len(records) {
		t.Fatalf("length %d, want %d", len(shrunk), len(records))
	}
	for i := range records {
		if shrunk[i]["title"] != records[i]["title"] {
			t.Fatalf("content drifted at %d: %v", i, shrunk[i])
		}
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range index")
		}
	}()
	UpdateAt([]Record{{"title": "a"}}, 5, Record{})
}

func TestEnsureMinimumOne(t *testing.T) {
	gs := testGroup()
	factory := func() Record { return NewRecord(gs) }

	out := EnsureMinimumOne(nil, factory)
	if len(out) != 1 {
		t.Fatalf("expected one seeded record, got %d", len(out))
	}

	existing := []Record{{"title": "keep"}}
	out = EnsureMinimumOne(existing, factory)
	if len(out) != 1 || out[0]["title"] != "keep" {
		t.Fatalf("non-empty group must pass through unchanged: %v", out)
	}
}
