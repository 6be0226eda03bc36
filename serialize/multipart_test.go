package serialize

import (
	"bytes"
	"encoding/json"
	"mime"
	"mime/multipart"
	"testing"

	"luxadmin/attach"
	"luxadmin/draft"
)

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")

type parsedForm struct {
	values map[string][]string
	files  map[string][]string // field -> uploaded file names
}

func parse(t *testing.T, body *bytes.Buffer, contentType string) parsedForm {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatal(err)
	}
	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatal(err)
	}
	out := parsedForm{values: form.Value, files: map[string][]string{}}
	for field, headers := range form.File {
		for _, fh := range headers {
			out.files[field] = append(out.files[field], fh.Filename)
		}
	}
	return out
}

func (p parsedForm) value(field string) string {
	if v := p.values[field]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func newTourDraft(t *testing.T) (*draft.Draft, *attach.Tracker) {
	t.Helper()
	d := draft.New(draft.TourShape)
	d.SetScalar("title", "Everest Base Camp Trek")
	d.SetScalar("price", 1850.5)
	d.SetScalar("country", "Nepal")
	return d, attach.NewTracker(t.TempDir())
}

func TestBuildCreatePayload(t *testing.T) {
	d, tr := newTourDraft(t)

	thumb := d.Slot("thumbnail")
	if err := tr.Attach(thumb, "thumb.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}
	images := d.SlotGroup("images")
	if _, err := tr.AttachToGroup(images, "one.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AttachToGroup(images, "two.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}

	hp := draft.Path{draft.F("highlights")}
	d.AppendAt(hp)
	d.UpdateRecordAt(hp, 0, map[string]any{"highlightsTitle": "Kala Patthar sunrise"})

	body, contentType, err := Build(d, Create)
	if err != nil {
		t.Fatal(err)
	}
	form := parse(t, body, contentType)

	if form.value("title") != "Everest Base Camp Trek" || form.value("country") != "Nepal" {
		t.Fatalf("scalar fields wrong: %v", form.values)
	}
	if form.value("price") != "1850.5" {
		t.Fatalf("price = %q", form.value("price"))
	}

	if len(form.files["thumbnail"]) != 1 {
		t.Fatalf("thumbnail parts = %v", form.files["thumbnail"])
	}
	if len(form.files["images"]) != 2 {
		t.Fatalf("expected 2 image parts, got %v", form.files["images"])
	}

	var highlights []map[string]any
	if err := json.Unmarshal([]byte(form.value("highlights")), &highlights); err != nil {
		t.Fatalf("highlights not JSON: %v", err)
	}
	if len(highlights) != 1 || highlights[0]["highlightsTitle"] != "Kala Patthar sunrise" {
		t.Fatalf("highlights = %v", highlights)
	}

	if _, present := form.values["removedImages"]; present {
		t.Fatal("create payload must not carry removedImages")
	}
}

func TestBuildEditOmitsRetainedRemotes(t *testing.T) {
	d, _ := newTourDraft(t)
	d.Fields["thumbnail"] = attach.FromRemote("https://cdn.example.com/thumb.jpg")

	images := d.SlotGroup("images")
	images.Slots = append(images.Slots,
		attach.FromRemote("https://cdn.example.com/1.jpg"),
		attach.FromRemote("https://cdn.example.com/2.jpg"))

	body, contentType, err := Build(d, Edit)
	if err != nil {
		t.Fatal(err)
	}
	form := parse(t, body, contentType)

	// untouched remote attachments are omitted so the backend keeps them
	if _, present := form.values["thumbnail"]; present {
		t.Fatal("edit must omit a retained remote thumbnail")
	}
	if _, present := form.values["imagesExisting"]; present {
		t.Fatal("edit must not echo existing image urls")
	}
	if _, present := form.values["removedImages"]; present {
		t.Fatal("nothing was removed")
	}
}

func TestBuildEditReportsRemovals(t *testing.T) {
	d, tr := newTourDraft(t)
	d.Fields["thumbnail"] = attach.FromRemote("https://cdn.example.com/thumb.jpg")

	images := d.SlotGroup("images")
	images.Slots = append(images.Slots,
		attach.FromRemote("https://cdn.example.com/keep.jpg"),
		attach.FromRemote("https://cdn.example.com/drop.jpg"))

	// clear one gallery image and replace the thumbnail
	tr.Detach(images.Slots[1])
	if err := tr.Attach(d.Slot("thumbnail"), "new.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}

	body, contentType, err := Build(d, Edit)
	if err != nil {
		t.Fatal(err)
	}
	form := parse(t, body, contentType)

	if len(form.files["thumbnail"]) != 1 {
		t.Fatal("replacement thumbnail must be a binary part")
	}

	var removed []string
	if err := json.Unmarshal([]byte(form.value("removedImages")), &removed); err != nil {
		t.Fatalf("removedImages not JSON: %v", err)
	}
	want := map[string]bool{
		"https://cdn.example.com/thumb.jpg": true,
		"https://cdn.example.com/drop.jpg":  true,
	}
	if len(removed) != 2 || !want[removed[0]] || !want[removed[1]] {
		t.Fatalf("removedImages = %v", removed)
	}
}

func TestBuildCreateSendsRemoteReferences(t *testing.T) {
	d, _ := newTourDraft(t)
	d.Fields["thumbnail"] = attach.FromRemote("https://cdn.example.com/thumb.jpg")
	images := d.SlotGroup("images")
	images.Slots = append(images.Slots, attach.FromRemote("https://cdn.example.com/1.jpg"))

	body, contentType, err := Build(d, Create)
	if err != nil {
		t.Fatal(err)
	}
	form := parse(t, body, contentType)

	if form.value("thumbnail") != "https://cdn.example.com/thumb.jpg" {
		t.Fatalf("thumbnail = %q", form.value("thumbnail"))
	}
	var existing []string
	if err := json.Unmarshal([]byte(form.value("imagesExisting")), &existing); err != nil {
		t.Fatalf("imagesExisting not JSON: %v", err)
	}
	if len(existing) != 1 || existing[0] != "https://cdn.example.com/1.jpg" {
		t.Fatalf("imagesExisting = %v", existing)
	}
}

func TestBuildNestedGroupWithPendingPics(t *testing.T) {
	d, tr := newTourDraft(t)

	ip := draft.Path{draft.F("itineraries")}
	d.AppendAt(ip)
	d.UpdateRecordAt(ip, 0, map[string]any{"day": 1, "title": "Lukla", "description": "Fly in"})

	ap := draft.Path{draft.At("itineraries", 0), draft.F("accommodation")}
	d.AppendAt(ap)
	d.UpdateRecordAt(ap, 0, map[string]any{"accommodationTitle": "Lukla Lodge"})

	pics, err := d.SlotGroupAt(draft.Path{draft.At("itineraries", 0), draft.At("accommodation", 0), draft.F("accommodationPics")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AttachToGroup(pics, "lodge.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}

	body, contentType, err := Build(d, Create)
	if err != nil {
		t.Fatal(err)
	}
	form := parse(t, body, contentType)

	// nested pending pics ride along as parts under their own field name
	if len(form.files["accommodationPics"]) != 1 {
		t.Fatalf("accommodationPics parts = %v", form.files["accommodationPics"])
	}

	var itins []map[string]any
	if err := json.Unmarshal([]byte(form.value("itineraries")), &itins); err != nil {
		t.Fatal(err)
	}
	acc := itins[0]["accommodation"].([]any)[0].(map[string]any)
	if acc["accommodationTitle"] != "Lukla Lodge" {
		t.Fatalf("accommodation data = %v", acc)
	}
}
