package gateway

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Client{BaseURL: srv.URL, HTTP: &http.Client{Timeout: 2 * time.Second}}, srv
}

func TestGetJSONDecodesEnvelope(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok123" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"success":true,"data":{"title":"Everest"}}`))
	})
	defer srv.Close()

	var out struct {
		Title string `json:"title"`
	}
	if err := c.GetJSON(context.Background(), "/tours/1", "tok123", &out); err != nil {
		t.Fatal(err)
	}
	if out.Title != "Everest" {
		t.Fatalf("title = %q", out.Title)
	}
}

func TestBusinessFailureIsUpstreamError(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"title already taken"}`))
	})
	defer srv.Close()

	err := c.PostJSON(context.Background(), "/tours", "tok", map[string]string{}, nil)
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("got %T, want *UpstreamError", err)
	}
	if ue.Status != http.StatusConflict || ue.Message != "title already taken" {
		t.Fatalf("status=%d message=%q", ue.Status, ue.Message)
	}
}

func TestSuccessFalseWithOKStatus(t *testing.T) {
	// backends sometimes report failure inside a 200
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"validation failed"}`))
	})
	defer srv.Close()

	err := c.GetJSON(context.Background(), "/tours", "", nil)
	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.Message != "validation failed" {
		t.Fatalf("got %v", err)
	}
}

func TestSubmitMultipartPassesBodyThrough(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "multipart/form-data; boundary=xyz" {
			t.Errorf("content type = %q", ct)
		}
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		w.Write([]byte(`{"success":true,"message":"updated","data":{"_id":"t1"}}`))
	})
	defer srv.Close()

	body := bytes.NewBufferString("--xyz--")
	envelope, err := c.SubmitMultipart(context.Background(), http.MethodPut, "/tours/t1", "tok",
		body, "multipart/form-data; boundary=xyz")
	if err != nil {
		t.Fatal(err)
	}
	if envelope.Message != "updated" {
		t.Fatalf("message = %q", envelope.Message)
	}
}

func TestDelete(t *testing.T) {
	var gotPath string
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	})
	defer srv.Close()

	if err := c.Delete(context.Background(), "/tours/t9", "tok"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/tours/t9" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestSearchGuardDropsStaleResponses(t *testing.T) {
	g := NewSearchGuard()

	first := g.Begin("list:tour")
	second := g.Begin("list:tour")

	if !g.Stale("list:tour", first) {
		t.Fatal("superseded generation must read stale")
	}
	if g.Stale("list:tour", second) {
		t.Fatal("freshest generation must not read stale")
	}

	// generations are per key
	other := g.Begin("list:trek")
	if g.Stale("list:trek", other) {
		t.Fatal("other key's generation wrongly stale")
	}
}
