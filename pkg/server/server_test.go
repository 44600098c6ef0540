package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/matte/pkg/errors"
	"github.com/matzehuels/matte/pkg/observability"
	"github.com/matzehuels/matte/pkg/session"
	"github.com/matzehuels/matte/pkg/settings"
)

func newTestServer(t *testing.T, doc *settings.Document) (*httptest.Server, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()
	if doc != nil {
		if err := store.Set(context.Background(), session.DefaultName, doc); err != nil {
			t.Fatal(err)
		}
	}
	s := New(Options{Store: store, Logger: log.New(io.Discard)})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, store
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, nil)
	resp, body := get(t, ts.URL+"/api/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"status", "version", "commit", "date"} {
		if got[key] == "" {
			t.Errorf("health response missing %q: %s", key, body)
		}
	}
}

func TestTemplates(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/api/templates")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	var got []templateJSON
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 7 {
		t.Fatalf("templates = %d, want 7", len(got))
	}
	for i, tmpl := range got {
		if tmpl.Index != i {
			t.Errorf("templates[%d].Index = %d", i, tmpl.Index)
		}
		if len(tmpl.Boxes) != len(tmpl.Cuts)+1 {
			t.Errorf("%s: %d boxes for %d cuts", tmpl.Name, len(tmpl.Boxes), len(tmpl.Cuts))
		}
	}
}

func TestTemplateLookup(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	tests := []struct {
		path   string
		status int
		code   errors.Code
	}{
		{"/api/templates/2", http.StatusOK, ""},
		{"/api/templates/99", http.StatusNotFound, errors.ErrCodeInvalidTemplate},
		{"/api/templates/abc", http.StatusNotFound, errors.ErrCodeInvalidTemplate},
		{"/api/templates/0/preview.gif", http.StatusBadRequest, errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, tt.status, body)
			}
			if tt.code == "" {
				return
			}
			var e errorResponse
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatal(err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Code, tt.code)
			}
		})
	}
}

func TestTemplatePreview(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/api/templates/0/preview.svg")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.Contains(body, []byte("<svg")) {
		t.Error("body is not an svg document")
	}
}

func TestDocumentEmpty(t *testing.T) {
	ts, _ := newTestServer(t, nil)

	resp, body := get(t, ts.URL+"/api/document")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	doc, err := settings.Decode(body)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Template != 0 || len(doc.Regions) != 0 {
		t.Errorf("document = %+v, want empty template 0", doc)
	}

	_, cmd := get(t, ts.URL+"/api/document/command")
	want := "convert -size 4200x3250 -font Arial-Bold -pointsize 72 xc:black out.png\n"
	if diff := cmp.Diff(want, string(cmd)); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentWithRegion(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "photo.png")
	if err := imaging.Save(imaging.New(200, 100, color.NRGBA{0, 255, 0, 255}), img); err != nil {
		t.Fatal(err)
	}
	doc := settings.New(0)
	doc.Regions[1] = &settings.Region{
		Crop:   settings.Crop{W: 200, H: 100},
		Width:  400,
		Height: 200,
		Path:   img,
	}
	ts, _ := newTestServer(t, doc)

	_, cmd := get(t, ts.URL+"/api/document/command")
	if !strings.Contains(string(cmd), img) || !strings.Contains(string(cmd), "-crop 200x100+0+0") {
		t.Errorf("command = %s", cmd)
	}

	resp, body := get(t, ts.URL+"/api/document/preview.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preview status = %d, body %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}

	resp, _ = get(t, ts.URL+"/api/document/diagram.png")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("diagram status = %d", resp.StatusCode)
	}
}

func TestCompositeMissingImage(t *testing.T) {
	doc := settings.New(0)
	doc.Regions[1] = &settings.Region{
		Crop:   settings.Crop{W: 10, H: 10},
		Width:  10,
		Height: 10,
		Path:   filepath.Join(t.TempDir(), "gone.png"),
	}
	ts, _ := newTestServer(t, doc)

	resp, _ := get(t, ts.URL+"/api/document/preview.png")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestReadOnly(t *testing.T) {
	ts, _ := newTestServer(t, nil)
	resp, err := http.Post(ts.URL+"/api/document", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", resp.StatusCode)
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	ts, _ := newTestServer(t, nil)
	get(t, ts.URL+"/api/health")
	get(t, ts.URL+"/api/templates/42")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if diff := cmp.Diff([]int{http.StatusOK, http.StatusNotFound}, hooks.statuses); diff != "" {
		t.Errorf("statuses mismatch (-want +got):\n%s", diff)
	}
}
