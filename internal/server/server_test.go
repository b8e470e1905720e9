package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/roadmap/pkg/cache"
	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/observability"
	"github.com/matzehuels/roadmap/pkg/pipeline"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestServer(t *testing.T, source string, options ...Option) (*Server, *httptest.Server) {
	t.Helper()
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, quietLogger())
	options = append([]Option{WithLogger(quietLogger())}, options...)
	s := New(runner, pipeline.Options{Source: source}, options...)
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	_, ts := newTestServer(t, "builtin:deep-learning")

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/", http.StatusOK, "text/html", `id="roadmap-details"`},
		{"/roadmap.svg", http.StatusOK, "image/svg+xml", `<svg`},
		{"/roadmap.svg?selected=pytorch&drawer=1", http.StatusOK, "image/svg+xml", `class="drawer"`},
		{"/layout.json", http.StatusOK, "application/json", `"connectors"`},
		{"/api/nodes", http.StatusOK, "application/json", `"id":"pytorch"`},
		{"/?selected=Not%20An%20Id", http.StatusBadRequest, "application/json", `INVALID_INPUT`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d: %s", resp.StatusCode, tt.status, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body does not contain %q", tt.contains)
			}
		})
	}
}

func TestNodeDetail(t *testing.T) {
	_, ts := newTestServer(t, "builtin:deep-learning")

	resp, body := get(t, ts.URL+"/api/nodes/python")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	var got drawerResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Open || !got.Available || got.Title != "Python Basics" || got.Category != "Language" {
		t.Errorf("drawer = %+v", got)
	}
	if got.Heading != drawer.Heading || len(got.Resources) != 2 {
		t.Fatalf("resources = %+v", got.Resources)
	}
	if !got.Resources[0].Placeholder || got.Resources[0].Icon != "video" {
		t.Errorf("first resource = %+v, want placeholder video", got.Resources[0])
	}
}

func TestNodeDetailUnknownIsPlaceholder(t *testing.T) {
	_, ts := newTestServer(t, "builtin:deep-learning")

	resp, body := get(t, ts.URL+"/api/nodes/ghost")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	var got drawerResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Open || got.Available || got.Placeholder != drawer.Unavailable || got.NodeID != "ghost" {
		t.Errorf("drawer = %+v, want open placeholder", got)
	}
}

// countingCache records every key written through it.
type countingCache struct {
	cache.Cache
	mu   sync.Mutex
	keys []string
}

func (c *countingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	c.keys = append(c.keys, key)
	c.mu.Unlock()
	return c.Cache.Set(ctx, key, data, ttl)
}

func (c *countingCache) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys)
}

func TestUnknownSelectionNotCached(t *testing.T) {
	cc := &countingCache{Cache: cache.NewNullCache()}
	runner := pipeline.NewRunner(cc, nil, quietLogger())
	s := New(runner, pipeline.Options{Source: "builtin:deep-learning"}, WithLogger(quietLogger()))
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	base := cc.count()

	for _, id := range []string{"ghost", "ghost-2", "ghost-3"} {
		resp, body := get(t, ts.URL+"/roadmap.svg?drawer=1&selected="+id)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d: %s", resp.StatusCode, body)
		}
		if !strings.Contains(body, drawer.Unavailable) {
			t.Errorf("selected=%s: drawer missing %q", id, drawer.Unavailable)
		}
	}
	if got := cc.count(); got != base {
		t.Errorf("unknown selections wrote %d cache entries", got-base)
	}

	resp, body := get(t, ts.URL+"/roadmap.svg?drawer=1&selected=pytorch")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if got := cc.count(); got != base+1 {
		t.Errorf("known selection wrote %d cache entries, want 1", got-base)
	}
}

func TestRequestID(t *testing.T) {
	_, ts := newTestServer(t, "builtin:starter")

	resp, _ := get(t, ts.URL+"/healthz")
	if id := resp.Header.Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("generated request id = %q", id)
	}

	const given = "0b6c8f0e-3a52-4f1b-9d1c-7f4f2a7e5c11"
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, given)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != given {
		t.Errorf("request id = %q, want %q", got, given)
	}
}

type recordingHooks struct {
	observability.NoopSelectionHooks
	observability.NoopHTTPHooks

	mu       sync.Mutex
	selected map[string]bool
	routes   []string
}

func (h *recordingHooks) OnSelect(_ context.Context, id string, found bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selected[id] = found
}

func (h *recordingHooks) OnResponse(_ context.Context, _, route string, _ int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, route)
}

func TestHooks(t *testing.T) {
	h := &recordingHooks{selected: map[string]bool{}}
	observability.SetSelectionHooks(h)
	observability.SetHTTPHooks(h)
	t.Cleanup(observability.Reset)

	_, ts := newTestServer(t, "builtin:deep-learning")
	get(t, ts.URL+"/api/nodes/pytorch")
	get(t, ts.URL+"/api/nodes/ghost")

	h.mu.Lock()
	defer h.mu.Unlock()
	if found, ok := h.selected["pytorch"]; !ok || !found {
		t.Errorf("pytorch selection = %v, %v", found, ok)
	}
	if found, ok := h.selected["ghost"]; !ok || found {
		t.Errorf("ghost selection = %v, %v; want recorded as not found", found, ok)
	}
	for _, r := range h.routes {
		if r != "/api/nodes/{id}" {
			t.Errorf("route = %q, want pattern", r)
		}
	}
}

func TestMetrics(t *testing.T) {
	p := observability.NewPrometheus(prometheus.NewRegistry())
	p.Register()
	t.Cleanup(observability.Reset)

	_, ts := newTestServer(t, "builtin:deep-learning", WithMetrics(p.Handler()))
	get(t, ts.URL+"/api/nodes/python")

	resp, body := get(t, ts.URL+"/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"roadmap_selections_total", `route="/api/nodes/{id}"`, "roadmap_stage_duration_seconds"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestNoMetricsRouteWithoutHandler(t *testing.T) {
	_, ts := newTestServer(t, "builtin:starter")
	resp, _ := get(t, ts.URL+"/metrics")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

const watchDoc = `
title = "%s"

[[nodes]]
id = "start"
title = "Start"
kind = "start"

[[nodes]]
id = "topic"
title = "Topic"
y = 120.0

[[edges]]
from = "start"
to = "topic"
`

func writeDoc(t *testing.T, path, title string) {
	t.Helper()
	data := strings.Replace(watchDoc, "%s", title, 1)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.toml")
	writeDoc(t, path, "first")

	s, _ := newTestServer(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := s.Watch(ctx, path, 20*time.Millisecond); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	writeDoc(t, path, "second")

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		g, _, _ := s.snapshot()
		if g.Meta().Title == "second" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("roadmap was not reloaded after the file changed")
}

func TestReloadErrorKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roadmap.toml")
	writeDoc(t, path, "kept")
	s, ts := newTestServer(t, path)

	if err := os.WriteFile(path, []byte("[[nodes]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error for malformed document")
	}

	resp, body := get(t, ts.URL+"/api/nodes/topic")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"title":"Topic"`) {
		t.Errorf("previous roadmap not served: %d %s", resp.StatusCode, body)
	}
}
