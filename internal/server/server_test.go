package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/svgsmith/svgsmith/pkg/cache"
	"github.com/svgsmith/svgsmith/pkg/pipeline"
)

const testManifest = `name   = "dot"
width  = 100.0
height = 100.0

[[shape]]
type = "circle"
r    = 25.0
cx   = 50.0
cy   = 50.0
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return New(Config{
		Logger: logger,
		Runner: pipeline.NewRunner(c, nil, logger),
	})
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func createScene(t *testing.T, s *Server, manifest string) sceneInfo {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/api/scenes", manifest)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var info sceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("create response: %v", err)
	}
	return info
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateAndGetScene(t *testing.T) {
	s := newTestServer(t)

	info := createScene(t, s, testManifest)
	if info.ID == "" {
		t.Fatal("create returned empty id")
	}
	if info.Name != "dot" {
		t.Errorf("Name = %q, want %q", info.Name, "dot")
	}

	rec := do(t, s, http.MethodGet, "/api/scenes/"+info.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/toml" {
		t.Errorf("content type = %q, want application/toml", ct)
	}
	if rec.Body.String() != testManifest {
		t.Errorf("stored manifest was altered:\n%s", rec.Body.String())
	}
}

func TestCreateSceneRejectsMalformedTOML(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/scenes", "width = [")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "INVALID_SCENE") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateSceneRejectsUnbuildableScene(t *testing.T) {
	s := newTestServer(t)

	// Parses fine but has no canvas dimensions.
	rec := do(t, s, http.MethodPost, "/api/scenes", `name = "empty"`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}
}

func TestListScenes(t *testing.T) {
	s := newTestServer(t)

	createScene(t, s, testManifest)
	createScene(t, s, strings.Replace(testManifest, "dot", "dot2", 1))

	rec := do(t, s, http.MethodGet, "/api/scenes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var infos []sceneInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("list response: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}

	rec = do(t, s, http.MethodGet, "/api/scenes?limit=1", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("limited list response: %v", err)
	}
	if len(infos) != 1 {
		t.Errorf("len(infos) = %d, want 1", len(infos))
	}
}

func TestDeleteScene(t *testing.T) {
	s := newTestServer(t)
	info := createScene(t, s, testManifest)

	rec := do(t, s, http.MethodDelete, "/api/scenes/"+info.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/api/scenes/"+info.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}

	rec = do(t, s, http.MethodDelete, "/api/scenes/"+info.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestRenderStoredScene(t *testing.T) {
	s := newTestServer(t)
	info := createScene(t, s, testManifest)

	rec := do(t, s, http.MethodGet, "/api/scenes/"+info.ID+"/render?format=svg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `<circle cx="50" cy="50" r="25" />`) {
		t.Errorf("unexpected markup:\n%s", rec.Body.String())
	}
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", got)
	}

	rec = do(t, s, http.MethodGet, "/api/scenes/"+info.ID+"/render?format=svg", "")
	if got := rec.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("X-Cache on second render = %q, want HIT", got)
	}
}

func TestRenderOnce(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/api/render?format=json", testManifest)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"circle"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRenderRejectsBadParams(t *testing.T) {
	s := newTestServer(t)
	info := createScene(t, s, testManifest)

	rec := do(t, s, http.MethodGet, "/api/scenes/"+info.ID+"/render?format=gif", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad format status = %d, want 400", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/api/scenes/"+info.ID+"/render?scale=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad scale status = %d, want 400", rec.Code)
	}

	rec = do(t, s, http.MethodGet, "/api/scenes/"+info.ID+"/render?scale=500", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized scale status = %d, want 400", rec.Code)
	}
}

func TestRenderMissingScene(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/scenes/nope/render", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "SCENE_NOT_FOUND") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
