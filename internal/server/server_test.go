package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ziadkadry99/xrforge/internal/db"
	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/history"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

func newTestServer(t *testing.T, withHistory bool) (*Server, *history.Store) {
	t.Helper()
	var store *history.Store
	if withHistory {
		database, err := db.OpenMemory()
		if err != nil {
			t.Fatalf("OpenMemory: %v", err)
		}
		t.Cleanup(func() { database.Close() })
		store = history.NewStore(database)
	}
	return New(Config{Port: 0}, engine.NewTemplateProvider(), store, zap.NewNop()), store
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t, false)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, engine.NewTemplateProvider(), nil, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t, false)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "<textarea") {
		t.Error("index page should contain the prompt textarea")
	}
}

func postForm(srv *Server, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/generate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestGenerateForm(t *testing.T) {
	srv, store := newTestServer(t, true)

	w := postForm(srv, url.Values{"prompt": {"a peaceful underwater reef"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Your WebXR App Code") {
		t.Error("expected result heading")
	}
	if !strings.Contains(body, "The underwater Landscape") {
		t.Error("expected underwater title")
	}

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Topic != scene.TopicUnderwater || entries[0].Source != history.SourceHTTP {
		t.Errorf("unexpected history: %+v", entries)
	}
}

func TestGenerateFormEmptyPrompt(t *testing.T) {
	srv, store := newTestServer(t, true)

	w := postForm(srv, url.Values{"prompt": {"   "}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please enter a prompt!") {
		t.Error("expected empty prompt message")
	}

	entries, _ := store.Recent(context.Background(), 10)
	if len(entries) != 0 {
		t.Errorf("empty prompt should not be recorded, got %d entries", len(entries))
	}
}

func TestGenerateAPI(t *testing.T) {
	srv, _ := newTestServer(t, true)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantTopic  scene.Topic
	}{
		{"detect city", `{"prompt":"CITY of glass and BUILDINGs"}`, http.StatusOK, scene.TopicCity},
		{"empty prompt", `{"prompt":""}`, http.StatusBadRequest, ""},
		{"default forest", `{"prompt":"nothing in particular"}`, http.StatusOK, scene.TopicForest},
		{"override", `{"prompt":"a forest","topic":"underwater"}`, http.StatusOK, scene.TopicUnderwater},
		{"bad override", `{"prompt":"a forest","topic":"desert"}`, http.StatusBadRequest, ""},
		{"bad json", `{`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if body["error"] == "" {
					t.Error("expected error message")
				}
				return
			}

			var resp generateResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Topic != tt.wantTopic {
				t.Errorf("topic = %q, want %q", resp.Topic, tt.wantTopic)
			}
			if resp.ID == "" {
				t.Error("expected history ID")
			}
			if !strings.Contains(resp.Document, resp.BackgroundURL) {
				t.Error("document should contain its background URL")
			}
		})
	}
}

func TestGenerateAPIEmptyPromptMessage(t *testing.T) {
	srv, _ := newTestServer(t, false)

	req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{"prompt":"  "}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if strings.TrimSpace(w.Body.String()) != `{"error":"please enter a prompt"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestGenerateAPIRateLimited(t *testing.T) {
	provider := engine.NewRateLimitedProvider(engine.NewTemplateProvider(), 1, false)
	srv := New(Config{}, provider, nil, nil)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/generate", strings.NewReader(`{"prompt":"forest"}`))
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429]", codes)
	}
}

func TestPreview(t *testing.T) {
	srv, _ := newTestServer(t, false)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/preview?prompt="+url.QueryEscape("tall trees"), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != scene.GenerateDocument("tall trees") {
		t.Error("preview should serve the raw document")
	}

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/preview", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing prompt: expected 400, got %d", w.Code)
	}
}

func TestTopics(t *testing.T) {
	srv, _ := newTestServer(t, false)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/topics", nil))

	var topics []topicInfo
	if err := json.Unmarshal(w.Body.Bytes(), &topics); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	if topics[0].Topic != scene.TopicForest || topics[0].Title != "Enchanted Forest" {
		t.Errorf("unexpected first topic %+v", topics[0])
	}
	if len(topics[2].Keywords) == 0 {
		t.Error("expected keywords")
	}
}

func TestHistoryRoutesOnlyWhenEnabled(t *testing.T) {
	srv, _ := newTestServer(t, false)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/history", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("without history: expected 404, got %d", w.Code)
	}

	srv, _ = newTestServer(t, true)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/history", nil))
	if w.Code != http.StatusOK {
		t.Errorf("with history: expected 200, got %d", w.Code)
	}
}

func TestHistoryFailureDoesNotFailRequest(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	store := history.NewStore(database)
	database.Close()

	core, logs := observer.New(zap.WarnLevel)
	srv := New(Config{}, engine.NewTemplateProvider(), store, zap.New(core))

	req := httptest.NewRequest("POST", "/api/generate", bytes.NewBufferString(`{"prompt":"city"}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if logs.FilterMessage("recording history failed").Len() != 1 {
		t.Error("expected history failure to be logged")
	}
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	srv := New(Config{}, engine.NewTemplateProvider(), nil, zap.New(core))

	srv.Router().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))
	srv.Router().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/preview", nil))

	entries := logs.FilterMessage("request handled").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Errorf("200 logged at %v, want info", entries[0].Level)
	}
	if entries[1].Level != zap.WarnLevel {
		t.Errorf("400 logged at %v, want warn", entries[1].Level)
	}
	if entries[0].ContextMap()["status"] != int64(200) {
		t.Errorf("unexpected status field %v", entries[0].ContextMap()["status"])
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	srv, _ := newTestServer(t, false)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestStartShutdownConcurrently(t *testing.T) {
	srv, _ := newTestServer(t, false)

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("Start returned %v, want http.ErrServerClosed", err)
		}
	case <-ctx.Done():
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestPreviewIsNotRecorded(t *testing.T) {
	srv, store := newTestServer(t, true)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest("GET", "/preview?prompt=city", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("preview should not be recorded, got %d entries", len(entries))
	}
}
