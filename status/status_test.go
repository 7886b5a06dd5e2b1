package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("speed")
	b := m.Get("speed")
	if a != b {
		t.Fatal("expected same pointer for repeated Get")
	}
	if !m.Has("speed") || m.Has("score") {
		t.Error("Has reports wrong membership")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k).Store(k)
	}
	var keys []string
	m.Range(func(key string, ptr *AtomicString) {
		keys = append(keys, key)
	})
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("Range order = %v", keys)
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Load(); got != 400 {
		t.Errorf("Get = %v, want 400", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should load empty")
	}
	long := strings.Repeat("x", MaxStringLen+10)
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}

	// Multi-byte rune straddling the limit is dropped whole
	straddle := strings.Repeat("x", MaxStringLen-1) + "é"
	s.Store(straddle)
	if got := s.Load(); got != strings.Repeat("x", MaxStringLen-1) {
		t.Errorf("rune cut mid-sequence: %q", got)
	}
}

func TestAtomicStringStoreReportsChange(t *testing.T) {
	var s AtomicString
	if !s.Store("running") {
		t.Error("first store should report a change")
	}
	if s.Store("running") {
		t.Error("same value should not be republished")
	}
	if !s.Store("not_running") || s.Load() != "not_running" {
		t.Errorf("Load = %q after change", s.Load())
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("game.running").Store(true)
	r.Ints.Get("game.score").Store(42)
	r.Floats.Get("game.speed").Store(5.5)
	r.Strings.Get("game.run_id").Store("abc")

	snap := r.Snapshot()
	if len(snap) != 4 || r.TotalCount() != 4 {
		t.Fatalf("snapshot size = %d, total = %d", len(snap), r.TotalCount())
	}
	if snap["game.running"] != true || snap["game.score"] != int64(42) ||
		snap["game.speed"] != 5.5 || snap["game.run_id"] != "abc" {
		t.Errorf("unexpected snapshot %v", snap)
	}
}

func TestServerRoutes(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("game.score").Store(7)
	s := &Server{registry: r}
	router := s.Router()

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{"health", http.MethodGet, "/healthz", http.StatusOK, "ok"},
		{"status", http.MethodGet, "/status", http.StatusOK, `"game.score":7`},
		{"single metric", http.MethodGet, "/status/game.score", http.StatusOK, `"game.score":7`},
		{"unknown metric", http.MethodGet, "/status/nope", http.StatusNotFound, "unknown metric"},
		{"wrong method", http.MethodPost, "/status", http.StatusMethodNotAllowed, ""},
		{"unknown route", http.MethodGet, "/metrics", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestServerServeAndClose(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get("game.running").Store(false)
	s, err := NewServer("127.0.0.1:0", r)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve() }()

	resp, err := http.Get("http://" + s.Addr() + "/status")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if body["game.running"] != false {
		t.Errorf("game.running = %v", body["game.running"])
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v", err)
	}
}
