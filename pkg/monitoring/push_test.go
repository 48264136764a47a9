package monitoring

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestPushRunStats(t *testing.T) {
	var calls int32
	var path string
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := PushRunStats(server.URL, "post_reminder", RunStats{
		Records:  4,
		Triggers: 2,
		Sent:     1,
		Failed:   1,
		Duration: 3 * time.Second,
	})
	if err != nil {
		t.Fatalf("expected push to succeed, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", calls)
	}
	if !strings.Contains(path, "/metrics/job/post_reminder") {
		t.Fatalf("expected job path, got %s", path)
	}
	if !strings.Contains(string(body), "post_reminder_notifications_sent") {
		t.Fatalf("expected pushed payload to carry run metrics")
	}
}

func TestPushRunStatsGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no thanks", http.StatusBadGateway)
	}))
	defer server.Close()

	if err := PushRunStats(server.URL, "post_reminder", RunStats{}); err == nil {
		t.Fatal("expected error from gateway")
	}
}
