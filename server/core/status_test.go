package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fixedStatus Status

func (f fixedStatus) Status() Status { return Status(f) }

func TestStatusEndpoints(t *testing.T) {
	mux := NewStatusMux(fixedStatus{Name: "test", Tick: 42, Bodies: 7, Contacts: 3})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"stats", http.MethodGet, "/stats", http.StatusOK},
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"wrong method", http.MethodPost, "/stats", http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/servers", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestStatsBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Stats(fixedStatus{Name: "test", Tick: 42, Bodies: 7})(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var got Status
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "test" || got.Tick != 42 || got.Bodies != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestServerStatus(t *testing.T) {
	s, _ := testServer(t, Options{Name: "local"})
	s.sim.Add(circle(0, 0))
	s.sim.Add(circle(9, 0))
	s.Step()

	st := s.Status()
	if st.Name != "local" || st.Tick != 1 || st.Bodies != 2 || st.Contacts != 1 || st.Synced != 2 {
		t.Errorf("status = %+v", st)
	}
}
