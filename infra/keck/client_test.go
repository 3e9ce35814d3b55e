package keck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const scheduleFixture = `Date,TelNr,Instrument,Principal
2025-11-03,1,KPF-CC,Petigura
2025-11-17,1,KPF-CC,Petigura
2025-12-02,1,KPF-CC,Petigura
`

func TestSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("Instrument") != "KPF-CC" || q.Get("sem") != "2025B" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("Date") != "2025-11-01 to 2025-12-31" {
			t.Errorf("date range = %q", q.Get("Date"))
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(scheduleFixture))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Instrument: "KPF-CC", TimeoutSeconds: 5})
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	nights, err := c.Schedule(context.Background(), "2025B", from, to)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(nights) != 3 {
		t.Fatalf("got %d nights, want 3", len(nights))
	}
	if nights[0].Date.Format("2006-01-02") != "2025-11-03" || nights[0].Instrument != "KPF-CC" {
		t.Errorf("first night = %+v", nights[0])
	}

	byMonth := NightsByMonth(nights)
	if byMonth["2025-11"] != 2 || byMonth["2025-12"] != 1 {
		t.Errorf("per month counts = %v", byMonth)
	}
}

func TestScheduleRejectsHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>query form</body></html>"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Instrument: "KPF-CC", TimeoutSeconds: 5})
	_, err := c.Schedule(context.Background(), "2025B", time.Now(), time.Now())
	if err == nil {
		t.Fatal("want error when the endpoint answers with the form page")
	}
}
