package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"dayboard/internal/log"
)

func TestCondition(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear"},
		{1, "Cloudy"},
		{3, "Cloudy"},
		{51, "Drizzle"},
		{57, "Drizzle"},
		{61, "Rainy"},
		{67, "Rainy"},
		{71, "Snowy"},
		{77, "Snowy"},
		{80, "Showers"},
		{82, "Showers"},
		{95, "Clear"},
	}
	for _, tt := range tests {
		if got := Condition(tt.code); got != tt.want {
			t.Errorf("Condition(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestClient_CurrentCombinesUpstreams(t *testing.T) {
	meteo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"current":{"temperature_2m":18.5,"relative_humidity_2m":65,"wind_speed_10m":12.3,"weather_code":63}}`))
	}))
	defer meteo.Close()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"city":"Bologna","locality":"Centro"}`))
	}))
	defer geo.Close()

	c := NewClient(meteo.URL, geo.URL, log.New(log.DefaultConfig()))
	report := c.Current(context.Background(), 44.49, 11.34)

	if !report.Available {
		t.Fatal("report unavailable")
	}
	if report.Temperature != 18.5 || report.Humidity != 65 || report.WindSpeed != 12.3 {
		t.Errorf("report = %+v", report)
	}
	if report.Condition != "Rainy" {
		t.Errorf("condition = %q, want Rainy", report.Condition)
	}
	if report.Place != "Bologna" {
		t.Errorf("place = %q, want Bologna", report.Place)
	}
}

func TestClient_CurrentCachesPerCoordinate(t *testing.T) {
	var calls atomic.Int64
	meteo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"current":{"temperature_2m":10,"relative_humidity_2m":50,"wind_speed_10m":5,"weather_code":0}}`))
	}))
	defer meteo.Close()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city":"Milano"}`))
	}))
	defer geo.Close()

	c := NewClient(meteo.URL, geo.URL, log.New(log.DefaultConfig()))
	c.Current(context.Background(), 45.4642, 9.19)
	c.Current(context.Background(), 45.4643, 9.19) // rounds to the same key

	if got := calls.Load(); got != 1 {
		t.Errorf("upstream called %d times, want 1", got)
	}
}

func TestClient_UpstreamFailureDegrades(t *testing.T) {
	meteo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer meteo.Close()

	c := NewClient(meteo.URL, meteo.URL, log.New(log.DefaultConfig()))
	report := c.Current(context.Background(), 44.49, 11.34)

	if report.Available {
		t.Error("report should be unavailable when upstream fails")
	}
	if report != (Report{}) {
		t.Errorf("degraded report = %+v, want zero value", report)
	}

	// Failures are not cached; nothing stale lingers for the next call.
	if c.Cache().Size() != 0 {
		t.Errorf("cache size = %d after failure, want 0", c.Cache().Size())
	}
}

func TestClient_GeocodeFallsBackToLocality(t *testing.T) {
	meteo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{"temperature_2m":10,"relative_humidity_2m":50,"wind_speed_10m":5,"weather_code":0}}`))
	}))
	defer meteo.Close()

	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city":"","locality":"Trastevere"}`))
	}))
	defer geo.Close()

	c := NewClient(meteo.URL, geo.URL, log.New(log.DefaultConfig()))
	report := c.Current(context.Background(), 41.88, 12.47)

	if report.Place != "Trastevere" {
		t.Errorf("place = %q, want Trastevere", report.Place)
	}
}
