package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitable_Thresholds(t *testing.T) {
	good := Observation{CeilingFt: 4500, VisibilitySM: 10, WindKt: 8}
	assert.True(t, Suitable(good))

	lowCeiling := good
	lowCeiling.CeilingFt = 1200
	assert.False(t, Suitable(lowCeiling))

	lowVis := good
	lowVis.VisibilitySM = 2
	assert.False(t, Suitable(lowVis))

	windy := good
	windy.WindKt = 22
	assert.False(t, Suitable(windy))

	marginal := Observation{CeilingFt: MinCeilingFt, VisibilitySM: MinVisibilitySM, WindKt: MaxWindKt}
	assert.True(t, Suitable(marginal), "limits themselves are flyable")
}

func TestHTTPProvider_DisabledReturnsNil(t *testing.T) {
	p := NewHTTPProvider(Config{Enabled: false})

	obs, err := p.Current(context.Background(), "KPAO")

	require.NoError(t, err)
	assert.Nil(t, obs)
}

func TestHTTPProvider_ParsesReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KPAO", r.URL.Query().Get("ids"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"icaoId":"KPAO","ceiling_ft":4000,"visibility_sm":10,"wind_kt":6,"observed_at":"2025-06-02T15:00:00Z"}]`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(Config{Enabled: true, Endpoint: srv.URL, TimeoutMs: 2000})
	obs, err := p.Current(context.Background(), "KPAO")

	require.NoError(t, err)
	require.NotNil(t, obs)
	assert.Equal(t, "KPAO", obs.Station)
	assert.Equal(t, 4000, obs.CeilingFt)
	assert.Equal(t, 6, obs.WindKt)
	assert.Equal(t, time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC), obs.ObservedAt)
}

func TestHTTPProvider_EmptyReportIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(Config{Enabled: true, Endpoint: srv.URL, TimeoutMs: 2000})
	obs, err := p.Current(context.Background(), "KPAO")

	require.NoError(t, err)
	assert.Nil(t, obs)
}

func TestHTTPProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProvider(Config{Enabled: true, Endpoint: srv.URL, TimeoutMs: 2000})
	_, err := p.Current(context.Background(), "KPAO")

	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SKYWARD_WX_ENABLED", "")
	t.Setenv("SKYWARD_WX_ENDPOINT", "")
	t.Setenv("SKYWARD_WX_TIMEOUT_MS", "")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, 5000, cfg.TimeoutMs)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SKYWARD_WX_ENABLED", "true")
	t.Setenv("SKYWARD_WX_ENDPOINT", "http://localhost:9999")
	t.Setenv("SKYWARD_WX_TIMEOUT_MS", "1234")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:9999", cfg.Endpoint)
	assert.Equal(t, 1234, cfg.TimeoutMs)
}
