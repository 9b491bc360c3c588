package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Provider yields the current observation for a station. The service layer
// depends on this interface so tests can substitute fixed conditions.
type Provider interface {
	// Current returns the latest observation for the station, or nil when
	// none is available. A nil observation is not an error: the caller
	// defaults to suitable conditions.
	Current(ctx context.Context, station string) (*Observation, error)
}

type httpProvider struct {
	cfg  Config
	http *http.Client
}

// NewHTTPProvider creates a Provider that fetches current conditions over
// HTTP. When cfg.Enabled is false, Current always returns nil.
func NewHTTPProvider(cfg Config) Provider {
	return &httpProvider{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
	}
}

// stationReport is the JSON shape returned by the observation endpoint.
type stationReport struct {
	Station      string  `json:"icaoId"`
	CeilingFt    int     `json:"ceiling_ft"`
	VisibilitySM float64 `json:"visibility_sm"`
	WindKt       int     `json:"wind_kt"`
	ObservedAt   string  `json:"observed_at"`
}

func (p *httpProvider) Current(ctx context.Context, station string) (*Observation, error) {
	if !p.cfg.Enabled {
		return nil, nil
	}

	url := fmt.Sprintf("%s?ids=%s&format=json", p.cfg.Endpoint, station)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating weather request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching observation: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading observation: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var reports []stationReport
	if err := json.Unmarshal(body, &reports); err != nil {
		return nil, fmt.Errorf("decoding observation: %w", err)
	}
	if len(reports) == 0 {
		return nil, nil
	}

	r := reports[0]
	obs := &Observation{
		Station:      r.Station,
		CeilingFt:    r.CeilingFt,
		VisibilitySM: r.VisibilitySM,
		WindKt:       r.WindKt,
	}
	if t, err := time.Parse(time.RFC3339, r.ObservedAt); err == nil {
		obs.ObservedAt = t
	}
	return obs, nil
}
