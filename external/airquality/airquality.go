// Package airquality wraps the weather provider's geocoding and air
// pollution endpoints.
package airquality

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/caremate/companion-api/schema"
)

const (
	defaultURL = "https://api.openweathermap.org"
)

var (
	// ErrEmptyAPIKey marks a missing provider credential. This is a
	// configuration error and is surfaced to the user without retry.
	ErrEmptyAPIKey = fmt.Errorf("empty air quality api key")

	errBadStatus    = fmt.Errorf("air quality provider returned non-ok status")
	errCityNotFound = fmt.Errorf("no geocoding result for city")
)

// Provider - interface for the weather/air-quality service
type Provider interface {
	Concentrations(ctx context.Context, lat, lng float64) (schema.PollutantConcentrations, error)
	Geocode(ctx context.Context, city string) (schema.Location, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (schema.Location, error)
}

type provider struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

type pollutionResponse struct {
	List []struct {
		Components schema.PollutantConcentrations `json:"components"`
	} `json:"list"`
}

type geocodeEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

func (p *provider) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if p.apiKey == "" {
		return ErrEmptyAPIKey
	}
	query.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+path+"?"+query.Encode(), nil)
	if nil != err {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errBadStatus
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	return json.Unmarshal(d, out)
}

func (p *provider) Concentrations(ctx context.Context, lat, lng float64) (schema.PollutantConcentrations, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))

	var r pollutionResponse
	if err := p.get(ctx, "/data/2.5/air_pollution", query, &r); err != nil {
		return schema.PollutantConcentrations{}, err
	}

	if len(r.List) == 0 {
		return schema.PollutantConcentrations{}, fmt.Errorf("empty air pollution response")
	}

	return r.List[0].Components, nil
}

func (p *provider) Geocode(ctx context.Context, city string) (schema.Location, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("limit", "1")

	var entries []geocodeEntry
	if err := p.get(ctx, "/geo/1.0/direct", query, &entries); err != nil {
		return schema.Location{}, err
	}

	if len(entries) == 0 {
		return schema.Location{}, errCityNotFound
	}

	return schema.Location{
		Latitude:    entries[0].Lat,
		Longitude:   entries[0].Lon,
		City:        entries[0].Name,
		CountryCode: entries[0].Country,
	}, nil
}

func (p *provider) ReverseGeocode(ctx context.Context, lat, lng float64) (schema.Location, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lng))
	query.Set("limit", "1")

	var entries []geocodeEntry
	if err := p.get(ctx, "/geo/1.0/reverse", query, &entries); err != nil {
		return schema.Location{}, err
	}

	if len(entries) == 0 {
		return schema.Location{}, errCityNotFound
	}

	return schema.Location{
		Latitude:    entries[0].Lat,
		Longitude:   entries[0].Lon,
		City:        entries[0].Name,
		CountryCode: entries[0].Country,
	}, nil
}

// New - new Provider against the given base URL
func New(apiKey string, baseURL string, httpClient *http.Client) Provider {
	u := defaultURL
	if baseURL != "" {
		u = baseURL
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &provider{
		apiKey:     apiKey,
		url:        u,
		httpClient: httpClient,
	}
}
