// Package ipgeo resolves the caller's approximate location from their IP
// address. The lookup is best effort; callers fall back to other resolvers
// on failure.
package ipgeo

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/caremate/companion-api/schema"
)

const (
	defaultURL    = "http://ip-api.com/json"
	statusSuccess = "success"
)

var errLookupFailed = fmt.Errorf("ip geolocation lookup failed")

// Resolver - interface for IP-based geolocation
type Resolver interface {
	Lookup(ctx context.Context) (schema.Location, error)
}

type resolver struct {
	url        string
	httpClient *http.Client
}

type jsonResponse struct {
	Status      string  `json:"status"`
	CountryCode string  `json:"countryCode"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

func (r *resolver) Lookup(ctx context.Context) (schema.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if nil != err {
		return schema.Location{}, err
	}

	resp, err := r.httpClient.Do(req)
	if nil != err {
		return schema.Location{}, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return schema.Location{}, err
	}

	var body jsonResponse
	if err := json.Unmarshal(d, &body); err != nil {
		return schema.Location{}, err
	}

	if body.Status != statusSuccess {
		return schema.Location{}, errLookupFailed
	}

	return schema.Location{
		Latitude:    body.Lat,
		Longitude:   body.Lon,
		City:        body.City,
		CountryCode: body.CountryCode,
	}, nil
}

// New - new ip geolocation Resolver
func New(url string, httpClient *http.Client) Resolver {
	u := defaultURL
	if url != "" {
		u = url
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &resolver{
		url:        u,
		httpClient: httpClient,
	}
}
