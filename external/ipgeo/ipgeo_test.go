package ipgeo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/external/ipgeo"
)

func TestLookup(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "success", "countryCode": "IN", "city": "Mumbai", "lat": 19.07, "lon": 72.87}`))
	}))
	defer ts.Close()

	r := ipgeo.New(ts.URL, nil)
	loc, err := r.Lookup(context.Background())
	assert.Nil(t, err, "wrong Lookup")
	assert.Equal(t, "IN", loc.CountryCode)
	assert.Equal(t, "Mumbai", loc.City)
}

func TestLookupFailedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "fail"}`))
	}))
	defer ts.Close()

	r := ipgeo.New(ts.URL, nil)
	_, err := r.Lookup(context.Background())
	assert.NotNil(t, err)
}
