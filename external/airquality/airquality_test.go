package airquality_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/external/airquality"
)

func TestConcentrations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/air_pollution", r.URL.Path)
		assert.Equal(t, "test", r.URL.Query().Get("appid"))

		resp := map[string]interface{}{
			"list": []map[string]interface{}{
				{
					"components": map[string]float64{
						"pm2_5": 12.0,
						"pm10":  40.5,
						"o3":    60.1,
						"no2":   10.2,
						"so2":   5.5,
						"co":    300.0,
					},
				},
			},
		}
		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	p := airquality.New("test", ts.URL, nil)
	c, err := p.Concentrations(context.Background(), 1.2, 3.4)
	assert.Nil(t, err, "wrong Concentrations")
	assert.Equal(t, 12.0, c.PM25)
	assert.Equal(t, 40.5, c.PM10)
}

func TestGeocode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
		assert.Equal(t, "Delhi", r.URL.Query().Get("q"))

		_, _ = w.Write([]byte(`[{"name": "Delhi", "lat": 28.6, "lon": 77.2, "country": "IN"}]`))
	}))
	defer ts.Close()

	p := airquality.New("test", ts.URL, nil)
	loc, err := p.Geocode(context.Background(), "Delhi")
	assert.Nil(t, err, "wrong Geocode")
	assert.Equal(t, "IN", loc.CountryCode)
	assert.Equal(t, 28.6, loc.Latitude)
}

func TestEmptyAPIKey(t *testing.T) {
	p := airquality.New("", "", nil)
	_, err := p.Concentrations(context.Background(), 1.2, 3.4)
	assert.Equal(t, airquality.ErrEmptyAPIKey, err, "missing credential is a configuration error")
}
