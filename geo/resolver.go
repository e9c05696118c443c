package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/caremate/companion-api/external/ipgeo"
	"github.com/caremate/companion-api/schema"
)

var (
	ErrNoCountryResolved      = fmt.Errorf("no country could be resolved")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// CountryResolver - interface for resolving the user's country, used to
// pick the emergency numbers and the active air-quality standard.
type CountryResolver interface {
	ResolveCountry(ctx context.Context) (schema.Location, error)
}

var defaultResolver CountryResolver

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// IPCountryResolver resolves the country from the caller's IP address.
type IPCountryResolver struct {
	client ipgeo.Resolver
}

func NewIPCountryResolver(client ipgeo.Resolver) *IPCountryResolver {
	return &IPCountryResolver{
		client: client,
	}
}

func (r *IPCountryResolver) ResolveCountry(ctx context.Context) (schema.Location, error) {
	loc, err := r.client.Lookup(ctx)
	if nil != err {
		return schema.Location{}, err
	}

	if loc.CountryCode == "" {
		return schema.Location{}, ErrNoCountryResolved
	}

	return loc, nil
}

// GeocodingCountryResolver reverse-geocodes a fixed home position. It is
// the second stop in the chain, for deployments where the IP lookup is
// blocked but home coordinates are configured.
type GeocodingCountryResolver struct {
	client   *maps.Client
	lat, lng float64
}

func NewGeocodingCountryResolver(client *maps.Client, lat, lng float64) *GeocodingCountryResolver {
	return &GeocodingCountryResolver{
		client: client,
		lat:    lat,
		lng:    lng,
	}
}

func (r *GeocodingCountryResolver) ResolveCountry(ctx context.Context) (schema.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	geos, err := r.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: r.lat,
			Lng: r.lng,
		},
		ResultType: []string{"country"},
		Language:   "en",
	})
	if nil != err {
		return schema.Location{}, err
	}

	if len(geos) == 0 {
		return schema.Location{}, ErrNoCountryResolved
	}

	loc := schema.Location{
		Latitude:  r.lat,
		Longitude: r.lng,
	}
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) > 0 && a.Types[0] == "country" {
			loc.CountryCode = a.ShortName
		}
	}

	if loc.CountryCode == "" {
		return schema.Location{}, ErrNoCountryResolved
	}

	return loc, nil
}

// StaticCountryResolver always succeeds with a configured default. It
// terminates the chain.
type StaticCountryResolver struct {
	countryCode string
}

func NewStaticCountryResolver(countryCode string) *StaticCountryResolver {
	return &StaticCountryResolver{
		countryCode: countryCode,
	}
}

func (r *StaticCountryResolver) ResolveCountry(context.Context) (schema.Location, error) {
	return schema.Location{CountryCode: r.countryCode}, nil
}

type MultipleCountryResolver struct {
	resolvers []CountryResolver
}

func NewMultipleCountryResolver(resolvers ...CountryResolver) *MultipleCountryResolver {
	return &MultipleCountryResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleCountryResolver) ResolveCountry(ctx context.Context) (schema.Location, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.ResolveCountry(ctx)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.Location{}, NewMultipleResolverErrors(errors)
}

func SetCountryResolver(resolver CountryResolver) {
	defaultResolver = resolver
}

func ResolveCountry(ctx context.Context) (schema.Location, error) {
	if defaultResolver == nil {
		return schema.Location{}, ErrResolverNotInitialized
	}

	return defaultResolver.ResolveCountry(ctx)
}
