package geo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caremate/companion-api/schema"
)

type failingResolver struct{}

func (failingResolver) ResolveCountry(context.Context) (schema.Location, error) {
	return schema.Location{}, fmt.Errorf("unreachable")
}

type fixedResolver struct {
	code string
}

func (r fixedResolver) ResolveCountry(context.Context) (schema.Location, error) {
	return schema.Location{CountryCode: r.code}, nil
}

func TestMultipleCountryResolverFallsThrough(t *testing.T) {
	r := NewMultipleCountryResolver(
		failingResolver{},
		failingResolver{},
		fixedResolver{code: "IN"},
	)

	loc, err := r.ResolveCountry(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "IN", loc.CountryCode)
}

func TestMultipleCountryResolverFirstWins(t *testing.T) {
	r := NewMultipleCountryResolver(
		fixedResolver{code: "US"},
		fixedResolver{code: "IN"},
	)

	loc, err := r.ResolveCountry(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "US", loc.CountryCode)
}

func TestMultipleCountryResolverAllFail(t *testing.T) {
	r := NewMultipleCountryResolver(failingResolver{}, failingResolver{})

	_, err := r.ResolveCountry(context.Background())
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "#0")
	assert.Contains(t, err.Error(), "#1")
}

func TestStaticCountryResolver(t *testing.T) {
	loc, err := NewStaticCountryResolver("US").ResolveCountry(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "US", loc.CountryCode)
}
