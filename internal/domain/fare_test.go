package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFareRecord_Methods(t *testing.T) {
	r := FareRecord{OriginCode: "DAM", DestinationCode: "IST", DaysOfWeek: []int{1, 5}}

	assert.False(t, r.HasPrice())
	r.PriceUSD = Price(99)
	assert.True(t, r.HasPrice())

	assert.Equal(t, RouteKey{Origin: "DAM", Destination: "IST"}, r.Route())
	assert.Equal(t, "DAM-IST", r.Route().String())

	assert.True(t, r.Touches("DAM"))
	assert.True(t, r.Touches("IST"))
	assert.False(t, r.Touches("DXB"))

	assert.Equal(t, "IST", r.Counterpart("DAM"))
	assert.Equal(t, "DAM", r.Counterpart("IST"))
	assert.Equal(t, "", r.Counterpart("DXB"))

	assert.True(t, r.OperatesOn(5))
	assert.False(t, r.OperatesOn(7))
	assert.False(t, FareRecord{}.OperatesOn(1), "no weekday data means never")
}

func TestPrice_ReturnsIndependentPointers(t *testing.T) {
	a := Price(10)
	b := Price(10)
	*a = 11
	assert.Equal(t, 10.0, *b)
}
