package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDatasetAndLive(t *testing.T) {
	rows := []DatasetRow{{ID: "a"}, {ID: "b"}}
	raw := FromDataset(rows)
	require.Len(t, raw, 2)
	assert.Equal(t, SourceDataset, raw[0].Source)
	assert.Equal(t, "b", raw[1].Dataset.ID)
	assert.NotSame(t, raw[0].Dataset, raw[1].Dataset)

	offers := FromLive([]LiveOffer{{BookingToken: "t"}})
	require.Len(t, offers, 1)
	assert.Equal(t, SourceLive, offers[0].Source)
	assert.Equal(t, "t", offers[0].Live.BookingToken)
}

func TestBookingOption_JSON(t *testing.T) {
	body := `{"book_with":"Cham Wings","price":210,"booking_request":{"url":"https://x.example/b","post_data":"a=1"}}`

	var opt BookingOption
	require.NoError(t, json.Unmarshal([]byte(body), &opt))
	assert.Equal(t, 210.0, opt.Price)
	assert.Equal(t, "https://x.example/b?a=1", opt.URL())

	out, err := json.Marshal(opt)
	require.NoError(t, err)
	assert.JSONEq(t, body, string(out), "unknown upstream fields survive a round trip")
}

func TestBookingOption_TogetherLayout(t *testing.T) {
	var opt BookingOption
	require.NoError(t, json.Unmarshal([]byte(`{"together":{"price":99.5,"booking_request":{"url":"https://y.example"}}}`), &opt))

	assert.Equal(t, 99.5, opt.Price)
	assert.Equal(t, "https://y.example", opt.URL())
}

func TestBookingOption_MarshalWithoutRaw(t *testing.T) {
	out, err := json.Marshal(BookingOption{Price: 5, BookingRequest: BookingRequest{URL: "u"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":5,"booking_request":{"url":"u","post_data":""}}`, string(out))
}

func TestParseLiveSearchBody(t *testing.T) {
	body := []byte(`{"best_flights":[{"booking_token":"b1","price":100}],"other_flights":[{"booking_token":"o1"},{"booking_token":"o2"}]}`)

	result, err := ParseLiveSearchBody(body)
	require.NoError(t, err)
	assert.JSONEq(t, string(body), string(result.Raw))
	require.Len(t, result.Offers, 3)
	assert.Equal(t, "b1", result.Offers[0].BookingToken)
	assert.Equal(t, "o2", result.Offers[2].BookingToken)
	assert.Nil(t, result.Offers[1].Price)

	empty, err := ParseLiveSearchBody([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, empty.Offers)

	_, err = ParseLiveSearchBody([]byte(`not json`))
	assert.Error(t, err)
}

func TestParseBookingOptionsBody(t *testing.T) {
	options, err := ParseBookingOptionsBody([]byte(`{"booking_options":null}`))
	require.NoError(t, err)
	assert.NotNil(t, options)
	assert.Empty(t, options)

	options, err = ParseBookingOptionsBody([]byte(`{"booking_options":[{"price":1},{"price":2}]}`))
	require.NoError(t, err)
	assert.Len(t, options, 2)
}
