package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResource(t *testing.T, raw string) Resource {
	t.Helper()
	var r Resource
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	return r
}

func TestResourceAccessors(t *testing.T) {
	r := decodeResource(t, `{
		"id": "1234567",
		"name": "Sample Shop",
		"adultContent": true,
		"businessInformation": {"phoneNumber": "555"},
		"users": [{"emailAddress": "a@example.com", "admin": true}, "garbage"]
	}`)

	assert.Equal(t, uint64(1234567), r.Uint("id"))
	assert.Equal(t, "Sample Shop", r.String("name"))
	assert.Equal(t, "", r.String("missing"))
	assert.Equal(t, true, r["adultContent"])
	assert.Equal(t, "555", r.Map("businessInformation").String("phoneNumber"))
	assert.Nil(t, r.Map("name"))

	users := r.List("users")
	require.Len(t, users, 1)
	assert.Equal(t, "a@example.com", users[0].String("emailAddress"))
}

func TestResourceUintAcceptsNumbers(t *testing.T) {
	r := Resource{"n": float64(42), "neg": float64(-1), "bad": "x"}

	assert.Equal(t, uint64(42), r.Uint("n"))
	assert.Equal(t, uint64(0), r.Uint("neg"))
	assert.Equal(t, uint64(0), r.Uint("bad"))
}

func TestResourceAppendAndFilterKeepUnknownFields(t *testing.T) {
	r := decodeResource(t, `{"users": [{"emailAddress": "keep@example.com", "orderManager": true}], "extra": {"a": 1}}`)

	r.Append("users", map[string]interface{}{"emailAddress": "new@example.com", "admin": false})
	require.Len(t, r.List("users"), 2)

	r.Filter("users", func(u Resource) bool { return u.String("emailAddress") != "new@example.com" })
	users := r.List("users")
	require.Len(t, users, 1)
	assert.Equal(t, true, users[0]["orderManager"])

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users": [{"emailAddress": "keep@example.com", "orderManager": true}], "extra": {"a": 1}}`, string(data))
}

func TestResourceAppendCreatesArray(t *testing.T) {
	r := Resource{}
	r.Append("adsLinks", map[string]interface{}{"adsId": "1", "status": "active"})

	assert.Len(t, r.List("adsLinks"), 1)
	assert.Len(t, r, 1)
}

func TestResourceDecode(t *testing.T) {
	r := decodeResource(t, `{"id": "42", "name": "feed", "fetchSchedule": {"hour": 6}}`)

	var feed Datafeed
	require.NoError(t, r.Decode(&feed))
	assert.Equal(t, int64(42), feed.ID)
	require.NotNil(t, feed.FetchSchedule)
	assert.Equal(t, int64(6), feed.FetchSchedule.Hour)
}
