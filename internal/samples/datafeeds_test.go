package samples

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-samples/internal/config"
)

func TestDatafeedsWorkflow(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/datafeeds", http.StatusOK, page(obj{"id": "3", "name": "old"}))
	api.handle(http.MethodPost, "1/datafeeds", func(_ *http.Request, body map[string]interface{}) (int, interface{}) {
		body["id"] = "9"
		return http.StatusOK, body
	})
	api.reply(http.MethodGet, "1/datafeeds/9", http.StatusOK, obj{"id": "9"})
	api.reply(http.MethodDelete, "1/datafeeds/9", http.StatusNoContent, nil)
	env, out := api.env(&config.MerchantInfo{MerchantID: 1, WebsiteURL: "https://shop.example.com"})

	require.NoError(t, datafeedsWorkflow(context.Background(), env, nil))

	inserted := api.calls(http.MethodPost, "1/datafeeds")
	require.Len(t, inserted, 1)
	name := inserted[0].Body["name"].(string)
	assert.True(t, strings.HasPrefix(name, "feed"))
	schedule := inserted[0].Body["fetchSchedule"].(obj)
	assert.Equal(t, "https://shop.example.com/"+name, schedule["fetchUrl"])
	assert.Equal(t, "maxResults=50", api.calls(http.MethodGet, "1/datafeeds")[0].Query)
	assert.Len(t, api.calls(http.MethodDelete, "1/datafeeds/9"), 1)

	text := out.String()
	assert.Contains(t, text, "Status for 1 datafeeds printed.\n\n")
	assert.Contains(t, text, "Inserting feed \""+name+"\"... done.\n\n")
	assert.Contains(t, text, "Retrieving (with retries) new datafeed (ID 9).\nFeed settings:\n")
	assert.Contains(t, text, "Deleting feed \""+name+"\"... done.\n\nDone with Datafeeds workflow.\n")
}

func TestDatafeedsWorkflowMCA(t *testing.T) {
	api := newFakeAPI(t)
	env, out := api.env(&config.MerchantInfo{MerchantID: 1, IsMCA: true})

	require.NoError(t, datafeedsWorkflow(context.Background(), env, nil))

	assert.Equal(t, "Performing the Datafeeds workflow.\n\n"+
		"Nothing to do, as MCAs contain no datafeeds.\n\n"+
		"Done with Datafeeds workflow.\n", out.String())
	assert.Empty(t, api.requests)
}

func TestDatafeedsUpdate(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/datafeeds/8", http.StatusOK, obj{
		"id":            "8",
		"name":          "feed",
		"fetchSchedule": obj{"hour": 6, "weekday": "monday"},
	})
	api.handle(http.MethodPut, "1/datafeeds/8", echo)
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, datafeedsUpdate(context.Background(), env, []string{"8"}))

	put := api.calls(http.MethodPut, "1/datafeeds/8")[0]
	assert.Equal(t, obj{"hour": float64(7), "weekday": "monday"}, put.Body["fetchSchedule"])
	assert.Equal(t, "feed", put.Body["name"])
	assert.Equal(t, "Datafeed with ID 8 and fetchSchedule {\"hour\":7,\"weekday\":\"monday\"} was updated.\n", out.String())
}

func TestDatafeedsInsertBatch(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodPost, "datafeeds/batch", http.StatusOK, obj{
		"kind":    "content#datafeedsCustomBatchResponse",
		"entries": arr{obj{"batchId": 0, "datafeed": obj{"id": "5", "name": "feed5"}}},
	})
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, datafeedsInsertBatch(context.Background(), env, nil))

	entries := api.calls(http.MethodPost, "datafeeds/batch")[0].Body["entries"].(arr)
	assert.Len(t, entries, 5)
	assert.Equal(t, "Datafeed 5 with name \"feed5\" created.\n", out.String())
}

func TestDatafeedsFetchNowAndDelete(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodPost, "1/datafeeds/8/fetchNow", http.StatusOK, obj{})
	api.reply(http.MethodDelete, "1/datafeeds/8", http.StatusNoContent, nil)
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, datafeedsFetchNow(context.Background(), env, []string{"8"}))
	require.NoError(t, datafeedsDelete(context.Background(), env, []string{"8"}))

	assert.Equal(t, "Datafeed 8 was scheduled to be fetched.\nDatafeed 8 was deleted.\n", out.String())
}

func TestDatafeedsList(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodGet, "1/datafeeds", http.StatusOK, page())
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, datafeedsList(context.Background(), env, nil))

	assert.Equal(t, "No datafeeds were found.\n", out.String())
}
