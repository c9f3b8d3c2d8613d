package samples

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-samples/internal/config"
)

func TestStoreCode(t *testing.T) {
	assert.Equal(t, "online", storeCode("online:en:US:42"))
	assert.Equal(t, "plain", storeCode("plain"))
}

func TestInventorySet(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodPost, "1/products/online:en:US:42/localinventory", echo)
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, inventorySet(context.Background(), env, []string{"online:en:US:42"}))

	body := api.calls(http.MethodPost, "1/products/online:en:US:42/localinventory")[0].Body
	assert.Equal(t, obj{
		"storeCode":    "online",
		"availability": "out of stock",
		"price":        obj{"value": "3.00", "currency": "USD"},
	}, body)
	assert.Equal(t, "Product with ID \"online:en:US:42\" was updated.\n", out.String())
}

func TestInventorySetBatch(t *testing.T) {
	api := newFakeAPI(t)
	api.reply(http.MethodPost, "localinventory/batch", http.StatusOK, obj{
		"kind": "content#localinventoryCustomBatchResponse",
		"entries": arr{
			obj{"batchId": 0},
			obj{"batchId": 1, "errors": obj{"code": 404, "message": "item not found"}},
		},
	})
	env, out := api.env(&config.MerchantInfo{MerchantID: 1})

	require.NoError(t, inventorySetBatch(context.Background(), env, []string{"online:en:US:1", "local:en:US:2"}))

	entries := api.calls(http.MethodPost, "localinventory/batch")[0].Body["entries"].(arr)
	require.Len(t, entries, 2)
	second := entries[1].(obj)
	assert.Equal(t, "local:en:US:2", second["productId"])
	assert.Equal(t, "insert", second["method"])
	assert.Equal(t, obj{
		"storeCode":    "local",
		"availability": "out of stock",
		"price":        obj{"value": "3.14", "currency": "USD"},
	}, second["localInventory"])

	assert.Equal(t, "Successfully performed inventory update for product \"online:en:US:1\".\n"+
		"Errors for batch entry 1:\n{\n  \"code\": 404,\n  \"message\": \"item not found\"\n}\n", out.String())
}
