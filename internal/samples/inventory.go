package samples

import (
	"context"
	"strings"

	"shopping-samples/internal/entities"
)

var inventorySamples = []*Sample{
	{Name: "inventory.set", Args: []Arg{{Name: "product_id"}}, Run: inventorySet},
	{Name: "inventory.set_batch", Args: []Arg{{Name: "product_id", Variadic: true}}, Run: inventorySetBatch},
}

// storeCode uses the channel prefix of a REST product ID ("online" in
// "online:en:US:1234") as the store code.
func storeCode(productID string) string {
	code, _, _ := strings.Cut(productID, ":")
	return code
}

func outOfStock(productID, price string) *entities.LocalInventory {
	return &entities.LocalInventory{
		StoreCode:    storeCode(productID),
		Availability: "out of stock",
		Price:        &entities.Price{Value: price, Currency: "USD"},
	}
}

func inventorySet(ctx context.Context, env *Env, args []string) error {
	productID := args[0]
	_, err := env.Client.LocalInventory().Insert(ctx, env.merchantID(), productID, outOfStock(productID, "3.00"))
	if err != nil {
		return err
	}
	env.printf("Product with ID %q was updated.\n", productID)
	return nil
}

func inventorySetBatch(ctx context.Context, env *Env, args []string) error {
	batch := &entities.BatchRequest{}
	for i, productID := range args {
		batch.Entries = append(batch.Entries, entities.BatchRequestEntry{
			BatchID:        int64(i),
			MerchantID:     env.merchantID(),
			Method:         "insert",
			ProductID:      productID,
			LocalInventory: outOfStock(productID, "3.14"),
		})
	}
	resp, err := env.Client.LocalInventory().Custombatch(ctx, batch)
	if err != nil {
		return err
	}
	if ok, err := env.checkBatchKind(resp, "content#localinventoryCustomBatchResponse"); !ok {
		return err
	}
	for _, entry := range resp.Entries {
		if entry.Errors != nil {
			if err := env.printBatchErrors(entry.BatchID, entry.Errors); err != nil {
				return err
			}
			continue
		}
		env.printf("Successfully performed inventory update for product %q.\n", entryProductID(batch, entry.BatchID))
	}
	return nil
}

// entryProductID maps a response entry back to the product of its request.
func entryProductID(batch *entities.BatchRequest, batchID int64) string {
	if batchID < 0 || int(batchID) >= len(batch.Entries) {
		return ""
	}
	return batch.Entries[batchID].ProductID
}
