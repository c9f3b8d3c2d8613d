package samples

import (
	"context"
	"fmt"

	"shopping-samples/internal/entities"
)

var productSamples = []*Sample{
	{Name: "products.workflow", Run: productsWorkflow},
	{Name: "products.list", Run: productsList},
	{Name: "products.get", Args: []Arg{{Name: "product_id"}}, Run: productsGet},
	{Name: "products.insert", Run: productsInsert},
	{Name: "products.insert_batch", Run: productsInsertBatch},
	{Name: "products.update", Args: []Arg{{Name: "product_id"}}, Run: productsUpdate},
	{Name: "products.delete", Args: []Arg{{Name: "product_id"}}, Run: productsDelete},
	{Name: "products.delete_batch", Args: []Arg{{Name: "product_id", Variadic: true}}, Run: productsDeleteBatch},
}

func productsWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Products workflow.")
	env.println()

	if env.Info.IsMCA {
		env.println("Nothing to do, as MCAs contain no products.")
		env.println()
	} else if err := productsNonMCAWorkflow(ctx, env); err != nil {
		return err
	}

	env.println("Done with Products workflow.")
	return nil
}

func productsNonMCAWorkflow(ctx context.Context, env *Env) error {
	pr := env.Client.Products()
	id := env.merchantID()

	env.println("Printing status of all products:")
	count, err := forEach(ctx, env, pr.List(id, defaultMaxPageSize), "No products returned.", func(r entities.Resource) error {
		productID := r.String("id")
		env.printf("Getting product (ID %q).\n", productID)
		product, err := pr.Get(ctx, id, productID)
		if err != nil {
			return err
		}
		if err := env.printJSON(product); err != nil {
			return err
		}
		env.println()
		return nil
	})
	if err != nil {
		return err
	}
	env.printf("Status for %d products printed.\n\n", count)

	offerID := "book#" + UniqueID()
	env.printf("Inserting product %q... ", offerID)
	created, err := pr.Insert(ctx, id, NewProduct(env.Info, offerID))
	if err != nil {
		return err
	}
	env.println("done.")
	env.println()

	env.printf("Deleting product %q... ", offerID)
	if err := pr.Delete(ctx, id, created.String("id")); err != nil {
		return err
	}
	env.println("done.")
	env.println()
	return nil
}

func productsList(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	list := env.Client.Products().List(env.merchantID(), defaultMaxPageSize)
	_, err := forEach(ctx, env, list, "No products were found.", func(r entities.Resource) error {
		env.printf("Product %q with title %q was found.\n", r.String("id"), r.String("title"))
		return nil
	})
	return err
}

func productsGet(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	product, err := env.Client.Products().Get(ctx, env.merchantID(), args[0])
	if err != nil {
		return err
	}
	return env.printJSON(product)
}

func productsInsert(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	product, err := env.Client.Products().Insert(ctx, env.merchantID(), NewProduct(env.Info, "book#"+UniqueID()))
	if err != nil {
		return err
	}
	env.printf("Product %q with offerId %q was created.\n", product.String("id"), product.String("offerId"))
	return nil
}

func productsInsertBatch(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	batch := &entities.BatchRequest{}
	for i := 0; i < batchSize; i++ {
		product := NewProduct(env.Info, "book#"+UniqueID())
		product.Title = fmt.Sprintf("This is book number %d", i)
		product.Price = &entities.Price{Value: fmt.Sprintf("%d.50", i), Currency: "USD"}
		batch.Entries = append(batch.Entries, entities.BatchRequestEntry{
			BatchID:    int64(i),
			MerchantID: env.merchantID(),
			Method:     "insert",
			Product:    product,
		})
	}
	resp, err := env.Client.Products().Custombatch(ctx, batch)
	if err != nil {
		return err
	}
	if ok, err := env.checkBatchKind(resp, "content#productsCustomBatchResponse"); !ok {
		return err
	}
	for _, entry := range resp.Entries {
		switch {
		case entry.Product != nil:
			env.printf("Product %q with offerId %q was created.\n", entry.Product.ID, entry.Product.OfferID)
		case entry.Errors != nil:
			if err := env.printBatchErrors(entry.BatchID, entry.Errors); err != nil {
				return err
			}
		}
	}
	return nil
}

// productsUpdate re-inserts a product with a product type. Products have no
// update method; inserting an existing ID replaces the product.
func productsUpdate(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	pr := env.Client.Products()
	product, err := pr.Get(ctx, env.merchantID(), args[0])
	if err != nil {
		return err
	}
	product["productTypes"] = []interface{}{"English/Classics"}
	// source is output only and rejected on insert.
	delete(product, "source")

	updated, err := pr.Insert(ctx, env.merchantID(), product)
	if err != nil {
		return err
	}
	env.printf("Product with offerId %q was updated.\n", updated.String("offerId"))
	return nil
}

func productsDelete(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	if err := env.Client.Products().Delete(ctx, env.merchantID(), args[0]); err != nil {
		return err
	}
	env.printf("Product %s was deleted.\n", args[0])
	return nil
}

func productsDeleteBatch(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	batch := &entities.BatchRequest{}
	for i, productID := range args {
		batch.Entries = append(batch.Entries, entities.BatchRequestEntry{
			BatchID:    int64(i),
			MerchantID: env.merchantID(),
			Method:     "delete",
			ProductID:  productID,
		})
	}
	resp, err := env.Client.Products().Custombatch(ctx, batch)
	if err != nil {
		return err
	}
	if ok, err := env.checkBatchKind(resp, "content#productsCustomBatchResponse"); !ok {
		return err
	}
	for _, entry := range resp.Entries {
		if entry.Errors != nil {
			if err := env.printBatchErrors(entry.BatchID, entry.Errors); err != nil {
				return err
			}
			continue
		}
		env.printf("Deletion of product %s (batch entry %d) successful.\n", entryProductID(batch, entry.BatchID), entry.BatchID)
	}
	return nil
}
