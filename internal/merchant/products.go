package merchant

import (
	"context"

	"shopping-samples/internal/entities"
)

type ProductsService struct {
	c *Client
}

func (c *Client) Products() *ProductsService {
	return &ProductsService{c: c}
}

func (s *ProductsService) Get(ctx context.Context, merchantID uint64, productID string) (entities.Resource, error) {
	var product entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "products", productID), nil, &product)
	return product, err
}

func (s *ProductsService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "products"), maxResults, nil)
}

// Insert creates the product, or replaces it when a product with the same
// ID already exists.
func (s *ProductsService) Insert(ctx context.Context, merchantID uint64, product interface{}) (entities.Resource, error) {
	var created entities.Resource
	err := s.c.post(ctx, resourcePath(merchantID, "products"), product, &created)
	return created, err
}

func (s *ProductsService) Delete(ctx context.Context, merchantID uint64, productID string) error {
	return s.c.delete(ctx, resourcePath(merchantID, "products", productID))
}

func (s *ProductsService) Custombatch(ctx context.Context, batch *entities.BatchRequest) (*entities.BatchResponse, error) {
	resp := &entities.BatchResponse{}
	if err := s.c.post(ctx, "products/batch", batch, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type ProductStatusesService struct {
	c *Client
}

func (c *Client) ProductStatuses() *ProductStatusesService {
	return &ProductStatusesService{c: c}
}

func (s *ProductStatusesService) Get(ctx context.Context, merchantID uint64, productID string) (entities.Resource, error) {
	var status entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "productstatuses", productID), nil, &status)
	return status, err
}

func (s *ProductStatusesService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "productstatuses"), maxResults, nil)
}

type LocalInventoryService struct {
	c *Client
}

func (c *Client) LocalInventory() *LocalInventoryService {
	return &LocalInventoryService{c: c}
}

// Insert updates the store level price and availability of a product.
func (s *LocalInventoryService) Insert(ctx context.Context, merchantID uint64, productID string, inv *entities.LocalInventory) (entities.Resource, error) {
	var updated entities.Resource
	err := s.c.post(ctx, resourcePath(merchantID, "products", productID, "localinventory"), inv, &updated)
	return updated, err
}

func (s *LocalInventoryService) Custombatch(ctx context.Context, batch *entities.BatchRequest) (*entities.BatchResponse, error) {
	resp := &entities.BatchResponse{}
	if err := s.c.post(ctx, "localinventory/batch", batch, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
