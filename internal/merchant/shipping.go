package merchant

import (
	"context"

	"shopping-samples/internal/entities"
)

type ShippingSettingsService struct {
	c *Client
}

func (c *Client) ShippingSettings() *ShippingSettingsService {
	return &ShippingSettingsService{c: c}
}

func (s *ShippingSettingsService) Get(ctx context.Context, merchantID, accountID uint64) (entities.Resource, error) {
	var settings entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "shippingsettings", accountID), nil, &settings)
	return settings, err
}

func (s *ShippingSettingsService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "shippingsettings"), maxResults, nil)
}

func (s *ShippingSettingsService) Update(ctx context.Context, merchantID, accountID uint64, settings interface{}) (entities.Resource, error) {
	var updated entities.Resource
	err := s.c.put(ctx, resourcePath(merchantID, "shippingsettings", accountID), settings, &updated)
	return updated, err
}

func (s *ShippingSettingsService) GetSupportedCarriers(ctx context.Context, merchantID uint64) (*entities.Carriers, error) {
	carriers := &entities.Carriers{}
	if err := s.c.get(ctx, resourcePath(merchantID, "supportedCarriers"), nil, carriers); err != nil {
		return nil, err
	}
	return carriers, nil
}
