package merchant

import (
	"context"

	"shopping-samples/internal/entities"
)

type ReportsService struct {
	c *Client
}

func (c *Client) Reports() *ReportsService {
	return &ReportsService{c: c}
}

// Search runs a Merchant Center Query Language query.
func (s *ReportsService) Search(ctx context.Context, merchantID uint64, req *entities.SearchRequest) (*entities.SearchResponse, error) {
	resp := &entities.SearchResponse{}
	if err := s.c.post(ctx, resourcePath(merchantID, "reports", "search"), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
