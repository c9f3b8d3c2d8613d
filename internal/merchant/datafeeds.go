package merchant

import (
	"context"

	"shopping-samples/internal/entities"
)

type DatafeedsService struct {
	c *Client
}

func (c *Client) Datafeeds() *DatafeedsService {
	return &DatafeedsService{c: c}
}

func (s *DatafeedsService) Get(ctx context.Context, merchantID, datafeedID uint64) (entities.Resource, error) {
	var feed entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "datafeeds", datafeedID), nil, &feed)
	return feed, err
}

func (s *DatafeedsService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "datafeeds"), maxResults, nil)
}

func (s *DatafeedsService) Insert(ctx context.Context, merchantID uint64, feed interface{}) (entities.Resource, error) {
	var created entities.Resource
	err := s.c.post(ctx, resourcePath(merchantID, "datafeeds"), feed, &created)
	return created, err
}

func (s *DatafeedsService) Update(ctx context.Context, merchantID, datafeedID uint64, feed interface{}) (entities.Resource, error) {
	var updated entities.Resource
	err := s.c.put(ctx, resourcePath(merchantID, "datafeeds", datafeedID), feed, &updated)
	return updated, err
}

func (s *DatafeedsService) Delete(ctx context.Context, merchantID, datafeedID uint64) error {
	return s.c.delete(ctx, resourcePath(merchantID, "datafeeds", datafeedID))
}

// FetchNow asks the API to fetch and process the feed immediately.
func (s *DatafeedsService) FetchNow(ctx context.Context, merchantID, datafeedID uint64) error {
	return s.c.post(ctx, resourcePath(merchantID, "datafeeds", datafeedID, "fetchNow"), nil, nil)
}

func (s *DatafeedsService) Custombatch(ctx context.Context, batch *entities.BatchRequest) (*entities.BatchResponse, error) {
	resp := &entities.BatchResponse{}
	if err := s.c.post(ctx, "datafeeds/batch", batch, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
