package merchant

import (
	"context"
	"net/url"
	"strconv"

	"shopping-samples/internal/entities"
)

// ListCall fetches the page starting at pageToken. An empty token is the
// first page.
type ListCall func(ctx context.Context, pageToken string) (*entities.Page, error)

// Pages calls fn for every page of list, following nextPageToken until the
// last page or until fn returns an error.
func Pages(ctx context.Context, list ListCall, fn func(*entities.Page) error) error {
	token := ""
	for {
		page, err := list(ctx, token)
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			return err
		}
		if page.NextPageToken == "" {
			return nil
		}
		token = page.NextPageToken
	}
}

func (c *Client) listCall(p string, maxResults int, extra url.Values) ListCall {
	return func(ctx context.Context, pageToken string) (*entities.Page, error) {
		query := url.Values{}
		for k, v := range extra {
			query[k] = v
		}
		if maxResults > 0 {
			query.Set("maxResults", strconv.Itoa(maxResults))
		}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}
		page := &entities.Page{}
		if err := c.get(ctx, p, query, page); err != nil {
			return nil, err
		}
		return page, nil
	}
}
