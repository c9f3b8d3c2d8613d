package merchant

import (
	"context"

	"shopping-samples/internal/entities"
)

type AccountsService struct {
	c *Client
}

func (c *Client) Accounts() *AccountsService {
	return &AccountsService{c: c}
}

// AuthInfo lists the accounts the authenticated user can access.
func (s *AccountsService) AuthInfo(ctx context.Context) (*entities.AuthInfo, error) {
	info := &entities.AuthInfo{}
	if err := s.c.get(ctx, "accounts/authinfo", nil, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *AccountsService) Get(ctx context.Context, merchantID, accountID uint64) (entities.Resource, error) {
	var account entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "accounts", accountID), nil, &account)
	return account, err
}

// List returns the sub-accounts of an MCA.
func (s *AccountsService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "accounts"), maxResults, nil)
}

func (s *AccountsService) Insert(ctx context.Context, merchantID uint64, account interface{}) (entities.Resource, error) {
	var created entities.Resource
	err := s.c.post(ctx, resourcePath(merchantID, "accounts"), account, &created)
	return created, err
}

// Update replaces the whole account. Fields missing from account are cleared.
func (s *AccountsService) Update(ctx context.Context, merchantID, accountID uint64, account interface{}) (entities.Resource, error) {
	var updated entities.Resource
	err := s.c.put(ctx, resourcePath(merchantID, "accounts", accountID), account, &updated)
	return updated, err
}

func (s *AccountsService) Delete(ctx context.Context, merchantID, accountID uint64) error {
	return s.c.delete(ctx, resourcePath(merchantID, "accounts", accountID))
}

func (s *AccountsService) Custombatch(ctx context.Context, batch *entities.BatchRequest) (*entities.BatchResponse, error) {
	resp := &entities.BatchResponse{}
	if err := s.c.post(ctx, "accounts/batch", batch, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type AccountStatusesService struct {
	c *Client
}

func (c *Client) AccountStatuses() *AccountStatusesService {
	return &AccountStatusesService{c: c}
}

func (s *AccountStatusesService) Get(ctx context.Context, merchantID, accountID uint64) (entities.Resource, error) {
	var status entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "accountstatuses", accountID), nil, &status)
	return status, err
}

func (s *AccountStatusesService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "accountstatuses"), maxResults, nil)
}

type AccountTaxService struct {
	c *Client
}

func (c *Client) AccountTax() *AccountTaxService {
	return &AccountTaxService{c: c}
}

func (s *AccountTaxService) Get(ctx context.Context, merchantID, accountID uint64) (entities.Resource, error) {
	var tax entities.Resource
	err := s.c.get(ctx, resourcePath(merchantID, "accounttax", accountID), nil, &tax)
	return tax, err
}

func (s *AccountTaxService) List(merchantID uint64, maxResults int) ListCall {
	return s.c.listCall(resourcePath(merchantID, "accounttax"), maxResults, nil)
}

func (s *AccountTaxService) Update(ctx context.Context, merchantID, accountID uint64, tax interface{}) (entities.Resource, error) {
	var updated entities.Resource
	err := s.c.put(ctx, resourcePath(merchantID, "accounttax", accountID), tax, &updated)
	return updated, err
}
