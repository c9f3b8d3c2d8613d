package bootstrap

import (
	"context"

	"shopping-samples/internal/config"
	"shopping-samples/internal/entities"
)

// AccountsAPI is the part of the accounts service the bootstrap needs.
type AccountsAPI interface {
	AuthInfo(ctx context.Context) (*entities.AuthInfo, error)
	Get(ctx context.Context, merchantID, accountID uint64) (entities.Resource, error)
}

type BootstrapService interface {
	Retrieve(ctx context.Context, info *config.MerchantInfo) error
}
