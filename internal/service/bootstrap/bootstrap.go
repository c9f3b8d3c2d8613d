package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	"shopping-samples/internal/config"
)

type BootstrapDefault struct {
	accounts AccountsAPI
	out      io.Writer
}

func NewBootstrapDefault(accounts AccountsAPI, out io.Writer) *BootstrapDefault {
	return &BootstrapDefault{accounts: accounts, out: out}
}

// Retrieve fills in the configuration from the API. A missing merchant ID is
// taken from the first account the user can access; IsMCA and WebsiteURL are
// always replaced with what the API reports.
func (s *BootstrapDefault) Retrieve(ctx context.Context, info *config.MerchantInfo) error {
	authInfo, err := s.accounts.AuthInfo(ctx)
	if err != nil {
		return fmt.Errorf("retrieving authinfo: %w", err)
	}
	ids := authInfo.AccountIdentifiers
	if len(ids) == 0 {
		return errors.New("The currently authenticated user does not have access to any Merchant Center accounts.")
	}

	if info.MerchantID == 0 {
		info.MerchantID = ids[0].MerchantID
		if info.MerchantID == 0 {
			info.MerchantID = ids[0].AggregatorID
		}
		fmt.Fprintf(s.out, "Using Merchant Center %d for running samples.\n", info.MerchantID)
	}

	// Only an account listed as an aggregator can be an MCA.
	info.IsMCA = false
	for _, id := range ids {
		if id.AggregatorID != 0 && id.AggregatorID == info.MerchantID {
			info.IsMCA = true
			break
		}
		if id.MerchantID == info.MerchantID {
			break
		}
	}
	if info.IsMCA {
		fmt.Fprintf(s.out, "Merchant Center %d is an MCA.\n", info.MerchantID)
	} else {
		fmt.Fprintf(s.out, "Merchant Center %d is not an MCA.\n", info.MerchantID)
	}

	account, err := s.accounts.Get(ctx, info.MerchantID, info.MerchantID)
	if err != nil {
		return fmt.Errorf("retrieving account %d: %w", info.MerchantID, err)
	}
	info.WebsiteURL = account.String("websiteUrl")
	if info.WebsiteURL == "" {
		fmt.Fprintf(s.out, "No website for Merchant Center %d.\n", info.MerchantID)
	} else {
		fmt.Fprintf(s.out, "Website for Merchant Center %d: %s\n", info.MerchantID, info.WebsiteURL)
	}
	return nil
}
