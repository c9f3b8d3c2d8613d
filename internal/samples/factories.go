package samples

import (
	"fmt"
	"strings"

	"shopping-samples/internal/config"
	"shopping-samples/internal/entities"
)

const (
	contentLanguage = "en"
	targetCountry   = "US"
	channel         = "online"

	defaultShopURL = "http://my-book-shop.com"
	defaultFeedURL = "https://feeds.myshop.com/"
)

// NewProduct returns the example book used by the product samples.
func NewProduct(info *config.MerchantInfo, offerID string) *entities.Product {
	site := info.WebsiteURL
	if site == "" {
		site = defaultShopURL
	}
	site = strings.TrimSuffix(site, "/")
	return &entities.Product{
		OfferID:               offerID,
		Title:                 "A Tale of Two Cities",
		Description:           "A classic novel about the French Revolution",
		Link:                  site + "/tale-of-two-cities.html",
		ImageLink:             site + "/tale-of-two-cities.jpg",
		ContentLanguage:       contentLanguage,
		TargetCountry:         targetCountry,
		Channel:               channel,
		Availability:          "in stock",
		Condition:             "new",
		GoogleProductCategory: "Media > Books",
		Gtin:                  "9780007350896",
		Price:                 &entities.Price{Value: "2.50", Currency: "USD"},
		Shipping: []entities.ProductShipping{{
			Country: targetCountry,
			Service: "Standard shipping",
			Price:   &entities.Price{Value: "0.99", Currency: "USD"},
		}},
		ShippingWeight: &entities.ShippingWeight{Value: 200, Unit: "grams"},
	}
}

// NewDatafeed returns a weekly products feed named name. The file name
// doubles as the feed name, so names must be unique per account.
func NewDatafeed(info *config.MerchantInfo, name string) *entities.Datafeed {
	base := info.WebsiteURL
	if base == "" {
		base = defaultFeedURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &entities.Datafeed{
		Name:              name,
		ContentType:       "products",
		AttributeLanguage: contentLanguage,
		FileName:          name,
		FetchSchedule: &entities.FetchSchedule{
			Weekday:  "monday",
			Hour:     6,
			TimeZone: "America/Los_Angeles",
			FetchURL: base + name,
		},
		Format: &entities.DatafeedFormat{
			FileEncoding:    "utf-8",
			ColumnDelimiter: "tab",
			QuotingMode:     "value quoting",
		},
		Targets: []entities.DatafeedTarget{{
			Language:             contentLanguage,
			Country:              targetCountry,
			IncludedDestinations: []string{"Shopping"},
		}},
	}
}

// NewAccountTax charges the global rate in location 21167 (New York).
func NewAccountTax(accountID uint64) *entities.AccountTax {
	return &entities.AccountTax{
		AccountID: accountID,
		Rules: []entities.TaxRule{{
			Country:       targetCountry,
			LocationID:    21167,
			UseGlobalRate: true,
		}},
	}
}

func NewShippingSettings(accountID uint64) *entities.ShippingSettings {
	return &entities.ShippingSettings{
		AccountID:        accountID,
		PostalCodeGroups: []entities.PostalCodeGroup{},
		Services: []entities.ShippingService{{
			Name:            "USPS",
			Active:          true,
			DeliveryCountry: targetCountry,
			Currency:        "USD",
			DeliveryTime: &entities.DeliveryTime{
				MinTransitTimeInDays: 3,
				MaxTransitTimeInDays: 7,
			},
			RateGroups: []entities.RateGroup{{
				ApplicableShippingLabels: []string{},
				SingleValue: &entities.Value{
					FlatRate: &entities.Price{Value: "5.00", Currency: "USD"},
				},
			}},
		}},
	}
}

func NewSubAccount(name string) *entities.Account {
	return &entities.Account{
		Name:       name,
		WebsiteURL: fmt.Sprintf("https://%s.example.com/", name),
	}
}
