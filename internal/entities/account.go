package entities

// AuthInfo is the response of accounts.authinfo.
type AuthInfo struct {
	AccountIdentifiers []AccountIdentifier `json:"accountIdentifiers"`
}

type AccountIdentifier struct {
	MerchantID   uint64 `json:"merchantId,string,omitempty"`
	AggregatorID uint64 `json:"aggregatorId,string,omitempty"`
}

type Account struct {
	ID         uint64        `json:"id,string,omitempty"`
	Name       string        `json:"name,omitempty"`
	WebsiteURL string        `json:"websiteUrl,omitempty"`
	Users      []AccountUser `json:"users,omitempty"`
	AdsLinks   []AdsLink     `json:"adsLinks,omitempty"`
}

type AccountUser struct {
	EmailAddress string `json:"emailAddress"`
	Admin        bool   `json:"admin"`
}

type AdsLink struct {
	AdsID  uint64 `json:"adsId,string"`
	Status string `json:"status"`
}

// AccountStatus is the v2.1 accountstatuses resource.
type AccountStatus struct {
	AccountID          string                  `json:"accountId"`
	WebsiteClaimed     bool                    `json:"websiteClaimed,omitempty"`
	AccountLevelIssues []AccountLevelIssue     `json:"accountLevelIssues,omitempty"`
	Products           []AccountStatusProducts `json:"products,omitempty"`
}

type AccountLevelIssue struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Country     string `json:"country,omitempty"`
	Severity    string `json:"severity"`
	Detail      string `json:"detail,omitempty"`
	Destination string `json:"destination,omitempty"`
}

type AccountStatusProducts struct {
	Channel         string                  `json:"channel"`
	Destination     string                  `json:"destination"`
	Country         string                  `json:"country"`
	ItemLevelIssues []AccountItemLevelIssue `json:"itemLevelIssues,omitempty"`
}

type AccountItemLevelIssue struct {
	Code          string `json:"code"`
	Servability   string `json:"servability,omitempty"`
	AttributeName string `json:"attributeName,omitempty"`
	Description   string `json:"description,omitempty"`
	Detail        string `json:"detail,omitempty"`
	NumItems      int64  `json:"numItems,string,omitempty"`
}

// AccountTax is the accounttax resource.
type AccountTax struct {
	AccountID uint64    `json:"accountId,string"`
	Rules     []TaxRule `json:"rules"`
}

type TaxRule struct {
	Country       string `json:"country"`
	LocationID    uint64 `json:"locationId,string"`
	RatePercent   string `json:"ratePercent,omitempty"`
	ShippingTaxed bool   `json:"shippingTaxed,omitempty"`
	UseGlobalRate bool   `json:"useGlobalRate,omitempty"`
}
