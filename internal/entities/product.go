package entities

type Price struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type Product struct {
	ID                    string            `json:"id,omitempty"`
	OfferID               string            `json:"offerId"`
	Title                 string            `json:"title"`
	Description           string            `json:"description,omitempty"`
	Link                  string            `json:"link,omitempty"`
	ImageLink             string            `json:"imageLink,omitempty"`
	ContentLanguage       string            `json:"contentLanguage"`
	TargetCountry         string            `json:"targetCountry"`
	Channel               string            `json:"channel"`
	Availability          string            `json:"availability,omitempty"`
	Condition             string            `json:"condition,omitempty"`
	GoogleProductCategory string            `json:"googleProductCategory,omitempty"`
	Gtin                  string            `json:"gtin,omitempty"`
	Price                 *Price            `json:"price,omitempty"`
	Shipping              []ProductShipping `json:"shipping,omitempty"`
	ShippingWeight        *ShippingWeight   `json:"shippingWeight,omitempty"`
	ProductTypes          []string          `json:"productTypes,omitempty"`
}

type ProductShipping struct {
	Country string `json:"country"`
	Service string `json:"service"`
	Price   *Price `json:"price"`
}

type ShippingWeight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ProductStatus is the v2.1 productstatuses resource.
type ProductStatus struct {
	ProductID           string              `json:"productId"`
	Title               string              `json:"title"`
	Link                string              `json:"link,omitempty"`
	DestinationStatuses []DestinationStatus `json:"destinationStatuses,omitempty"`
	ItemLevelIssues     []ItemLevelIssue    `json:"itemLevelIssues,omitempty"`
}

type DestinationStatus struct {
	Destination string `json:"destination"`
	Status      string `json:"status,omitempty"`
}

type ItemLevelIssue struct {
	Code          string `json:"code"`
	Servability   string `json:"servability,omitempty"`
	AttributeName string `json:"attributeName,omitempty"`
	Destination   string `json:"destination,omitempty"`
	Description   string `json:"description,omitempty"`
	Detail        string `json:"detail,omitempty"`
}

// LocalInventory is the per-store availability and price of a product.
type LocalInventory struct {
	StoreCode    string `json:"storeCode"`
	Availability string `json:"availability,omitempty"`
	Price        *Price `json:"price,omitempty"`
	Quantity     int64  `json:"quantity,omitempty"`
}
