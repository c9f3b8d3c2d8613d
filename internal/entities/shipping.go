package entities

type ShippingSettings struct {
	AccountID        uint64            `json:"accountId,string,omitempty"`
	PostalCodeGroups []PostalCodeGroup `json:"postalCodeGroups"`
	Services         []ShippingService `json:"services"`
}

type PostalCodeGroup struct {
	Name             string            `json:"name"`
	Country          string            `json:"country"`
	PostalCodeRanges []PostalCodeRange `json:"postalCodeRanges"`
}

type PostalCodeRange struct {
	PostalCodeRangeBegin string `json:"postalCodeRangeBegin"`
	PostalCodeRangeEnd   string `json:"postalCodeRangeEnd,omitempty"`
}

type ShippingService struct {
	Name            string        `json:"name"`
	Active          bool          `json:"active"`
	DeliveryCountry string        `json:"deliveryCountry"`
	Currency        string        `json:"currency"`
	DeliveryTime    *DeliveryTime `json:"deliveryTime,omitempty"`
	RateGroups      []RateGroup   `json:"rateGroups"`
}

type DeliveryTime struct {
	MinTransitTimeInDays int64 `json:"minTransitTimeInDays"`
	MaxTransitTimeInDays int64 `json:"maxTransitTimeInDays"`
}

type RateGroup struct {
	Name                     string   `json:"name,omitempty"`
	ApplicableShippingLabels []string `json:"applicableShippingLabels"`
	SingleValue              *Value   `json:"singleValue,omitempty"`
}

type Value struct {
	FlatRate        *Price `json:"flatRate,omitempty"`
	PricePercentage string `json:"pricePercentage,omitempty"`
	NoShipping      bool   `json:"noShipping,omitempty"`
	SubtableName    string `json:"subtableName,omitempty"`
}

// Carriers is the response of shippingsettings.getsupportedcarriers.
type Carriers struct {
	Carriers []Carrier `json:"carriers"`
}

type Carrier struct {
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Services []string `json:"services"`
}
