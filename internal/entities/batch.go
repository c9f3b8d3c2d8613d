package entities

// BatchRequest is the custombatch envelope shared by every service. Each
// entry only carries the fields its method needs.
type BatchRequest struct {
	Entries []BatchRequestEntry `json:"entries"`
}

type BatchRequestEntry struct {
	BatchID        int64           `json:"batchId"`
	MerchantID     uint64          `json:"merchantId,string"`
	Method         string          `json:"method,omitempty"`
	AccountID      uint64          `json:"accountId,string,omitempty"`
	Account        *Account        `json:"account,omitempty"`
	DatafeedID     uint64          `json:"datafeedId,string,omitempty"`
	Datafeed       *Datafeed       `json:"datafeed,omitempty"`
	ProductID      string          `json:"productId,omitempty"`
	Product        *Product        `json:"product,omitempty"`
	LocalInventory *LocalInventory `json:"localInventory,omitempty"`
}

type BatchResponse struct {
	Kind    string               `json:"kind"`
	Entries []BatchResponseEntry `json:"entries"`
}

type BatchResponseEntry struct {
	BatchID  int64     `json:"batchId"`
	Errors   *Errors   `json:"errors,omitempty"`
	Account  *Account  `json:"account,omitempty"`
	Datafeed *Datafeed `json:"datafeed,omitempty"`
	Product  *Product  `json:"product,omitempty"`
}

// Errors is the error list attached to a failed batch entry.
type Errors struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

type ErrorDetail struct {
	Domain  string `json:"domain,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}
