package entities

type Order struct {
	ID              string          `json:"id"`
	MerchantID      string          `json:"merchantId"`
	MerchantOrderID string          `json:"merchantOrderId,omitempty"`
	Status          string          `json:"status"`
	PlacedDate      string          `json:"placedDate"`
	PaymentStatus   string          `json:"paymentStatus,omitempty"`
	Acknowledged    bool            `json:"acknowledged"`
	Customer        *OrderCustomer  `json:"customer,omitempty"`
	NetPriceAmount  *Price          `json:"netPriceAmount,omitempty"`
	ShippingCost    *Price          `json:"shippingCost,omitempty"`
	ShippingCostTax *Price          `json:"shippingCostTax,omitempty"`
	LineItems       []OrderLineItem `json:"lineItems"`
	Shipments       []OrderShipment `json:"shipments,omitempty"`
}

type OrderCustomer struct {
	FullName            string               `json:"fullName"`
	MarketingRightsInfo *MarketingRightsInfo `json:"marketingRightsInfo,omitempty"`
}

type MarketingRightsInfo struct {
	MarketingEmailAddress string `json:"marketingEmailAddress"`
}

type OrderLineItem struct {
	ID                string               `json:"id"`
	Product           OrderLineItemProduct `json:"product"`
	Price             Price                `json:"price"`
	Tax               Price                `json:"tax"`
	QuantityOrdered   int64                `json:"quantityOrdered"`
	QuantityPending   int64                `json:"quantityPending"`
	QuantityShipped   int64                `json:"quantityShipped"`
	QuantityDelivered int64                `json:"quantityDelivered"`
	QuantityReturned  int64                `json:"quantityReturned"`
	QuantityCanceled  int64                `json:"quantityCanceled"`
	ShippingDetails   *ShippingDetails     `json:"shippingDetails,omitempty"`
	Cancellations     []OrderCancellation  `json:"cancellations,omitempty"`
	ReturnInfo        *ReturnInfo          `json:"returnInfo,omitempty"`
	Returns           []OrderReturn        `json:"returns,omitempty"`
}

type OrderLineItemProduct struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ShippingDetails struct {
	ShipByDate    string         `json:"shipByDate"`
	DeliverByDate string         `json:"deliverByDate"`
	Method        ShippingMethod `json:"method"`
}

type ShippingMethod struct {
	Carrier          string `json:"carrier"`
	MethodName       string `json:"methodName"`
	MinDaysInTransit int64  `json:"minDaysInTransit"`
	MaxDaysInTransit int64  `json:"maxDaysInTransit"`
}

type OrderCancellation struct {
	Actor        string `json:"actor,omitempty"`
	CreationDate string `json:"creationDate"`
	Quantity     int64  `json:"quantity"`
	Reason       string `json:"reason"`
	ReasonText   string `json:"reasonText"`
}

type ReturnInfo struct {
	IsReturnable bool   `json:"isReturnable"`
	DaysToReturn int64  `json:"daysToReturn"`
	PolicyURL    string `json:"policyUrl"`
}

type OrderReturn struct {
	Actor        string `json:"actor,omitempty"`
	CreationDate string `json:"creationDate"`
	Quantity     int64  `json:"quantity"`
	Reason       string `json:"reason"`
	ReasonText   string `json:"reasonText"`
}

type OrderShipment struct {
	ID           string             `json:"id"`
	CreationDate string             `json:"creationDate"`
	Carrier      string             `json:"carrier"`
	TrackingID   string             `json:"trackingId"`
	DeliveryDate string             `json:"deliveryDate,omitempty"`
	LineItems    []ShipmentLineItem `json:"lineItems,omitempty"`
}

type ShipmentLineItem struct {
	LineItemID string `json:"lineItemId"`
	Quantity   int64  `json:"quantity"`
}

type ShipmentInfo struct {
	Carrier    string `json:"carrier"`
	ShipmentID string `json:"shipmentId"`
	TrackingID string `json:"trackingId"`
}

type CreateTestOrderRequest struct {
	TemplateName string `json:"templateName"`
}

type CreateTestOrderResponse struct {
	OrderID string `json:"orderId"`
}

type OrderOperation struct {
	OperationID     string             `json:"operationId"`
	MerchantOrderID string             `json:"merchantOrderId,omitempty"`
	LineItemID      string             `json:"lineItemId,omitempty"`
	Quantity        int64              `json:"quantity,omitempty"`
	Reason          string             `json:"reason,omitempty"`
	ReasonText      string             `json:"reasonText,omitempty"`
	LineItems       []ShipmentLineItem `json:"lineItems,omitempty"`
	ShipmentInfos   []ShipmentInfo     `json:"shipmentInfos,omitempty"`
	ShipmentID      string             `json:"shipmentId,omitempty"`
	TrackingID      string             `json:"trackingId,omitempty"`
	Carrier         string             `json:"carrier,omitempty"`
	Status          string             `json:"status,omitempty"`
}

// OrderOperationResponse is returned by every order mutation.
type OrderOperationResponse struct {
	ExecutionStatus string `json:"executionStatus"`
}

type OrdersGetByMerchantOrderIDResponse struct {
	Order *Order `json:"order"`
}
