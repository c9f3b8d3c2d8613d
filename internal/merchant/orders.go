package merchant

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"shopping-samples/internal/entities"
)

// OrdersService exposes the order methods. Test order creation and
// advancement only exist on a Sandbox client.
type OrdersService struct {
	c *Client
}

func (c *Client) Orders() *OrdersService {
	return &OrdersService{c: c}
}

func (s *OrdersService) CreateTestOrder(ctx context.Context, merchantID uint64, templateName string) (*entities.CreateTestOrderResponse, error) {
	resp := &entities.CreateTestOrderResponse{}
	req := &entities.CreateTestOrderRequest{TemplateName: templateName}
	if err := s.c.post(ctx, resourcePath(merchantID, "testorders"), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *OrdersService) AdvanceTestOrder(ctx context.Context, merchantID uint64, orderID string) error {
	return s.c.post(ctx, resourcePath(merchantID, "testorders", orderID, "advance"), nil, nil)
}

func (s *OrdersService) Get(ctx context.Context, merchantID uint64, orderID string) (*entities.Order, error) {
	order := &entities.Order{}
	if err := s.c.get(ctx, resourcePath(merchantID, "orders", orderID), nil, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrdersService) GetByMerchantOrderID(ctx context.Context, merchantID uint64, merchantOrderID string) (*entities.Order, error) {
	resp := &entities.OrdersGetByMerchantOrderIDResponse{}
	if err := s.c.get(ctx, resourcePath(merchantID, "ordersbymerchantid", merchantOrderID), nil, resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("no order with merchant order ID %q", merchantOrderID)
	}
	return resp.Order, nil
}

// List returns orders filtered by their acknowledged state.
func (s *OrdersService) List(merchantID uint64, acknowledged bool) ListCall {
	extra := url.Values{"acknowledged": {strconv.FormatBool(acknowledged)}}
	return s.c.listCall(resourcePath(merchantID, "orders"), 0, extra)
}

func (s *OrdersService) Acknowledge(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	return s.operation(ctx, merchantID, orderID, "acknowledge", op)
}

func (s *OrdersService) UpdateMerchantOrderID(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	return s.operation(ctx, merchantID, orderID, "updateMerchantOrderId", op)
}

func (s *OrdersService) CancelLineItem(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	return s.operation(ctx, merchantID, orderID, "cancelLineItem", op)
}

func (s *OrdersService) ShipLineItems(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	return s.operation(ctx, merchantID, orderID, "shipLineItems", op)
}

func (s *OrdersService) UpdateShipment(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	return s.operation(ctx, merchantID, orderID, "updateShipment", op)
}

func (s *OrdersService) ReturnRefundLineItem(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	return s.operation(ctx, merchantID, orderID, "returnRefundLineItem", op)
}

func (s *OrdersService) operation(ctx context.Context, merchantID uint64, orderID, method string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error) {
	resp := &entities.OrderOperationResponse{}
	if err := s.c.post(ctx, resourcePath(merchantID, "orders", orderID, method), op, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
