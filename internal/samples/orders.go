package samples

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"shopping-samples/internal/entities"
	"shopping-samples/internal/merchant"
)

const testOrderTemplate = "template1"

var orderSamples = []*Sample{
	{Name: "orders.workflow", Run: ordersWorkflow},
}

// orderWorkflow walks a sandbox test order through its whole lifecycle.
type orderWorkflow struct {
	env        *Env
	orders     *merchant.OrdersService
	merchantID uint64
	orderID    string
	nonce      int
	// randID returns the random part of merchant order, shipment and
	// tracking IDs.
	randID func() uint32
}

// operationID returns a new ID for every mutation. IDs must be unique over
// the lifetime of an order so that Google can reject duplicate requests.
func (w *orderWorkflow) operationID() string {
	id := strconv.Itoa(w.nonce)
	w.nonce++
	return id
}

func ordersWorkflow(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	w := &orderWorkflow{
		env:        env,
		orders:     env.Client.Sandbox().Orders(),
		merchantID: env.merchantID(),
		randID:     rand.Uint32,
	}
	return w.run(ctx)
}

func (w *orderWorkflow) run(ctx context.Context) error {
	env := w.env

	env.printf("Creating new test order... ")
	created, err := w.orders.CreateTestOrder(ctx, w.merchantID, testOrderTemplate)
	if err != nil {
		return err
	}
	w.orderID = created.OrderID
	env.printf("done (%s).\n\n", w.orderID)

	env.printf("Listing unacknowledged orders for merchant %d:\n", w.merchantID)
	_, err = forEach(ctx, env, w.orders.List(w.merchantID, false), "No orders were found.", func(r entities.Resource) error {
		order := &entities.Order{}
		if err := r.Decode(order); err != nil {
			return err
		}
		printOrder(env, order)
		return nil
	})
	if err != nil {
		return err
	}
	env.println()

	env.printf("Acknowledging order %s... ", w.orderID)
	err = w.operation(ctx, w.orders.Acknowledge, &entities.OrderOperation{})
	if err != nil {
		return err
	}

	merchantOrderID := fmt.Sprintf("test order %d", w.randID())
	env.printf("Updating merchant order ID to %q... ", merchantOrderID)
	err = w.operation(ctx, w.orders.UpdateMerchantOrderID, &entities.OrderOperation{MerchantOrderID: merchantOrderID})
	if err != nil {
		return err
	}

	env.printf("Retrieving merchant order %q... ", merchantOrderID)
	order, err := w.orders.GetByMerchantOrderID(ctx, w.merchantID, merchantOrderID)
	if err != nil {
		return err
	}
	env.println("done.")
	env.println()
	printOrder(env, order)
	env.println()
	if len(order.LineItems) < 2 {
		return fmt.Errorf("test order %s has %d line items, expected at least 2", w.orderID, len(order.LineItems))
	}

	// Not enough stock for every unit of the first item.
	env.printf("Canceling one unit of the first line item... ")
	err = w.operation(ctx, w.orders.CancelLineItem, &entities.OrderOperation{
		LineItemID: order.LineItems[0].ID,
		Quantity:   1,
		Reason:     "noInventory",
		ReasonText: "Ran out of inventory while fulfilling request.",
	})
	if err != nil {
		return err
	}
	if _, err := w.refresh(ctx); err != nil {
		return err
	}

	// Google advances real orders once the customer can no longer cancel.
	env.printf("Advancing test order... ")
	if err := w.orders.AdvanceTestOrder(ctx, w.merchantID, w.orderID); err != nil {
		return err
	}
	env.println("done.")
	env.println()
	order, err = w.refresh(ctx)
	if err != nil {
		return err
	}

	env.printf("Notifying Google about shipment of first line item... ")
	first, err := w.ship(ctx, &order.LineItems[0])
	if err != nil {
		return err
	}
	order, err = w.refresh(ctx)
	if err != nil {
		return err
	}

	env.printf("Notifying Google about shipment of second line item... ")
	second, err := w.ship(ctx, &order.LineItems[1])
	if err != nil {
		return err
	}
	if _, err := w.refresh(ctx); err != nil {
		return err
	}

	env.printf("Notifying Google about delivery of first line item... ")
	if err := w.deliver(ctx, first); err != nil {
		return err
	}
	if _, err := w.refresh(ctx); err != nil {
		return err
	}

	env.printf("Notifying Google about delivery of second line item... ")
	if err := w.deliver(ctx, second); err != nil {
		return err
	}
	if _, err := w.refresh(ctx); err != nil {
		return err
	}

	env.printf("Notifying Google about return of first line item... ")
	err = w.operation(ctx, w.orders.ReturnRefundLineItem, &entities.OrderOperation{
		LineItemID: order.LineItems[0].ID,
		Quantity:   1,
		Reason:     "productArrivedDamaged",
		ReasonText: "Item broken at receipt.",
	})
	if err != nil {
		return err
	}
	_, err = w.refresh(ctx)
	return err
}

type orderMutation func(ctx context.Context, merchantID uint64, orderID string, op *entities.OrderOperation) (*entities.OrderOperationResponse, error)

// operation stamps op with a fresh operation ID, sends it and prints the
// execution status.
func (w *orderWorkflow) operation(ctx context.Context, call orderMutation, op *entities.OrderOperation) error {
	op.OperationID = w.operationID()
	resp, err := call(ctx, w.merchantID, w.orderID, op)
	if err != nil {
		return err
	}
	w.env.printf("done (%s).\n\n", resp.ExecutionStatus)
	return nil
}

// refresh fetches and prints the current state of the order.
func (w *orderWorkflow) refresh(ctx context.Context) (*entities.Order, error) {
	order, err := w.orders.Get(ctx, w.merchantID, w.orderID)
	if err != nil {
		return nil, err
	}
	printOrder(w.env, order)
	w.env.println()
	return order, nil
}

// ship ships the pending quantity of item and returns the shipment it
// created.
func (w *orderWorkflow) ship(ctx context.Context, item *entities.OrderLineItem) (entities.ShipmentInfo, error) {
	info := entities.ShipmentInfo{
		ShipmentID: strconv.FormatUint(uint64(w.randID()), 10),
		TrackingID: strconv.FormatUint(uint64(w.randID()), 10),
	}
	if item.ShippingDetails != nil {
		info.Carrier = item.ShippingDetails.Method.Carrier
	}
	err := w.operation(ctx, w.orders.ShipLineItems, &entities.OrderOperation{
		LineItems:     []entities.ShipmentLineItem{{LineItemID: item.ID, Quantity: item.QuantityPending}},
		ShipmentInfos: []entities.ShipmentInfo{info},
	})
	return info, err
}

func (w *orderWorkflow) deliver(ctx context.Context, shipment entities.ShipmentInfo) error {
	return w.operation(ctx, w.orders.UpdateShipment, &entities.OrderOperation{
		ShipmentID: shipment.ShipmentID,
		TrackingID: shipment.TrackingID,
		Carrier:    shipment.Carrier,
		Status:     "delivered",
	})
}
