package samples

import "shopping-samples/internal/entities"

func printOrder(env *Env, order *entities.Order) {
	env.printf("Order %s:\n", order.ID)
	env.printf("- Status: %s\n", order.Status)
	env.printf("- Merchant: %s\n", order.MerchantID)
	if order.MerchantOrderID != "" {
		env.printf("- Merchant order ID: %s\n", order.MerchantOrderID)
	}
	if c := order.Customer; c != nil {
		env.println("- Customer information:")
		env.printf("  - Full name: %s\n", c.FullName)
		email := ""
		if c.MarketingRightsInfo != nil {
			email = c.MarketingRightsInfo.MarketingEmailAddress
		}
		env.printf("  - Email: %s\n", email)
	}
	env.printf("- Placed on date: %s\n", order.PlacedDate)
	if p := order.NetPriceAmount; p != nil {
		env.printf("- Net amount: %s %s\n", p.Value, p.Currency)
	}
	env.printf("- Payment status: %s\n", order.PaymentStatus)
	if order.Acknowledged {
		env.println("- Acknowledged: yes")
	} else {
		env.println("- Acknowledged: no")
	}
	if len(order.LineItems) > 0 {
		env.printf("- %d line item(s):\n", len(order.LineItems))
		for i := range order.LineItems {
			printLineItem(env, &order.LineItems[i])
		}
	}
	if p := order.ShippingCost; p != nil {
		env.printf("- Shipping cost: %s %s\n", p.Value, p.Currency)
	}
	if p := order.ShippingCostTax; p != nil {
		env.printf("- Shipping cost tax: %s %s\n", p.Value, p.Currency)
	}
	if len(order.Shipments) == 0 {
		env.println("- No shipments.")
		return
	}
	env.printf("- %d shipment(s):\n", len(order.Shipments))
	for _, s := range order.Shipments {
		env.printf("  Shipment %s:\n", s.ID)
		env.printf("  - Creation date: %s\n", s.CreationDate)
		env.printf("  - Carrier: %s\n", s.Carrier)
		env.printf("  - Tracking ID: %s\n", s.TrackingID)
		if len(s.LineItems) > 0 {
			env.printf("  - %d line item(s):\n", len(s.LineItems))
			for _, item := range s.LineItems {
				env.printf("    %d of item %s\n", item.Quantity, item.LineItemID)
			}
		}
		if s.DeliveryDate != "" {
			env.printf("  - Delivery date: %s\n", s.DeliveryDate)
		}
	}
}

func printLineItem(env *Env, item *entities.OrderLineItem) {
	nonZero := func(v int64, text string) {
		if v > 0 {
			env.printf("  - %s: %d\n", text, v)
		}
	}

	env.printf("  Line item %s\n", item.ID)
	env.printf("  - Product: %s (%s)\n", item.Product.ID, item.Product.Title)
	env.printf("  - Price: %s %s\n", item.Price.Value, item.Price.Currency)
	env.printf("  - Tax: %s %s\n", item.Tax.Value, item.Tax.Currency)
	nonZero(item.QuantityOrdered, "Quantity ordered")
	nonZero(item.QuantityPending, "Quantity pending")
	nonZero(item.QuantityShipped, "Quantity shipped")
	nonZero(item.QuantityDelivered, "Quantity delivered")
	nonZero(item.QuantityReturned, "Quantity returned")
	nonZero(item.QuantityCanceled, "Quantity canceled")
	if d := item.ShippingDetails; d != nil {
		env.printf("  - Ship by date: %s\n", d.ShipByDate)
		env.printf("  - Deliver by date: %s\n", d.DeliverByDate)
		m := d.Method
		env.printf("  - Deliver via %s %s (%d - %d days).\n", m.Carrier, m.MethodName, m.MinDaysInTransit, m.MaxDaysInTransit)
	}
	if len(item.Cancellations) > 0 {
		env.printf("  - %d cancellation(s):\n", len(item.Cancellations))
		for _, c := range item.Cancellations {
			env.println("    Cancellation:")
			if c.Actor != "" {
				env.printf("    - Actor: %s\n", c.Actor)
			}
			env.printf("    - Creation date: %s\n", c.CreationDate)
			env.printf("    - Quantity: %d\n", c.Quantity)
			env.printf("    - Reason: %s\n", c.Reason)
			env.printf("    - Reason text: %s\n", c.ReasonText)
		}
	}
	if r := item.ReturnInfo; r != nil && r.IsReturnable {
		env.println("  - Item is returnable.")
		env.printf("    - Days to return: %d\n", r.DaysToReturn)
		env.printf("    - Return policy is at %s.\n", r.PolicyURL)
	} else {
		env.println("  - Item is not returnable.")
	}
	if len(item.Returns) > 0 {
		env.printf("  - %d return(s):\n", len(item.Returns))
		for _, r := range item.Returns {
			env.println("    Return:")
			if r.Actor != "" {
				env.printf("    - Actor: %s\n", r.Actor)
			}
			env.printf("    - Creation date: %s\n", r.CreationDate)
			env.printf("    - Quantity: %d\n", r.Quantity)
			env.printf("    - Reason: %s\n", r.Reason)
			env.printf("    - Reason text: %s\n", r.ReasonText)
		}
	}
}
