package samples

import (
	"context"

	"shopping-samples/internal/entities"
)

var shippingSettingsSamples = []*Sample{
	{Name: "shippingsettings.workflow", Run: shippingSettingsWorkflow},
	{Name: "shippingsettings.get", Args: []Arg{{Name: "account_id", Optional: true}}, Run: shippingSettingsGet},
	{Name: "shippingsettings.update", Args: []Arg{{Name: "account_id", Optional: true}}, Run: shippingSettingsUpdate},
	{Name: "shippingsettings.supported_carriers", Run: shippingSettingsSupportedCarriers},
	{Name: "shippingsettings.list", Run: shippingSettingsList},
}

func shippingSettingsWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Shippingsettings workflow.")
	env.println()

	ss := env.Client.ShippingSettings()
	id := env.merchantID()
	settings, err := ss.Get(ctx, id, id)
	if err != nil {
		return err
	}
	env.printf("Shipping settings for account %d:\n", id)
	if err := env.printJSON(settings); err != nil {
		return err
	}
	env.println()

	changed, err := ss.Update(ctx, id, id, NewShippingSettings(id))
	if err != nil {
		return err
	}
	if err := env.printStep("Changed account settings to sample settings:", changed); err != nil {
		return err
	}

	restored, err := ss.Update(ctx, id, id, settings)
	if err != nil {
		return err
	}
	if err := env.printStep("Replaced changes with old settings:", restored); err != nil {
		return err
	}

	if env.Info.IsMCA {
		err := printAll(ctx, env, "Printing shipping settings of all sub-accounts:", ss.List(id, defaultMaxPageSize),
			"No shipping settings returned.", "Shipping settings for %d accounts printed.")
		if err != nil {
			return err
		}
	}

	env.println("Done with Shippingsettings workflow.")
	return nil
}

func shippingSettingsGet(ctx context.Context, env *Env, args []string) error {
	accountID, err := accountArg(env, args)
	if err != nil {
		return err
	}
	if err := checkOwnAccount(env, accountID); err != nil {
		return err
	}
	settings, err := env.Client.ShippingSettings().Get(ctx, env.merchantID(), accountID)
	if err != nil {
		return err
	}
	return printShippingSummary(env, settings)
}

// shippingSettingsUpdate replaces the settings with the example ones and
// prints what the API stored.
func shippingSettingsUpdate(ctx context.Context, env *Env, args []string) error {
	accountID, err := accountArg(env, args)
	if err != nil {
		return err
	}
	if accountID != env.merchantID() {
		if err := CheckMCA(env.Info, true, "Non-multi-client accounts can only set their own information."); err != nil {
			return err
		}
	}
	ss := env.Client.ShippingSettings()
	if _, err := ss.Update(ctx, env.merchantID(), accountID, NewShippingSettings(accountID)); err != nil {
		return err
	}
	settings, err := ss.Get(ctx, env.merchantID(), accountID)
	if err != nil {
		return err
	}
	return printShippingSummary(env, settings)
}

func shippingSettingsSupportedCarriers(ctx context.Context, env *Env, _ []string) error {
	resp, err := env.Client.ShippingSettings().GetSupportedCarriers(ctx, env.merchantID())
	if err != nil {
		return err
	}
	env.println("Supported carriers:")
	for _, carrier := range resp.Carriers {
		env.printf("Carrier %q:\n", carrier.Name)
		env.printf("- Country: %s\n", carrier.Country)
		env.printf("- Has %d supported services:\n", len(carrier.Services))
		for _, service := range carrier.Services {
			env.printf("  Service: %q\n", service)
		}
	}
	return nil
}

func shippingSettingsList(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	list := env.Client.ShippingSettings().List(env.merchantID(), defaultMaxPageSize)
	_, err := forEach(ctx, env, list, "No shipping settings returned.", func(r entities.Resource) error {
		return printShippingSummary(env, r)
	})
	return err
}

func printShippingSummary(env *Env, res entities.Resource) error {
	settings := &entities.ShippingSettings{}
	if err := res.Decode(settings); err != nil {
		return err
	}
	env.printf("Account %d:\n", settings.AccountID)
	if len(settings.PostalCodeGroups) == 0 {
		env.println("- No postal code groups.")
	} else {
		env.printf("- %d postal code group(s):\n", len(settings.PostalCodeGroups))
		for _, group := range settings.PostalCodeGroups {
			env.printf("  Postal code group %q (%s): %d range(s)\n", group.Name, group.Country, len(group.PostalCodeRanges))
		}
	}
	if len(settings.Services) == 0 {
		env.println("- No services.")
		return nil
	}
	env.printf("- %d service(s):\n", len(settings.Services))
	for _, service := range settings.Services {
		env.printf("  Service %q:\n", service.Name)
		env.printf("  - Delivery country: %s\n", service.DeliveryCountry)
		env.printf("  - Currency: %s\n", service.Currency)
		env.printf("  - Active: %t\n", service.Active)
		if t := service.DeliveryTime; t != nil {
			env.printf("  - Delivery time: %d - %d days\n", t.MinTransitTimeInDays, t.MaxTransitTimeInDays)
		}
		if len(service.RateGroups) == 0 {
			env.println("  - No rate groups.")
		} else {
			env.printf("  - %d rate group(s).\n", len(service.RateGroups))
		}
	}
	return nil
}
