package samples

import (
	"context"

	"shopping-samples/internal/entities"
)

var accountTaxSamples = []*Sample{
	{Name: "accounttax.workflow", Run: accountTaxWorkflow},
	{Name: "accounttax.get", Args: []Arg{{Name: "account_id", Optional: true}}, Run: accountTaxGet},
	{Name: "accounttax.update", Args: []Arg{{Name: "account_id", Optional: true}}, Run: accountTaxUpdate},
	{Name: "accounttax.list", Run: accountTaxList},
}

func accountTaxWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Accounttax workflow.")
	env.println()

	svc := env.Client.AccountTax()
	id := env.merchantID()
	settings, err := svc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	env.printf("Tax settings for account %d:\n", id)
	if err := env.printJSON(settings); err != nil {
		return err
	}
	env.println()

	changed, err := svc.Update(ctx, id, id, NewAccountTax(id))
	if err != nil {
		return err
	}
	if err := env.printStep("Changed account settings to sample settings:", changed); err != nil {
		return err
	}

	restored, err := svc.Update(ctx, id, id, settings)
	if err != nil {
		return err
	}
	if err := env.printStep("Replaced changes with old settings:", restored); err != nil {
		return err
	}

	if env.Info.IsMCA {
		err := printAll(ctx, env, "Printing tax settings of all sub-accounts:", svc.List(id, defaultMaxPageSize),
			"No tax settings returned.", "Tax settings for %d accounts printed.")
		if err != nil {
			return err
		}
	}

	env.println("Done with Accounttax workflow.")
	return nil
}

func accountTaxGet(ctx context.Context, env *Env, args []string) error {
	accountID, err := accountArg(env, args)
	if err != nil {
		return err
	}
	if err := checkOwnAccount(env, accountID); err != nil {
		return err
	}
	res, err := env.Client.AccountTax().Get(ctx, env.merchantID(), accountID)
	if err != nil {
		return err
	}
	return printTaxSummary(env, res)
}

func accountTaxUpdate(ctx context.Context, env *Env, args []string) error {
	accountID, err := accountArg(env, args)
	if err != nil {
		return err
	}
	if accountID != env.merchantID() {
		if err := CheckMCA(env.Info, true, "Non-multi-client accounts can only set their own information."); err != nil {
			return err
		}
	}
	res, err := env.Client.AccountTax().Update(ctx, env.merchantID(), accountID, NewAccountTax(accountID))
	if err != nil {
		return err
	}
	return printTaxSummary(env, res)
}

func accountTaxList(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	list := env.Client.AccountTax().List(env.merchantID(), defaultMaxPageSize)
	_, err := forEach(ctx, env, list, "No tax settings returned.", func(r entities.Resource) error {
		return printTaxSummary(env, r)
	})
	return err
}

func printTaxSummary(env *Env, res entities.Resource) error {
	tax := &entities.AccountTax{}
	if err := res.Decode(tax); err != nil {
		return err
	}
	env.printf("Account %d:\n", tax.AccountID)
	if len(tax.Rules) == 0 {
		env.println("- No tax settings, so no tax is charged.")
		return nil
	}
	env.printf("- Found %d tax rules:\n", len(tax.Rules))
	for _, rule := range tax.Rules {
		if rule.RatePercent != "" {
			env.printf("  - For %d in %s: %s%%\n", rule.LocationID, rule.Country, rule.RatePercent)
		}
		if rule.UseGlobalRate {
			env.printf("  - For %d in %s: using the global tax table rate.\n", rule.LocationID, rule.Country)
		}
		if rule.ShippingTaxed {
			env.println("   NOTE: Shipping charges are also taxed.")
		}
	}
	return nil
}
