package samples

import (
	"context"

	"shopping-samples/internal/entities"
)

var accountStatusSamples = []*Sample{
	{Name: "accountstatuses.workflow", Run: accountStatusesWorkflow},
	{Name: "accountstatuses.get", Args: []Arg{{Name: "account_id", Optional: true}}, Run: accountStatusesGet},
	{Name: "accountstatuses.list", Run: accountStatusesList},
}

func accountStatusesWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Accountstatuses workflow.")
	env.println()

	svc := env.Client.AccountStatuses()
	id := env.merchantID()
	status, err := svc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	env.printf("Status of account %d:\n", id)
	if err := env.printJSON(status); err != nil {
		return err
	}
	env.println()

	if env.Info.IsMCA {
		err := printAll(ctx, env, "Printing status of all sub-accounts:", svc.List(id, defaultMaxPageSize),
			"No account statuses returned.", "Status for %d accounts printed.")
		if err != nil {
			return err
		}
	}

	env.println("Done with Accountstatuses workflow.")
	return nil
}

func accountStatusesGet(ctx context.Context, env *Env, args []string) error {
	accountID, err := accountArg(env, args)
	if err != nil {
		return err
	}
	if err := checkOwnAccount(env, accountID); err != nil {
		return err
	}
	res, err := env.Client.AccountStatuses().Get(ctx, env.merchantID(), accountID)
	if err != nil {
		return err
	}
	status := &entities.AccountStatus{}
	if err := res.Decode(status); err != nil {
		return err
	}

	env.printf("Account %s:\n", status.AccountID)
	if len(status.AccountLevelIssues) == 0 {
		env.println("- No account-level issues.")
	} else {
		env.printf("- Found %d account-level issues:\n", len(status.AccountLevelIssues))
		for _, issue := range status.AccountLevelIssues {
			env.printf("  - (%s) [%s] %s\n", issue.Severity, issue.ID, issue.Title)
			if issue.Detail != "" {
				env.printf("    %s\n", issue.Detail)
			}
		}
	}
	printItemLevelIssues(env, status)
	return nil
}

func accountStatusesList(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	list := env.Client.AccountStatuses().List(env.merchantID(), defaultMaxPageSize)
	_, err := forEach(ctx, env, list, "No statuses were returned.", func(r entities.Resource) error {
		status := &entities.AccountStatus{}
		if err := r.Decode(status); err != nil {
			return err
		}
		env.printf("Account %s:\n", status.AccountID)
		count := 0
		for _, products := range status.Products {
			for _, issue := range products.ItemLevelIssues {
				count++
				env.printf("  - Issue: [%s] %q affecting %d items\n", issue.Code, issue.Detail, issue.NumItems)
			}
		}
		env.printf("Total num of data quality issues: %d\n", count)
		return nil
	})
	return err
}

func printItemLevelIssues(env *Env, status *entities.AccountStatus) {
	for _, products := range status.Products {
		if len(products.ItemLevelIssues) == 0 {
			continue
		}
		env.printf("- Item-level issues for %s/%s in %s:\n", products.Destination, products.Channel, products.Country)
		for _, issue := range products.ItemLevelIssues {
			env.printf("  - [%s] %q affecting %d items\n", issue.Code, issue.Description, issue.NumItems)
		}
	}
}
