package samples

import (
	"context"

	"shopping-samples/internal/entities"
)

var productStatusSamples = []*Sample{
	{Name: "productstatuses.workflow", Run: productStatusesWorkflow},
	{Name: "productstatuses.list", Run: productStatusesList},
	{Name: "productstatuses.get", Args: []Arg{{Name: "product_id"}}, Run: productStatusesGet},
}

func productStatusesWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Productstatuses workflow.")
	env.println()

	if env.Info.IsMCA {
		env.println("Nothing to do, as MCAs contain no products.")
		env.println()
	} else {
		list := env.Client.ProductStatuses().List(env.merchantID(), defaultMaxPageSize)
		err := printAll(ctx, env, "Printing status of all products:", list,
			"No product statuses returned.", "Status for %d products printed.")
		if err != nil {
			return err
		}
	}

	env.println("Done with Productstatuses workflow.")
	return nil
}

func productStatusesList(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	list := env.Client.ProductStatuses().List(env.merchantID(), defaultMaxPageSize)
	_, err := forEach(ctx, env, list, "No product statuses were returned.", func(r entities.Resource) error {
		return printProductStatus(env, r)
	})
	return err
}

func productStatusesGet(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, false, ""); err != nil {
		return err
	}
	status, err := env.Client.ProductStatuses().Get(ctx, env.merchantID(), args[0])
	if err != nil {
		return err
	}
	return printProductStatus(env, status)
}

func printProductStatus(env *Env, status entities.Resource) error {
	env.printf("- Product %q with title %q:\n", status.String("productId"), status.String("title"))
	return env.printJSON(status)
}
