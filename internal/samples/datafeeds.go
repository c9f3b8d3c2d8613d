package samples

import (
	"context"
	"encoding/json"

	"shopping-samples/internal/entities"
	"shopping-samples/internal/merchant"
)

var datafeedSamples = []*Sample{
	{Name: "datafeeds.workflow", Run: datafeedsWorkflow},
	{Name: "datafeeds.list", Run: datafeedsList},
	{Name: "datafeeds.insert", Run: datafeedsInsert},
	{Name: "datafeeds.insert_batch", Run: datafeedsInsertBatch},
	{Name: "datafeeds.update", Args: []Arg{{Name: "datafeed_id"}}, Run: datafeedsUpdate},
	{Name: "datafeeds.delete", Args: []Arg{{Name: "datafeed_id"}}, Run: datafeedsDelete},
	{Name: "datafeeds.fetchnow", Args: []Arg{{Name: "datafeed_id"}}, Run: datafeedsFetchNow},
}

func datafeedsWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Datafeeds workflow.")
	env.println()

	if env.Info.IsMCA {
		env.println("Nothing to do, as MCAs contain no datafeeds.")
		env.println()
	} else if err := datafeedsNonMCAWorkflow(ctx, env); err != nil {
		return err
	}

	env.println("Done with Datafeeds workflow.")
	return nil
}

func datafeedsNonMCAWorkflow(ctx context.Context, env *Env) error {
	df := env.Client.Datafeeds()
	id := env.merchantID()

	err := printAll(ctx, env, "Printing settings of all datafeeds:", df.List(id, defaultMaxPageSize),
		"No feeds found.", "Status for %d datafeeds printed.\n")
	if err != nil {
		return err
	}

	name := "feed" + UniqueID()
	env.printf("Inserting feed %q... ", name)
	created, err := df.Insert(ctx, id, NewDatafeed(env.Info, name))
	if err != nil {
		return err
	}
	env.println("done.")
	env.println()
	feedID := created.Uint("id")

	env.printf("Retrieving (with retries) new datafeed (ID %d).\n", feedID)
	feed, err := merchant.RetryRequest(ctx, func(ctx context.Context) (entities.Resource, error) {
		return df.Get(ctx, id, feedID)
	}, env.retryOptions()...)
	if err != nil {
		return err
	}
	if err := env.printStep("Feed settings:", feed); err != nil {
		return err
	}

	env.printf("Deleting feed %q... ", name)
	if err := df.Delete(ctx, id, feedID); err != nil {
		return err
	}
	env.println("done.")
	env.println()
	return nil
}

func datafeedsList(ctx context.Context, env *Env, _ []string) error {
	list := env.Client.Datafeeds().List(env.merchantID(), 0)
	_, err := forEach(ctx, env, list, "No datafeeds were found.", func(r entities.Resource) error {
		env.printf("Datafeed %d with name %q was found.\n", r.Uint("id"), r.String("name"))
		return nil
	})
	return err
}

func datafeedsInsert(ctx context.Context, env *Env, _ []string) error {
	feed, err := env.Client.Datafeeds().Insert(ctx, env.merchantID(), NewDatafeed(env.Info, "feed"+UniqueID()))
	if err != nil {
		return err
	}
	env.printf("Datafeed %d with name %q created.\n", feed.Uint("id"), feed.String("name"))
	return nil
}

func datafeedsInsertBatch(ctx context.Context, env *Env, _ []string) error {
	batch := &entities.BatchRequest{}
	for i := 0; i < batchSize; i++ {
		batch.Entries = append(batch.Entries, entities.BatchRequestEntry{
			BatchID:    int64(i),
			MerchantID: env.merchantID(),
			Method:     "insert",
			Datafeed:   NewDatafeed(env.Info, "feed"+UniqueID()),
		})
	}
	resp, err := env.Client.Datafeeds().Custombatch(ctx, batch)
	if err != nil {
		return err
	}
	if ok, err := env.checkBatchKind(resp, "content#datafeedsCustomBatchResponse"); !ok {
		return err
	}
	for _, entry := range resp.Entries {
		switch {
		case entry.Datafeed != nil:
			env.printf("Datafeed %d with name %q created.\n", entry.Datafeed.ID, entry.Datafeed.Name)
		case entry.Errors != nil:
			if err := env.printBatchErrors(entry.BatchID, entry.Errors); err != nil {
				return err
			}
		}
	}
	return nil
}

// datafeedsUpdate moves the scheduled fetch of a feed to 7:00.
func datafeedsUpdate(ctx context.Context, env *Env, args []string) error {
	feedID, err := parseUint("datafeed ID", args[0])
	if err != nil {
		return err
	}
	df := env.Client.Datafeeds()
	feed, err := df.Get(ctx, env.merchantID(), feedID)
	if err != nil {
		return err
	}
	schedule := feed.Map("fetchSchedule")
	if schedule == nil {
		schedule = entities.Resource{}
	}
	schedule["hour"] = 7
	feed["fetchSchedule"] = schedule

	updated, err := df.Update(ctx, env.merchantID(), feedID, feed)
	if err != nil {
		return err
	}
	data, err := json.Marshal(updated.Map("fetchSchedule"))
	if err != nil {
		return err
	}
	env.printf("Datafeed with ID %d and fetchSchedule %s was updated.\n", updated.Uint("id"), data)
	return nil
}

func datafeedsDelete(ctx context.Context, env *Env, args []string) error {
	feedID, err := parseUint("datafeed ID", args[0])
	if err != nil {
		return err
	}
	if err := env.Client.Datafeeds().Delete(ctx, env.merchantID(), feedID); err != nil {
		return err
	}
	env.printf("Datafeed %d was deleted.\n", feedID)
	return nil
}

func datafeedsFetchNow(ctx context.Context, env *Env, args []string) error {
	feedID, err := parseUint("datafeed ID", args[0])
	if err != nil {
		return err
	}
	if err := env.Client.Datafeeds().FetchNow(ctx, env.merchantID(), feedID); err != nil {
		return err
	}
	env.printf("Datafeed %d was scheduled to be fetched.\n", feedID)
	return nil
}
