package samples

import (
	"context"
	"fmt"

	"shopping-samples/internal/entities"
	"shopping-samples/internal/errors"
	"shopping-samples/internal/merchant"
)

const batchSize = 5

var accountSamples = []*Sample{
	{Name: "accounts.workflow", Run: accountsWorkflow},
	{Name: "accounts.list", Run: accountsList},
	{Name: "accounts.insert", Run: accountsInsert},
	{Name: "accounts.insert_batch", Run: accountsInsertBatch},
	{Name: "accounts.update", Args: []Arg{{Name: "account_id"}}, Run: accountsUpdate},
	{Name: "accounts.delete", Args: []Arg{{Name: "account_id"}}, Run: accountsDelete},
	{Name: "accounts.delete_batch", Args: []Arg{{Name: "account_id", Variadic: true}}, Run: accountsDeleteBatch},
	{Name: "accounts.add_user", Run: accountsAddUser},
	{Name: "accounts.remove_user", Run: accountsRemoveUser},
	{Name: "accounts.link_google_ads_account", Run: accountsLinkAds},
	{Name: "accounts.unlink_google_ads_account", Run: accountsUnlinkAds},
}

func accountsWorkflow(ctx context.Context, env *Env, _ []string) error {
	env.println("Performing the Accounts workflow.")
	env.println()

	if err := commonAccountWorkflow(ctx, env); err != nil {
		return err
	}
	if env.Info.IsMCA {
		if err := mcaAccountWorkflow(ctx, env); err != nil {
			return err
		}
	}

	env.println("Done with Accounts workflow.")
	return nil
}

// commonAccountWorkflow runs the account methods any Merchant Center account
// can use, undoing every change it makes.
func commonAccountWorkflow(ctx context.Context, env *Env) error {
	acc := env.Client.Accounts()
	id := env.merchantID()
	email := env.Info.AccountSampleUser
	adsID := env.Info.AccountSampleAdWordsCID

	account, err := acc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	if err := env.printStep("Starting account information:", account); err != nil {
		return err
	}

	update := func(title string) error {
		account, err = acc.Update(ctx, id, id, account)
		if err != nil {
			return err
		}
		return env.printStep(title, account)
	}

	if email != "" {
		account.Append("users", newUser(email))
		if err := update("After adding user:"); err != nil {
			return err
		}
		account.Filter("users", func(u entities.Resource) bool {
			return u.String("emailAddress") != email
		})
		if err := update("After removing user:"); err != nil {
			return err
		}
	}

	if adsID != 0 {
		account.Append("adsLinks", newAdsLink(adsID))
		if err := update("After adding Google Ads link:"); err != nil {
			return err
		}
		account.Filter("adsLinks", func(l entities.Resource) bool {
			return l.Uint("adsId") != adsID
		})
		if err := update("After removing Google Ads link:"); err != nil {
			return err
		}
	}
	return nil
}

func mcaAccountWorkflow(ctx context.Context, env *Env) error {
	acc := env.Client.Accounts()
	id := env.merchantID()

	env.println("Printing all sub-accounts:")
	count, err := forEach(ctx, env, acc.List(id, defaultMaxPageSize), "No subaccounts found.", func(r entities.Resource) error {
		return env.printJSON(r)
	})
	if err != nil {
		return err
	}
	env.printf("%d accounts printed.\n", count)

	name := "account" + UniqueID()
	env.printf("Adding account %s... ", name)
	created, err := acc.Insert(ctx, id, NewSubAccount(name))
	if err != nil {
		return err
	}
	env.println("done.")
	accountID := created.Uint("id")

	// New sub-accounts take a while to become visible.
	env.printf("Retrieving (with retries) new account (ID %d).\n", accountID)
	_, err = merchant.RetryRequest(ctx, func(ctx context.Context) (entities.Resource, error) {
		return acc.Get(ctx, id, accountID)
	}, env.retryOptions()...)
	if err != nil {
		return err
	}

	env.printf("Removing new account (ID %d)... ", accountID)
	if err := acc.Delete(ctx, id, accountID); err != nil {
		return err
	}
	env.println("done.")
	return nil
}

func accountsList(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	list := env.Client.Accounts().List(env.merchantID(), defaultMaxPageSize)
	_, err := forEach(ctx, env, list, "No accounts were found.", func(r entities.Resource) error {
		env.printf("Account %d with name %q was found.\n", r.Uint("id"), r.String("name"))
		return nil
	})
	return err
}

func accountsInsert(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	account, err := env.Client.Accounts().Insert(ctx, env.merchantID(), NewSubAccount("account"+UniqueID()))
	if err != nil {
		return err
	}
	env.printf("Created sub-account ID %d for MCA %d.\n", account.Uint("id"), env.merchantID())
	return nil
}

func accountsInsertBatch(ctx context.Context, env *Env, _ []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	batch := &entities.BatchRequest{}
	for i := 0; i < batchSize; i++ {
		batch.Entries = append(batch.Entries, entities.BatchRequestEntry{
			BatchID:    int64(i),
			MerchantID: env.merchantID(),
			Method:     "insert",
			Account:    NewSubAccount("account" + UniqueID()),
		})
	}
	resp, err := env.Client.Accounts().Custombatch(ctx, batch)
	if err != nil {
		return err
	}
	if ok, err := env.checkBatchKind(resp, "content#accountsCustomBatchResponse"); !ok {
		return err
	}
	for _, entry := range resp.Entries {
		switch {
		case entry.Account != nil:
			env.printf("Account %d with name %q was created.\n", entry.Account.ID, entry.Account.Name)
		case entry.Errors != nil:
			if err := env.printBatchErrors(entry.BatchID, entry.Errors); err != nil {
				return err
			}
		}
	}
	return nil
}

func accountsUpdate(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	accountID, err := parseUint("account ID", args[0])
	if err != nil {
		return err
	}
	acc := env.Client.Accounts()
	account, err := acc.Get(ctx, env.merchantID(), accountID)
	if err != nil {
		return err
	}
	account["name"] = "updated-account" + UniqueID()
	updated, err := acc.Update(ctx, env.merchantID(), accountID, account)
	if err != nil {
		return err
	}
	env.printf("Account with id %d was updated with new name %q.\n", accountID, updated.String("name"))
	return nil
}

func accountsDelete(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	accountID, err := parseUint("account ID", args[0])
	if err != nil {
		return err
	}
	if err := env.Client.Accounts().Delete(ctx, env.merchantID(), accountID); err != nil {
		return err
	}
	env.printf("Account %d was deleted.\n", accountID)
	return nil
}

func accountsDeleteBatch(ctx context.Context, env *Env, args []string) error {
	if err := CheckMCA(env.Info, true, ""); err != nil {
		return err
	}
	batch := &entities.BatchRequest{}
	for i, raw := range args {
		id, err := parseUint("account ID", raw)
		if err != nil {
			return err
		}
		batch.Entries = append(batch.Entries, entities.BatchRequestEntry{
			BatchID:    int64(i),
			MerchantID: env.merchantID(),
			Method:     "delete",
			AccountID:  id,
		})
	}
	resp, err := env.Client.Accounts().Custombatch(ctx, batch)
	if err != nil {
		return err
	}
	if ok, err := env.checkBatchKind(resp, "content#accountsCustomBatchResponse"); !ok {
		return err
	}
	for _, entry := range resp.Entries {
		if entry.Errors != nil {
			if err := env.printBatchErrors(entry.BatchID, entry.Errors); err != nil {
				return err
			}
			continue
		}
		var accountID uint64
		if entry.BatchID >= 0 && int(entry.BatchID) < len(batch.Entries) {
			accountID = batch.Entries[entry.BatchID].AccountID
		}
		env.printf("Account %d deleted (batch entry %d).\n", accountID, entry.BatchID)
	}
	return nil
}

func accountsAddUser(ctx context.Context, env *Env, _ []string) error {
	email := env.Info.AccountSampleUser
	if email == "" {
		return errors.NewPrecondition("Must specify the user email to add in the samples configuration.")
	}
	acc := env.Client.Accounts()
	id := env.merchantID()
	account, err := acc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	account.Append("users", newUser(email))
	if _, err := acc.Update(ctx, id, id, account); err != nil {
		return err
	}
	env.printf("User %s was added to merchant ID %d.\n", email, id)
	return nil
}

func accountsRemoveUser(ctx context.Context, env *Env, _ []string) error {
	email := env.Info.AccountSampleUser
	if email == "" {
		return errors.NewPrecondition("Must specify the user email to remove in the samples configuration.")
	}
	acc := env.Client.Accounts()
	id := env.merchantID()
	account, err := acc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	users := account.List("users")
	if len(users) == 0 {
		return errors.NewPrecondition(fmt.Sprintf("No users in account %d.", id))
	}
	if !contains(users, func(u entities.Resource) bool { return u.String("emailAddress") == email }) {
		return errors.NewPrecondition(fmt.Sprintf("User %s was not found.", email))
	}
	account.Filter("users", func(u entities.Resource) bool {
		return u.String("emailAddress") != email
	})
	if _, err := acc.Update(ctx, id, id, account); err != nil {
		return err
	}
	env.printf("User %s was removed from merchant ID %d.\n", email, id)
	return nil
}

func accountsLinkAds(ctx context.Context, env *Env, _ []string) error {
	adsID := env.Info.AccountSampleAdWordsCID
	if adsID == 0 {
		return errors.NewPrecondition("Must specify the Google Ads CID to link in the samples configuration.")
	}
	acc := env.Client.Accounts()
	id := env.merchantID()
	account, err := acc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	account.Append("adsLinks", newAdsLink(adsID))
	if _, err := acc.Update(ctx, id, id, account); err != nil {
		return err
	}
	env.printf("Google Ads ID %d was added to merchant ID %d.\n", adsID, id)
	return nil
}

func accountsUnlinkAds(ctx context.Context, env *Env, _ []string) error {
	adsID := env.Info.AccountSampleAdWordsCID
	if adsID == 0 {
		return errors.NewPrecondition("Must specify the Google Ads CID to unlink in the samples configuration.")
	}
	acc := env.Client.Accounts()
	id := env.merchantID()
	account, err := acc.Get(ctx, id, id)
	if err != nil {
		return err
	}
	links := account.List("adsLinks")
	if len(links) == 0 {
		return errors.NewPrecondition(fmt.Sprintf("No Google Ads accounts linked to account %d.", id))
	}
	linked := func(l entities.Resource) bool { return l.Uint("adsId") == adsID }
	if !contains(links, linked) {
		return errors.NewPrecondition(fmt.Sprintf("Google Ads account %d was not linked.", adsID))
	}
	account.Filter("adsLinks", func(l entities.Resource) bool { return !linked(l) })
	if _, err := acc.Update(ctx, id, id, account); err != nil {
		return err
	}
	env.printf("Google Ads ID %d was removed from merchant ID %d.\n", adsID, id)
	return nil
}

func newUser(email string) map[string]interface{} {
	return map[string]interface{}{"emailAddress": email, "admin": false}
}

func newAdsLink(adsID uint64) map[string]interface{} {
	return map[string]interface{}{"adsId": fmt.Sprint(adsID), "status": "active"}
}

func contains(items []entities.Resource, match func(entities.Resource) bool) bool {
	for _, item := range items {
		if match(item) {
			return true
		}
	}
	return false
}

// printStep prints a titled resource followed by a blank line.
func (e *Env) printStep(title string, v interface{}) error {
	e.println(title)
	if err := e.printJSON(v); err != nil {
		return err
	}
	e.println()
	return nil
}
