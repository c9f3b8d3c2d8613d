package samples

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"shopping-samples/internal/config"
	"shopping-samples/internal/entities"
	"shopping-samples/internal/errors"
	"shopping-samples/internal/merchant"
)

const defaultMaxPageSize = 50

var uniqueCounter atomic.Uint64

// UniqueID returns an ID that differs between calls and between runs: the
// current unix time followed by a process-wide counter.
func UniqueID() string {
	n := uniqueCounter.Add(1)
	return fmt.Sprintf("%d%d", time.Now().Unix(), n)
}

// CheckMCA fails with a precondition error unless the account's MCA status
// is want. An empty msg selects the default message.
func CheckMCA(info *config.MerchantInfo, want bool, msg string) error {
	if info.IsMCA == want {
		return nil
	}
	if msg == "" {
		if want {
			msg = "For this sample, you must use a multi-client account."
		} else {
			msg = "For this sample, you must not use a multi-client account."
		}
	}
	return errors.NewPrecondition(msg)
}

var errStopPaging = stderrors.New("stop paging")

// forEach calls fn for every resource returned by list. When the first page
// is empty, empty is printed instead. It returns the number of resources seen.
func forEach(ctx context.Context, env *Env, list merchant.ListCall, empty string, fn func(entities.Resource) error) (int, error) {
	count := 0
	err := merchant.Pages(ctx, list, func(page *entities.Page) error {
		if len(page.Resources) == 0 {
			if count == 0 {
				env.println(empty)
			}
			return errStopPaging
		}
		for _, r := range page.Resources {
			if err := fn(r); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if stderrors.Is(err, errStopPaging) {
		err = nil
	}
	return count, err
}

func parseUint(name, raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.NewPrecondition(fmt.Sprintf("Invalid %s %q: must be a positive integer.", name, raw))
	}
	return id, nil
}

// accountArg returns the optional account ID argument, defaulting to the
// configured merchant.
func accountArg(env *Env, args []string) (uint64, error) {
	if len(args) == 0 {
		return env.merchantID(), nil
	}
	return parseUint("account ID", args[0])
}

// checkOwnAccount rejects foreign account IDs on non-MCA accounts.
func checkOwnAccount(env *Env, accountID uint64) error {
	if accountID == env.merchantID() {
		return nil
	}
	return CheckMCA(env.Info, true, "Non-multi-client accounts can only get their own information.")
}

func (e *Env) printBatchErrors(batchID int64, errs *entities.Errors) error {
	e.printf("Errors for batch entry %d:\n", batchID)
	return e.printJSON(errs)
}

// checkBatchKind prints the raw response when it is not of the expected kind.
func (e *Env) checkBatchKind(resp *entities.BatchResponse, kind string) (bool, error) {
	if resp.Kind == kind {
		return true, nil
	}
	e.printf("There was an error. Response: ")
	return false, e.printJSON(resp)
}

// printAll prints every listed resource as JSON between a title and a count
// line such as "%d accounts printed.".
func printAll(ctx context.Context, env *Env, title string, list merchant.ListCall, empty, summary string) error {
	env.println(title)
	count, err := forEach(ctx, env, list, empty, func(r entities.Resource) error {
		return env.printJSON(r)
	})
	if err != nil {
		return err
	}
	env.printf(summary+"\n", count)
	return nil
}
