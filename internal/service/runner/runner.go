package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"shopping-samples/internal/errors"
	"shopping-samples/internal/logger"
	"shopping-samples/internal/merchant"
	"shopping-samples/internal/samples"
)

const separator = "-------------------------"

// ErrCredentialsExpired stops a run whose stored credentials can no longer be
// refreshed.
var ErrCredentialsExpired = stderrors.New("credentials revoked or expired")

type RunnerDefault struct {
	env *samples.Env
	out io.Writer
}

func NewRunnerDefault(env *samples.Env) *RunnerDefault {
	return &RunnerDefault{env: env, out: env.Out}
}

// Run executes the plan in order. A sample that cannot run on the configured
// account is reported and skipped; any other failure stops the run.
func (r *RunnerDefault) Run(ctx context.Context, plan []Invocation) error {
	for _, inv := range plan {
		name := inv.Sample.Name
		fmt.Fprintf(r.out, "Running %s...\n", name)

		err := inv.Sample.Run(ctx, r.env, inv.Args)
		switch {
		case err == nil:
		case errors.IsPrecondition(err):
			fmt.Fprintln(r.out, err.Error())
		case merchant.IsCredentialsExpired(err):
			fmt.Fprintln(r.out, "The credentials have been revoked or expired, please re-run the application to re-authorize.")
			return ErrCredentialsExpired
		case merchant.IsAPIError(err):
			logger.Error("API call failed", "sample", name, "error", err)
			return fmt.Errorf("running %s: %w", name, err)
		default:
			return fmt.Errorf("running %s: %w", name, err)
		}

		fmt.Fprintf(r.out, "Finished running %s.\n", name)
		fmt.Fprintln(r.out, separator)
	}
	return nil
}
