package runner

import "context"

type RunnerService interface {
	Run(ctx context.Context, plan []Invocation) error
}
