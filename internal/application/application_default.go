package application

import (
	"context"
	"io"

	"shopping-samples/internal/config"
	"shopping-samples/internal/infrastructure/dependencies"
	"shopping-samples/internal/service/runner"
)

type applicationDefault struct {
	ctx   context.Context
	flags *config.Flags
	plan  []runner.Invocation
	out   io.Writer
	deps  *dependencies.Container
}

func NewApplication(ctx context.Context, flags *config.Flags, plan []runner.Invocation, out io.Writer) (Application, error) {
	return &applicationDefault{
		ctx:   ctx,
		flags: flags,
		plan:  plan,
		out:   out,
	}, nil
}

func (a *applicationDefault) SetUp() (err error) {
	a.deps, err = dependencies.NewDependencies(a.ctx, a.flags, a.out)
	return err
}

func (a *applicationDefault) Run() (err error) {
	return a.deps.Runner.Run(a.ctx, a.plan)
}

func (a *applicationDefault) TearDown() (err error) {
	if a.deps == nil {
		return nil
	}
	return a.deps.Close()
}
