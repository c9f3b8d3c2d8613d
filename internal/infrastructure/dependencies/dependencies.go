package dependencies

import (
	"context"
	"fmt"
	"io"
	"os"

	"shopping-samples/internal/auth"
	"shopping-samples/internal/config"
	"shopping-samples/internal/db"
	"shopping-samples/internal/merchant"
	performanceRepository "shopping-samples/internal/repositories/performance"
	"shopping-samples/internal/samples"
	"shopping-samples/internal/service/bootstrap"
	"shopping-samples/internal/service/runner"
)

type Container struct {
	Runner  runner.RunnerService
	Info    *config.MerchantInfo
	Client  *merchant.Client
	closers []io.Closer
}

// NewDependencies authenticates, completes the sample configuration from the
// API and wires the runner. Everything opened here is released by Close.
func NewDependencies(ctx context.Context, flags *config.Flags, out io.Writer) (_ *Container, err error) {
	c := &Container{}
	defer func() {
		if err != nil {
			c.Close()
		}
	}()

	cfg := config.NewConfig()

	info, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	c.Info = info

	resolver := auth.NewResolver()
	resolver.Out = out
	hc, err := resolver.Client(ctx, info)
	if err != nil {
		return nil, err
	}

	if flags.LogFile != "" {
		f, err := os.OpenFile(flags.LogFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		c.closers = append(c.closers, f)
		merchant.LogClient(hc, f)
	}

	client := merchant.NewClient(hc)
	if cfg.Endpoint != "" {
		client, err = client.WithEndpoint(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", config.EndpointEnvVar, err)
		}
		fmt.Fprintln(out, "Using non-standard API endpoint URL: "+client.BasePath())
	}
	c.Client = client

	bootstrapService := bootstrap.NewBootstrapDefault(client.Accounts(), out)
	if err := bootstrapService.Retrieve(ctx, info); err != nil {
		return nil, err
	}

	env := &samples.Env{
		Client: client,
		Info:   info,
		Out:    out,
	}
	if cfg.ReportsEnabled() {
		conn, err := db.ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, conn)
		if err := db.Migrate(conn, cfg.DBDriver); err != nil {
			return nil, err
		}
		env.Reports = performanceRepository.NewPerformanceRepository(conn, cfg.DBDriver)
	}

	c.Runner = runner.NewRunnerDefault(env)
	return c, nil
}

// Close releases the log file and the report database, if any.
func (c *Container) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}
