package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"shopping-samples/internal/application"
	"shopping-samples/internal/config"
	apperrors "shopping-samples/internal/errors"
	"shopping-samples/internal/logger"
	"shopping-samples/internal/service/runner"
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

func run(name string, args []string) int {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		return 1
	}

	flagSet, flags := config.NewFlagSet(name, os.Stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [sample [args...]]...\n\n", name)
		flagSet.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		runner.PrintUsage(os.Stderr)
	}
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger.Init(flags.Verbose)
	defer logger.Sync()

	plan, err := runner.NewPlan(flagSet.Args())
	if apperrors.IsBadRequest(err) || apperrors.IsResourceNotFound(err) {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		runner.PrintUsage(os.Stderr)
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning samples: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := application.NewApplication(ctx, flags, plan, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		return 1
	}

	code := 0
	if err := a.SetUp(); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up application: %v\n", err)
		code = 1
	} else if err := a.Run(); err != nil {
		if !errors.Is(err, runner.ErrCredentialsExpired) {
			fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		}
		code = 1
	}

	if err := a.TearDown(); err != nil {
		fmt.Printf("Error tearing down application: %v\n", err)
	}
	return code
}
