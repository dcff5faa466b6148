package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/libgroup/api"
	"github.com/maxpoletaev/libgroup/client"
	"github.com/maxpoletaev/libgroup/eventloop"
)

func main() {
	parser := flags.NewParser(&opts, flags.Default)

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(2)
	}

	if opts.Config != "" {
		conf, err := loadConfig(opts.Config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		applyConfig(parser, conf)
	}

	logger, closeLog := setupLogger()

	appctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := run(appctx, logger)

	cancel()

	if err != nil {
		level.Error(logger).Log("msg", "groupctl failed", "err", err)
	}

	if closeErr := closeLog(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
	}

	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, logger kitlog.Logger) error {
	reg := prometheus.NewRegistry()
	tr := setupTracker(logger, reg)

	session, err := setupSession(ctx, tr, logger)
	if err != nil {
		return err
	}

	defer func() {
		if err := session.Close(); err != nil && !errors.Is(err, client.ErrInvalidHandle) {
			level.Warn(logger).Log("msg", "failed to close session", "err", err)
		}
	}()

	if err := joinGroups(session, tr, opts.Groups, logger); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		conf := eventloop.DefaultConfig()
		conf.Logger = logger

		if err := eventloop.Run(gctx, session, conf); err != nil {
			return fmt.Errorf("event loop stopped: %w", err)
		}

		return nil
	})

	if opts.HTTP.BindAddr != "" {
		g.Go(func() error {
			router := api.CreateRouter(tr, reg, logger)
			return api.StartServer(gctx, router, logger, opts.HTTP.BindAddr)
		})
	}

	loopErr := g.Wait()

	// A session that lost its connection rejects further commands, there is
	// nobody to say goodbye to in that case.
	if errors.Is(loopErr, client.ErrConnectionClosed) || errors.Is(loopErr, client.ErrRead) {
		return loopErr
	}

	level.Info(logger).Log("msg", "leaving groups")

	if err := leaveGroups(session, tr, logger); err != nil {
		level.Error(logger).Log("msg", "failed to leave some groups", "err", err)

		if loopErr == nil {
			return err
		}
	}

	return loopErr
}
