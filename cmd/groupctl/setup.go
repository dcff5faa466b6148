package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/natefinch/lumberjack"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maxpoletaev/libgroup/client"
	"github.com/maxpoletaev/libgroup/internal/multierror"
	"github.com/maxpoletaev/libgroup/tracker"
)

const dialTimeout = 10 * time.Second

type shutdownFunc func() error

var noopShutdown = func() error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	var (
		out      io.Writer = os.Stderr
		shutdown           = noopShutdown
	)

	if opts.LogFile != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
		}

		out = rotated
		shutdown = rotated.Close
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(out))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, shutdown
}

func setupTracker(logger kitlog.Logger, reg prometheus.Registerer) *tracker.Tracker {
	conf := tracker.DefaultConfig()
	conf.AutoAck = opts.AutoAck
	conf.Metrics = tracker.NewMetrics(reg)
	conf.Logger = logger

	return tracker.New(conf)
}

func setupSession(ctx context.Context, handler client.Handler, logger kitlog.Logger) (*client.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	conf := client.DefaultConfig()
	conf.Addr = opts.Addr
	conf.Strict = opts.Strict
	conf.Logger = logger

	session, err := client.Open(ctx, opts.Name, opts.Level, handler, conf)
	if err != nil {
		return nil, err
	}

	level.Info(logger).Log("msg", "connected to groupd", "addr", opts.Addr, "name", session.Name(), "level", opts.Level)

	return session, nil
}

func joinGroups(session *client.Session, tr *tracker.Tracker, groups []string, logger kitlog.Logger) error {
	for _, name := range groups {
		if _, err := session.Join(name); err != nil {
			return fmt.Errorf("failed to join group %s: %w", name, err)
		}

		tr.Joining(name)
		level.Info(logger).Log("msg", "join requested", "group", name)
	}

	return nil
}

func leaveGroups(session *client.Session, tr *tracker.Tracker, logger kitlog.Logger) error {
	errs := multierror.New[string]()

	for _, g := range tr.Groups() {
		if g.Status == tracker.StatusTerminated {
			continue
		}

		if _, err := session.Leave(g.Name); err != nil {
			errs.Add(g.Name, err)
			continue
		}

		tr.Forget(g.Name)
		level.Info(logger).Log("msg", "left group", "group", g.Name)
	}

	return errs.Combined()
}
