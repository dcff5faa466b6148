// Package eventloop drives a group session from a poll(2) loop: it waits for
// the session socket to become readable and dispatches one event at a time.
package eventloop

import (
	"context"
	"errors"
	"fmt"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sys/unix"
)

// Source is the subset of client.Session used by the loop.
type Source interface {
	Fd() (int, error)
	Pending() bool
	Dispatch() error
}

type Config struct {
	// PollInterval is the longest time the loop blocks in poll without
	// checking the context.
	PollInterval time.Duration

	Logger kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		PollInterval: 500 * time.Millisecond,
		Logger:       kitlog.NewNopLogger(),
	}
}

// Run dispatches events until the context is cancelled, in which case it
// returns nil, or until Dispatch fails, in which case the error is returned.
func Run(ctx context.Context, src Source, conf Config) error {
	if conf.Logger == nil {
		conf.Logger = kitlog.NewNopLogger()
	}

	if conf.PollInterval <= 0 {
		conf.PollInterval = DefaultConfig().PollInterval
	}

	fd, err := src.Fd()
	if err != nil {
		return fmt.Errorf("failed to get session descriptor: %w", err)
	}

	timeout := int(conf.PollInterval / time.Millisecond)
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	for {
		if ctx.Err() != nil {
			return nil
		}

		fds[0].Revents = 0

		n, err := unix.Poll(fds, timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}

			return fmt.Errorf("failed to poll session descriptor: %w", err)
		}

		if n == 0 {
			continue
		}

		if fds[0].Revents&unix.POLLNVAL != 0 {
			return fmt.Errorf("session descriptor %d is not open", fd)
		}

		// Hangups and errors are handled by Dispatch, which will fail on
		// read and report the actual cause.
		if fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) == 0 {
			level.Warn(conf.Logger).Log("msg", "unexpected poll events", "revents", fds[0].Revents)
			continue
		}

		if err := src.Dispatch(); err != nil {
			return err
		}

		for src.Pending() {
			if err := src.Dispatch(); err != nil {
				return err
			}
		}
	}
}
