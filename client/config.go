package client

import (
	kitlog "github.com/go-kit/log"

	"github.com/maxpoletaev/libgroup/protocol"
)

const (
	// DefaultAddr is the well-known abstract unix socket of groupd.
	DefaultAddr = "@groupd_socket"

	// MaxNameLen is the longest program name sent in the handshake. Longer
	// names are truncated.
	MaxNameLen = 32
)

type Config struct {
	// Addr is the unix socket address of groupd. Addresses starting with
	// "@" live in the abstract namespace.
	Addr string

	// MaxLineLen bounds the size of a single protocol line in both
	// directions. Received lines above the limit are truncated.
	MaxLineLen int

	// MaxTokens bounds the number of tokens decoded from a single line.
	MaxTokens int

	// Strict makes Dispatch fail with ErrProtocolMalformed on lines with
	// missing arguments or unparsable numbers instead of defaulting them
	// to zero values.
	Strict bool

	// UserData is passed through to handlers untouched.
	UserData any

	Logger kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		Addr:       DefaultAddr,
		MaxLineLen: protocol.DefaultMaxLineLen,
		MaxTokens:  protocol.DefaultMaxTokens,
		Logger:     kitlog.NewNopLogger(),
	}
}
