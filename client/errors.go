package client

import "github.com/maxpoletaev/libgroup/internal/baseerror"

var (
	ErrInvalidHandle     = baseerror.New("invalid or closed session")
	ErrInvalidName       = baseerror.New("invalid name")
	ErrConnection        = baseerror.New("failed to connect to groupd")
	ErrWrite             = baseerror.New("failed to write to groupd")
	ErrRead              = baseerror.New("failed to read from groupd")
	ErrConnectionClosed  = baseerror.New("connection closed by groupd")
	ErrProtocolMalformed = baseerror.New("malformed line from groupd")
)
