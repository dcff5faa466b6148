package protocol

import "errors"

var (
	ErrMalformed      = errors.New("malformed protocol line")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidName    = errors.New("invalid name")
	ErrLineTooLong    = errors.New("line too long")
)
