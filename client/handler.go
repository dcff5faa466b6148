package client

//go:generate mockgen -source=handler.go -destination=handler_mock_test.go -package=client

import (
	"github.com/maxpoletaev/libgroup/protocol"
)

// Handler receives events decoded by Session.Dispatch. Exactly one method is
// called per dispatched event, on the goroutine that called Dispatch, so it
// is safe to issue commands on the session from within a handler. An error
// returned by a handler is returned from Dispatch as is.
type Handler interface {
	Stop(s *Session, event *protocol.Stop) error
	Start(s *Session, event *protocol.Start) error
	Finish(s *Session, event *protocol.Finish) error
	Terminate(s *Session, event *protocol.Terminate) error
	SetID(s *Session, event *protocol.SetID) error
}

var (
	_ Handler = NopHandler{}
	_ Handler = &HandlerFuncs{}
)

// NopHandler ignores every event.
type NopHandler struct{}

func (NopHandler) Stop(*Session, *protocol.Stop) error           { return nil }
func (NopHandler) Start(*Session, *protocol.Start) error         { return nil }
func (NopHandler) Finish(*Session, *protocol.Finish) error       { return nil }
func (NopHandler) Terminate(*Session, *protocol.Terminate) error { return nil }
func (NopHandler) SetID(*Session, *protocol.SetID) error         { return nil }

// HandlerFuncs adapts a set of plain functions to the Handler interface.
// Nil functions ignore their events.
type HandlerFuncs struct {
	OnStop      func(s *Session, event *protocol.Stop) error
	OnStart     func(s *Session, event *protocol.Start) error
	OnFinish    func(s *Session, event *protocol.Finish) error
	OnTerminate func(s *Session, event *protocol.Terminate) error
	OnSetID     func(s *Session, event *protocol.SetID) error
}

func (h *HandlerFuncs) Stop(s *Session, event *protocol.Stop) error {
	if h.OnStop == nil {
		return nil
	}

	return h.OnStop(s, event)
}

func (h *HandlerFuncs) Start(s *Session, event *protocol.Start) error {
	if h.OnStart == nil {
		return nil
	}

	return h.OnStart(s, event)
}

func (h *HandlerFuncs) Finish(s *Session, event *protocol.Finish) error {
	if h.OnFinish == nil {
		return nil
	}

	return h.OnFinish(s, event)
}

func (h *HandlerFuncs) Terminate(s *Session, event *protocol.Terminate) error {
	if h.OnTerminate == nil {
		return nil
	}

	return h.OnTerminate(s, event)
}

func (h *HandlerFuncs) SetID(s *Session, event *protocol.SetID) error {
	if h.OnSetID == nil {
		return nil
	}

	return h.OnSetID(s, event)
}
