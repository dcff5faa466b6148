package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/libgroup/protocol"
)

type state int

const (
	stateClosed state = iota
	stateConnected
	stateFailed
)

// Session is a connection to groupd identified by a program name and a level.
// Sessions are not safe for concurrent use.
type Session struct {
	conn     *net.UnixConn
	reader   *protocol.LineReader
	decoder  protocol.Decoder
	handler  Handler
	logger   kitlog.Logger
	userData any
	maxLine  int
	name     string
	level    int
	state    state
}

// Open connects to groupd and performs the handshake. The context only bounds
// the dial, the session itself has no deadlines. The name is truncated to
// MaxNameLen bytes.
func Open(ctx context.Context, name string, lvl int, handler Handler, conf Config) (*Session, error) {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}

	if err := protocol.ValidateName(name, MaxNameLen); err != nil {
		return nil, ErrInvalidName.Wrap(err)
	}

	if handler == nil {
		handler = NopHandler{}
	}

	if conf.Logger == nil {
		conf.Logger = kitlog.NewNopLogger()
	}

	if conf.Addr == "" {
		conf.Addr = DefaultAddr
	}

	if conf.MaxLineLen <= 0 {
		conf.MaxLineLen = protocol.DefaultMaxLineLen
	}

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "unix", conf.Addr)
	if err != nil {
		return nil, ErrConnection.Wrap(err)
	}

	s := &Session{
		conn:     conn.(*net.UnixConn),
		reader:   protocol.NewLineReader(conn, conf.MaxLineLen),
		decoder:  protocol.Decoder{MaxTokens: conf.MaxTokens, Strict: conf.Strict},
		handler:  handler,
		logger:   conf.Logger,
		userData: conf.UserData,
		maxLine:  conf.MaxLineLen,
		name:     name,
		level:    lvl,
		state:    stateConnected,
	}

	if _, err := s.send(&protocol.Setup{Name: name, Level: lvl}); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			level.Warn(s.logger).Log("msg", "failed to close connection", "err", closeErr)
		}

		return nil, ErrConnection.Wrap(err)
	}

	level.Debug(s.logger).Log("msg", "connected to groupd", "addr", conf.Addr, "name", name, "level", lvl)

	return s, nil
}

func (s *Session) valid() bool {
	return s != nil && s.state == stateConnected
}

// Close releases the connection. Sessions that failed during Dispatch must
// still be closed. Closing a session twice fails with ErrInvalidHandle.
func (s *Session) Close() error {
	if s == nil || s.state == stateClosed {
		return ErrInvalidHandle
	}

	s.state = stateClosed

	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

// Fd returns the socket descriptor so that the caller can wait for it to
// become readable in its own event loop. The descriptor stays owned by the
// session and must not be closed or read from directly.
func (s *Session) Fd() (int, error) {
	if !s.valid() {
		return -1, ErrInvalidHandle
	}

	raw, err := s.conn.SyscallConn()
	if err != nil {
		return -1, fmt.Errorf("failed to access socket: %w", err)
	}

	fd := -1

	if err := raw.Control(func(sysfd uintptr) {
		fd = int(sysfd)
	}); err != nil {
		return -1, fmt.Errorf("failed to access socket: %w", err)
	}

	return fd, nil
}

// Pending reports whether a complete event has already been received and
// buffered. The socket will not become readable for it, so the caller should
// keep calling Dispatch while Pending is true.
func (s *Session) Pending() bool {
	if !s.valid() {
		return false
	}

	return s.reader.Pending()
}

func (s *Session) Name() string {
	if s == nil {
		return ""
	}

	return s.name
}

func (s *Session) Level() int {
	if s == nil {
		return 0
	}

	return s.level
}

// UserData returns the value set in Config.UserData.
func (s *Session) UserData() any {
	if s == nil {
		return nil
	}

	return s.userData
}

// Join asks groupd to add the session to the group. The result arrives later
// as a sequence of events. Returns the number of bytes written.
func (s *Session) Join(group string) (int, error) {
	return s.command(group, &protocol.Join{Group: group})
}

// Leave asks groupd to remove the session from the group.
func (s *Session) Leave(group string) (int, error) {
	return s.command(group, &protocol.Leave{Group: group})
}

// Done acknowledges that the start event eventNr has been processed.
func (s *Session) Done(group string, eventNr int) (int, error) {
	return s.command(group, &protocol.Done{Group: group, EventNr: eventNr})
}

func (s *Session) command(group string, cmd protocol.Command) (int, error) {
	if !s.valid() {
		return 0, ErrInvalidHandle
	}

	if err := protocol.ValidateName(group, protocol.MaxGroupNameLen); err != nil {
		return 0, ErrInvalidName.Wrap(err)
	}

	n, err := s.send(cmd)
	if err != nil {
		return n, ErrWrite.Wrap(err)
	}

	return n, nil
}

func (s *Session) send(cmd protocol.Command) (int, error) {
	line := protocol.EncodeCommand(cmd)

	n, err := protocol.WriteLine(s.conn, line, s.maxLine)
	if err != nil {
		return n, err
	}

	level.Debug(s.logger).Log("msg", "sent command", "line", line)

	return n, nil
}

// Dispatch reads exactly one line from groupd, blocking until it arrives, and
// calls the matching handler method. Lines with unknown actions are dropped.
// A read failure leaves the session unusable, and it has to be closed.
func (s *Session) Dispatch() error {
	if !s.valid() {
		return ErrInvalidHandle
	}

	line, err := s.reader.ReadLine()
	if err != nil {
		s.state = stateFailed

		if errors.Is(err, io.EOF) {
			return ErrConnectionClosed
		}

		return ErrRead.Wrap(err)
	}

	event, err := s.decoder.Decode(line)
	if err != nil {
		level.Warn(s.logger).Log("msg", "malformed line", "line", line, "err", err)
		return ErrProtocolMalformed.Wrap(err)
	}

	return s.deliver(event)
}

func (s *Session) deliver(e protocol.Event) error {
	switch event := e.(type) {
	case *protocol.Stop:
		return s.handler.Stop(s, event)
	case *protocol.Start:
		return s.handler.Start(s, event)
	case *protocol.Finish:
		return s.handler.Finish(s, event)
	case *protocol.Terminate:
		return s.handler.Terminate(s, event)
	case *protocol.SetID:
		return s.handler.SetID(s, event)
	default:
		level.Debug(s.logger).Log("msg", "ignoring unknown event", "action", e.Action())
		return nil
	}
}
