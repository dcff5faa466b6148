// Package grouptest provides an in-process stand-in for groupd that speaks
// the client protocol over an abstract unix socket.
package grouptest

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maxpoletaev/libgroup/protocol"
)

const acceptTimeout = 5 * time.Second

var serverSeq int64

// Server accepts client connections on a unique abstract address.
type Server struct {
	listener *net.UnixListener
	conns    chan *Conn
	addr     string
}

// Start creates a server that is shut down when the test completes.
func Start(t testing.TB) *Server {
	t.Helper()

	addr := UniqueAddr()

	listener, err := net.ListenUnix("unix", &net.UnixAddr{Name: addr, Net: "unix"})
	require.NoError(t, err, "failed to listen on %s", addr)

	s := &Server{
		listener: listener,
		conns:    make(chan *Conn, 16),
		addr:     addr,
	}

	go s.acceptLoop()

	t.Cleanup(func() {
		listener.Close()
	})

	return s
}

// UniqueAddr returns an abstract socket address nobody listens on.
func UniqueAddr() string {
	return fmt.Sprintf("@libgroup-test-%d-%d", os.Getpid(), atomic.AddInt64(&serverSeq, 1))
}

func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) acceptLoop() {
	defer close(s.conns)

	for {
		conn, err := s.listener.AcceptUnix()
		if err != nil {
			return
		}

		s.conns <- &Conn{
			conn:   conn,
			reader: protocol.NewLineReader(conn, protocol.DefaultMaxLineLen),
		}
	}
}

// Accept waits for the next client connection.
func (s *Server) Accept(t testing.TB) *Conn {
	t.Helper()

	select {
	case conn, ok := <-s.conns:
		require.True(t, ok, "server closed")
		t.Cleanup(func() { conn.Close() })

		return conn
	case <-time.After(acceptTimeout):
		require.FailNow(t, "no client connected")
		return nil
	}
}

// Conn is the server side of one client connection.
type Conn struct {
	conn   *net.UnixConn
	reader *protocol.LineReader
}

// ReadLine returns the next raw line sent by the client.
func (c *Conn) ReadLine(t testing.TB) string {
	t.Helper()

	require.NoError(t, c.conn.SetReadDeadline(time.Now().Add(acceptTimeout)))

	line, err := c.reader.ReadLine()
	require.NoError(t, err)

	return line
}

// ReadCommand reads and decodes the next command sent by the client.
func (c *Conn) ReadCommand(t testing.TB) protocol.Command {
	t.Helper()

	cmd, err := protocol.DecodeCommand(c.ReadLine(t))
	require.NoError(t, err)

	return cmd
}

// SendEvent writes the event followed by a line terminator.
func (c *Conn) SendEvent(t testing.TB, event protocol.Event) {
	t.Helper()
	c.SendLine(t, protocol.EncodeEvent(event))
}

// SendLine writes an arbitrary line, which does not have to be valid.
func (c *Conn) SendLine(t testing.TB, line string) {
	t.Helper()

	_, err := c.conn.Write([]byte(line + "\n"))
	require.NoError(t, err)
}

// SendRaw writes the bytes as is.
func (c *Conn) SendRaw(t testing.TB, data []byte) {
	t.Helper()

	_, err := c.conn.Write(data)
	require.NoError(t, err)
}

// ExpectClosed asserts that the client closed the connection without
// sending anything else.
func (c *Conn) ExpectClosed(t testing.TB) {
	t.Helper()

	require.NoError(t, c.conn.SetReadDeadline(time.Now().Add(acceptTimeout)))

	line, err := c.reader.ReadLine()
	require.ErrorIs(t, err, io.EOF, "unexpected line %q", line)
}

func (c *Conn) Close() error {
	return c.conn.Close()
}
