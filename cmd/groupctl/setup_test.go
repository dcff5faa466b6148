package main

import (
	"context"
	"testing"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/maxpoletaev/libgroup/client"
	"github.com/maxpoletaev/libgroup/internal/grouptest"
	"github.com/maxpoletaev/libgroup/protocol"
	"github.com/maxpoletaev/libgroup/tracker"
)

func TestJoinAndLeaveGroups(t *testing.T) {
	server := grouptest.Start(t)
	logger := kitlog.NewNopLogger()
	tr := tracker.New(tracker.DefaultConfig())

	conf := client.DefaultConfig()
	conf.Addr = server.Addr()

	session, err := client.Open(context.Background(), "groupctl", 1, tr, conf)
	require.NoError(t, err)

	defer session.Close()

	conn := server.Accept(t)
	require.Equal(t, &protocol.Setup{Name: "groupctl", Level: 1}, conn.ReadCommand(t))

	require.NoError(t, joinGroups(session, tr, []string{"g1", "g2"}, logger))
	require.Equal(t, &protocol.Join{Group: "g1"}, conn.ReadCommand(t))
	require.Equal(t, &protocol.Join{Group: "g2"}, conn.ReadCommand(t))
	require.Len(t, tr.Groups(), 2)

	// Terminated groups are already gone on the groupd side.
	require.NoError(t, tr.Terminate(session, &protocol.Terminate{Group: "g2"}))

	require.NoError(t, leaveGroups(session, tr, logger))
	require.Equal(t, &protocol.Leave{Group: "g1"}, conn.ReadCommand(t))

	groups := tr.Groups()
	require.Len(t, groups, 1)
	require.Equal(t, "g2", groups[0].Name)
}

func TestJoinGroups_InvalidName(t *testing.T) {
	server := grouptest.Start(t)
	tr := tracker.New(tracker.DefaultConfig())

	conf := client.DefaultConfig()
	conf.Addr = server.Addr()

	session, err := client.Open(context.Background(), "groupctl", 0, tr, conf)
	require.NoError(t, err)

	defer session.Close()

	err = joinGroups(session, tr, []string{"bad name"}, kitlog.NewNopLogger())
	require.ErrorIs(t, err, client.ErrInvalidName)
	require.Empty(t, tr.Groups())
}
