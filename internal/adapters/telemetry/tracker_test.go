package telemetry

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/ports"
)

func TestTrackerClient_StreamsRecords(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte("a;b;c\r\nd;e"))
		time.Sleep(20 * time.Millisecond)
		conn.Write([]byte(";f\r\n\r\n"))
	}()

	records := make(chan ports.TrackerRecord, 10)
	err = NewTrackerClient(ln.Addr().String()).Stream(context.Background(), records)
	require.NoError(t, err)
	close(records)

	var got []ports.TrackerRecord
	for r := range records {
		got = append(got, r)
	}
	assert.Equal(t, []ports.TrackerRecord{{"a", "b", "c"}, {"d", "e", "f"}}, got)
}

func TestTrackerClient_Unavailable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	err = NewTrackerClient(addr).Stream(context.Background(), make(chan ports.TrackerRecord))
	assert.ErrorIs(t, err, domain.ErrTelemetryUnavailable)
}

func TestTrackerClient_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewTrackerClient(ln.Addr().String()).Stream(ctx, make(chan ports.TrackerRecord))
	}()

	conn := <-accepted
	defer conn.Close()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after cancel")
	}
}
