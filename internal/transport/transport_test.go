package transport

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/acadctl/internal/protocol"
	"github.com/danmuck/acadctl/internal/testutil/testlog"
)

func testConfig() Config {
	return Config{
		DialTimeout:     2 * time.Second,
		ExchangeTimeout: 2 * time.Second,
	}
}

// startServer runs a one-connection echo-style portal stub. handler
// receives each request and returns the response bytes to send.
func startServer(t *testing.T, handler func(request string) string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, protocol.MaxFrameSize)
		for {
			n, err := conn.Read(buf)
			if err != nil || n == 0 {
				return
			}
			resp := handler(string(buf[:n]))
			if resp == "" {
				return
			}
			if _, err := conn.Write([]byte(resp)); err != nil {
				return
			}
		}
	}()
	return ln.Addr().String()
}

func TestDialAndExchangeRoundTrip(t *testing.T) {
	testlog.Start(t)
	addr := startServer(t, func(request string) string {
		if request == "LOGIN alice s3cret" {
			return "LOGIN_SUCCESS STUDENT 42"
		}
		return "ERROR Unexpected request"
	})

	c, err := Dial(addr, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, addr, c.Addr())

	resp, err := c.Exchange("LOGIN alice s3cret")
	require.NoError(t, err)
	require.Equal(t, "LOGIN_SUCCESS STUDENT 42", resp)
}

func TestDialRefusedConnection(t *testing.T) {
	testlog.Start(t)
	// Grab a free port, then close the listener so the dial is
	// refused deterministically.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Dial(addr, testConfig(), zerolog.Nop())
	require.ErrorIs(t, err, ErrConnect)
}

func TestExchangeBoundedRead(t *testing.T) {
	testlog.Start(t)
	oversized := strings.Repeat("x", 4*protocol.MaxFrameSize)
	addr := startServer(t, func(string) string { return oversized })

	c, err := Dial(addr, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Exchange("ADMIN 1 VIEW_USERS")
	require.NoError(t, err)
	require.LessOrEqual(t, len(resp), protocol.MaxFrameSize)
	require.True(t, strings.HasPrefix(oversized, resp))
}

func TestExchangePeerCloseReturnsSentinel(t *testing.T) {
	testlog.Start(t)
	addr := startServer(t, func(string) string { return "" })

	c, err := Dial(addr, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Exchange("STUDENT 42 ENROLL CS101")
	require.ErrorIs(t, err, ErrExchange)
	require.Equal(t, ErrorLine, resp, "failed exchanges still hand back a renderable line")
}

func TestExchangeAfterClose(t *testing.T) {
	testlog.Start(t)
	addr := startServer(t, func(string) string { return "OK" })

	c, err := Dial(addr, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Close())

	resp, err := c.Exchange("EXIT")
	require.ErrorIs(t, err, ErrClosed)
	require.Equal(t, ErrorLine, resp)
}

func TestCloseIsIdempotent(t *testing.T) {
	testlog.Start(t)
	addr := startServer(t, func(string) string { return "OK" })

	c, err := Dial(addr, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestExchangeRejectsEmptyRequest(t *testing.T) {
	testlog.Start(t)
	addr := startServer(t, func(string) string { return "OK" })

	c, err := Dial(addr, testConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close()

	resp, err := c.Exchange("")
	require.ErrorIs(t, err, ErrExchange)
	require.Equal(t, ErrorLine, resp)
}
