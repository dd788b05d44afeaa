// Package transport owns the single TCP connection to the portal
// server and its one-request-in-flight exchange primitive.
package transport

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/danmuck/acadctl/internal/protocol"
)

var (
	ErrConnect  = errors.New("transport: connect failed")
	ErrExchange = errors.New("transport: exchange failed")
	ErrClosed   = errors.New("transport: connection closed")
)

// ErrorLine is the sentinel response handed to callers when an exchange
// fails mid-flight, so the presentation layer always has a uniform line
// to render.
const ErrorLine = "ERROR"

// Config carries dial and per-exchange deadlines. A zero
// ExchangeTimeout means exchanges block until the peer responds or the
// connection dies.
type Config struct {
	DialTimeout     time.Duration
	ExchangeTimeout time.Duration
}

// DefaultConfig mirrors the deadlines used against a local portal
// server.
func DefaultConfig() Config {
	return Config{
		DialTimeout:     3 * time.Second,
		ExchangeTimeout: 5 * time.Second,
	}
}

// Client is one long-lived connection to the portal endpoint. It is
// strictly synchronous: one request line out, one bounded read back.
// Not safe for concurrent use.
type Client struct {
	addr string
	cfg  Config
	conn net.Conn
	log  zerolog.Logger
}

// Dial opens the TCP connection to addr. There is no retry policy: the
// client is built for a single always-on server and callers are
// expected to exit on failure.
func Dial(addr string, cfg Config, log zerolog.Logger) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, cfg.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnect, addr, err)
	}
	log.Info().Str("addr", addr).Msg("connected to portal server")
	return &Client{addr: addr, cfg: cfg, conn: conn, log: log}, nil
}

// Addr returns the server endpoint this client was dialed against.
func (c *Client) Addr() string {
	return c.addr
}

// Exchange writes one request line and performs a single bounded read
// for the response. The response value is always renderable: on a
// write or read failure it is the sentinel ErrorLine, alongside a
// non-nil ErrExchange-wrapped error.
//
// The read is a single recv capped at protocol.MaxFrameSize; there is
// no terminator scanning or partial-message reassembly. A zero-byte
// read means the peer closed the connection.
func (c *Client) Exchange(request string) (string, error) {
	if c.conn == nil {
		return ErrorLine, ErrClosed
	}
	if request == "" {
		return ErrorLine, fmt.Errorf("%w: empty request", ErrExchange)
	}

	if c.cfg.ExchangeTimeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(c.cfg.ExchangeTimeout)); err != nil {
			return ErrorLine, fmt.Errorf("%w: set deadline: %v", ErrExchange, err)
		}
	}

	if _, err := c.conn.Write([]byte(request)); err != nil {
		c.log.Error().Err(err).Msg("request write failed")
		return ErrorLine, fmt.Errorf("%w: write: %v", ErrExchange, err)
	}

	buf := make([]byte, protocol.MaxFrameSize)
	n, err := c.conn.Read(buf)
	if err != nil {
		c.log.Error().Err(err).Msg("response read failed")
		return ErrorLine, fmt.Errorf("%w: read: %v", ErrExchange, err)
	}
	if n == 0 {
		return ErrorLine, fmt.Errorf("%w: peer closed connection", ErrExchange)
	}
	return string(buf[:n]), nil
}

// Close releases the connection. Idempotent: closing a closed client
// is a no-op.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	if err != nil {
		return fmt.Errorf("transport: close: %w", err)
	}
	c.log.Debug().Str("addr", c.addr).Msg("connection closed")
	return nil
}
