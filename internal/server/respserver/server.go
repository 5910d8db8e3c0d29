package respserver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yndnr/lockmap-go/internal/core/service"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
)

// Config holds the RESP server configuration.
type Config struct {
	// Addr is the TCP listen address.
	Addr string
	// ReadTimeout is the timeout for reading a command (default: 30s).
	ReadTimeout time.Duration
	// WriteTimeout is the timeout for writing a response (default: 30s).
	WriteTimeout time.Duration
	// IdleTimeout is the timeout for idle connections (default: 5m).
	IdleTimeout time.Duration
	// RateLimit is the maximum number of commands per second per IP.
	// Set to 0 to disable rate limiting.
	RateLimit int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:         "127.0.0.1:6399",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  5 * time.Minute,
		RateLimit:    1000,
	}
}

// Server represents the RESP protocol server.
type Server struct {
	cfg     *Config
	handler *CommandHandler
	logger  *slog.Logger
	ln      net.Listener
	running atomic.Bool
	wg      sync.WaitGroup
}

// Conn represents a single client connection.
type Conn struct {
	netConn net.Conn
	br      *bufio.Reader
	bw      *bufio.Writer
	closed  atomic.Bool
}

func newConn(c net.Conn) *Conn {
	return &Conn{
		netConn: c,
		br:      bufio.NewReader(c),
		bw:      bufio.NewWriter(c),
	}
}

func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.netConn.Close()
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.netConn.RemoteAddr()
}

// remoteIP returns the client IP without the port, for rate limiting.
func (c *Conn) remoteIP() string {
	host, _, err := net.SplitHostPort(c.netConn.RemoteAddr().String())
	if err != nil {
		return c.netConn.RemoteAddr().String()
	}
	return host
}

// New creates a new RESP protocol server.
func New(cfg *Config, svc *service.MapService, metrics *metric.Registry, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		cfg:     cfg,
		logger:  logger,
		handler: NewCommandHandler(svc, metrics, cfg.RateLimit, logger),
	}
}

// Start starts listening and serving. It returns once the listener is
// bound; serving continues in background goroutines.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting resp server", "address", s.cfg.Addr)
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.running.Store(true)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.acceptLoop(ctx, ln); err != nil && s.running.Load() {
			s.logger.Error("resp server error", "error", err)
		}
	}()

	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.running.Store(false)

	var firstErr error
	if s.ln != nil {
		if err := s.ln.Close(); err != nil {
			firstErr = err
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return firstErr
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) error {
	for {
		c, err := ln.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			return err
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.serveConn(ctx, newConn(c))
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, c *Conn) {
	defer c.Close()

	readTimeout := s.cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 30 * time.Second
	}
	writeTimeout := s.cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 30 * time.Second
	}
	idleTimeout := s.cfg.IdleTimeout
	if idleTimeout == 0 {
		idleTimeout = 5 * time.Minute
	}

	for {
		// First byte: allow idle timeout (connection can stay idle
		// between commands).
		if err := c.netConn.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
			return
		}
		if _, err := c.br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.logger.Debug("connection timed out", "remote", c.RemoteAddr())
				return
			}
			s.logger.Debug("connection read error", "remote", c.RemoteAddr(), "error", err)
			return
		}

		// Rest of the command: tighter read deadline.
		if err := c.netConn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			return
		}
		args, err := ReadCommand(c.br)
		if err != nil {
			if errors.Is(err, ErrProtocol) || errors.Is(err, ErrLimitExceeded) {
				_ = WriteError(c.bw, "ERR "+err.Error())
				_ = c.bw.Flush()
			}
			return
		}
		if args == nil {
			continue
		}

		quit := s.handler.Handle(ctx, c, args)

		if err := c.netConn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return
		}
		if err := c.bw.Flush(); err != nil {
			s.logger.Debug("connection write error", "remote", c.RemoteAddr(), "error", err)
			return
		}
		if quit {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
