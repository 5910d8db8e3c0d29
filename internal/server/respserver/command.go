package respserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/lockmap-go/internal/core/domain"
	"github.com/yndnr/lockmap-go/internal/core/service"
	"github.com/yndnr/lockmap-go/internal/infra/buildinfo"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
)

// formatRESPError converts an error to a RESP error string.
// For DomainErrors, returns "ERR <code> <message>".
func formatRESPError(err error) string {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return "ERR " + de.Code + " " + de.Message
	}
	return "ERR " + err.Error()
}

// ipLimiters holds one token-bucket limiter per client IP.
type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPLimiters(commandsPerSecond int) *ipLimiters {
	return &ipLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(commandsPerSecond),
		burst:    commandsPerSecond,
	}
}

// allow checks if a command from the given IP should be allowed.
func (l *ipLimiters) allow(ip string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()

	return lim.Allow()
}

// CommandHandler handles RESP commands against the map service.
type CommandHandler struct {
	svc      *service.MapService
	logger   *slog.Logger
	metrics  *metric.Registry
	limiters *ipLimiters
	started  time.Time
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(svc *service.MapService, metrics *metric.Registry, rateLimit int, logger *slog.Logger) *CommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	var rl *ipLimiters
	if rateLimit > 0 {
		rl = newIPLimiters(rateLimit)
	}

	return &CommandHandler{
		svc:      svc,
		logger:   logger,
		metrics:  metrics,
		limiters: rl,
		started:  time.Now(),
	}
}

// Handle handles one command and writes the reply to the connection's
// buffered writer. It returns true when the connection should close.
func (h *CommandHandler) Handle(ctx context.Context, c *Conn, args [][]byte) bool {
	if len(args) == 0 {
		_ = WriteError(c.bw, "ERR no command")
		return false
	}

	cmd := normalizeCommandName(args[0])
	if h.metrics != nil {
		h.metrics.RESPCommands.WithLabelValues(cmd).Inc()
	}

	if !h.limiters.allow(c.remoteIP()) {
		_ = WriteError(c.bw, formatRESPError(domain.ErrRateLimited))
		return false
	}

	switch cmd {
	case "PING":
		return h.handlePing(c, args)
	case "ECHO":
		return h.handleEcho(c, args)
	case "GET":
		return h.handleGet(ctx, c, args)
	case "SET":
		return h.handleSet(ctx, c, args)
	case "DEL":
		return h.handleDel(ctx, c, args)
	case "EXISTS":
		return h.handleExists(ctx, c, args)
	case "DBSIZE":
		return h.handleDBSize(ctx, c, args)
	case "KEYS":
		return h.handleKeys(ctx, c, args)
	case "FLUSHDB":
		return h.handleFlush(ctx, c, args)
	case "INFO":
		return h.handleInfo(ctx, c, args)
	case "QUIT":
		_ = WriteSimpleString(c.bw, "OK")
		return true
	default:
		_ = WriteError(c.bw, "ERR unknown command '"+cmd+"'")
		return false
	}
}

func (h *CommandHandler) handlePing(c *Conn, args [][]byte) bool {
	if len(args) > 1 {
		_ = WriteBulk(c.bw, args[1])
		return false
	}
	_ = WriteSimpleString(c.bw, "PONG")
	return false
}

func (h *CommandHandler) handleEcho(c *Conn, args [][]byte) bool {
	if len(args) != 2 {
		_ = WriteError(c.bw, "ERR wrong number of arguments for 'ECHO'")
		return false
	}
	_ = WriteBulk(c.bw, args[1])
	return false
}

func (h *CommandHandler) handleGet(ctx context.Context, c *Conn, args [][]byte) bool {
	key, ok := h.parseKeyArg(c, args, 2)
	if !ok {
		return false
	}

	value, err := h.svc.Get(ctx, key)
	if err != nil {
		// Miss is a nil bulk, not an error, on this surface.
		if errors.Is(err, domain.ErrKeyNotFound) {
			_ = WriteNullBulk(c.bw)
			return false
		}
		_ = WriteError(c.bw, formatRESPError(err))
		return false
	}
	_ = WriteInteger(c.bw, value)
	return false
}

func (h *CommandHandler) handleSet(ctx context.Context, c *Conn, args [][]byte) bool {
	if len(args) != 3 {
		_ = WriteError(c.bw, "ERR wrong number of arguments for 'SET'")
		return false
	}
	key, err := service.ParseKey(string(args[1]))
	if err != nil {
		_ = WriteError(c.bw, formatRESPError(err))
		return false
	}
	value, err := service.ParseValue(string(args[2]))
	if err != nil {
		_ = WriteError(c.bw, formatRESPError(err))
		return false
	}

	prev, existed := h.svc.Put(ctx, key, value)
	if !existed {
		_ = WriteNullBulk(c.bw)
		return false
	}
	_ = WriteInteger(c.bw, prev)
	return false
}

func (h *CommandHandler) handleDel(ctx context.Context, c *Conn, args [][]byte) bool {
	key, ok := h.parseKeyArg(c, args, 2)
	if !ok {
		return false
	}

	removed, err := h.svc.Delete(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			_ = WriteNullBulk(c.bw)
			return false
		}
		_ = WriteError(c.bw, formatRESPError(err))
		return false
	}
	_ = WriteInteger(c.bw, removed)
	return false
}

func (h *CommandHandler) handleExists(ctx context.Context, c *Conn, args [][]byte) bool {
	key, ok := h.parseKeyArg(c, args, 2)
	if !ok {
		return false
	}

	if _, err := h.svc.Get(ctx, key); err != nil {
		_ = WriteInteger(c.bw, 0)
		return false
	}
	_ = WriteInteger(c.bw, 1)
	return false
}

func (h *CommandHandler) handleDBSize(ctx context.Context, c *Conn, args [][]byte) bool {
	st := h.svc.Stats(ctx)
	_ = WriteInteger(c.bw, int64(st.Size))
	return false
}

func (h *CommandHandler) handleKeys(ctx context.Context, c *Conn, args [][]byte) bool {
	// Only the "*" pattern is supported.
	if len(args) != 2 || string(args[1]) != "*" {
		_ = WriteError(c.bw, "ERR only KEYS * is supported")
		return false
	}

	keys := h.svc.Keys(ctx)
	_ = WriteArrayHeader(c.bw, len(keys))
	for _, k := range keys {
		_ = WriteBulkString(c.bw, strconv.FormatInt(k, 10))
	}
	return false
}

func (h *CommandHandler) handleFlush(ctx context.Context, c *Conn, args [][]byte) bool {
	h.svc.Flush(ctx)
	_ = WriteSimpleString(c.bw, "OK")
	return false
}

func (h *CommandHandler) handleInfo(ctx context.Context, c *Conn, args [][]byte) bool {
	st := h.svc.Stats(ctx)
	info := fmt.Sprintf(
		"# Server\r\nversion:%s\r\nuptime_in_seconds:%d\r\n\r\n"+
			"# Map\r\ncapacity:%d\r\nsize:%d\r\nops:%d\r\n",
		buildinfo.Version,
		int64(time.Since(h.started).Seconds()),
		st.Capacity, st.Size, st.Ops,
	)
	_ = WriteBulkString(c.bw, info)
	return false
}

// parseKeyArg validates arity and parses args[1] as the key.
func (h *CommandHandler) parseKeyArg(c *Conn, args [][]byte, arity int) (int64, bool) {
	if len(args) != arity {
		_ = WriteError(c.bw, "ERR wrong number of arguments for '"+normalizeCommandName(args[0])+"'")
		return 0, false
	}
	key, err := service.ParseKey(string(args[1]))
	if err != nil {
		_ = WriteError(c.bw, formatRESPError(err))
		return 0, false
	}
	return key, true
}
