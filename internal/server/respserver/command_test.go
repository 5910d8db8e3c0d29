package respserver

import (
	"bufio"
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/yndnr/lockmap-go/internal/core/service"
	"github.com/yndnr/lockmap-go/internal/telemetry/metric"
	"github.com/yndnr/lockmap-go/pkg/tsmap"
)

// testConn builds a Conn whose writer lands in a buffer we can inspect.
func testConn(t *testing.T) (*Conn, *bytes.Buffer) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})

	var buf bytes.Buffer
	return &Conn{
		netConn: server,
		br:      bufio.NewReader(server),
		bw:      bufio.NewWriter(&buf),
	}, &buf
}

func newTestHandler(t *testing.T, capacity int) *CommandHandler {
	t.Helper()
	m, err := tsmap.New(capacity)
	if err != nil {
		t.Fatal(err)
	}
	svc := service.NewMapService(m, nil, metric.NewRegistry())
	return NewCommandHandler(svc, nil, 0, nil)
}

func run(t *testing.T, h *CommandHandler, c *Conn, buf *bytes.Buffer, args ...string) string {
	t.Helper()
	raw := make([][]byte, len(args))
	for i, a := range args {
		raw[i] = []byte(a)
	}
	buf.Reset()
	h.Handle(context.Background(), c, raw)
	c.bw.Flush()
	return buf.String()
}

func TestHandlePing(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	if got := run(t, h, c, buf, "PING"); got != "+PONG\r\n" {
		t.Errorf("PING reply = %q", got)
	}
	if got := run(t, h, c, buf, "PING", "hello"); got != "$5\r\nhello\r\n" {
		t.Errorf("PING hello reply = %q", got)
	}
}

func TestHandleSetGetDel(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	// New key: SET answers nil bulk (no previous value).
	if got := run(t, h, c, buf, "SET", "1", "100"); got != "$-1\r\n" {
		t.Errorf("SET new reply = %q, want $-1", got)
	}
	// Overwrite: previous value comes back.
	if got := run(t, h, c, buf, "SET", "1", "200"); got != ":100\r\n" {
		t.Errorf("SET overwrite reply = %q, want :100", got)
	}

	if got := run(t, h, c, buf, "GET", "1"); got != ":200\r\n" {
		t.Errorf("GET reply = %q, want :200", got)
	}
	if got := run(t, h, c, buf, "GET", "404"); got != "$-1\r\n" {
		t.Errorf("GET miss reply = %q, want $-1", got)
	}

	if got := run(t, h, c, buf, "DEL", "1"); got != ":200\r\n" {
		t.Errorf("DEL reply = %q, want :200", got)
	}
	if got := run(t, h, c, buf, "DEL", "1"); got != "$-1\r\n" {
		t.Errorf("DEL miss reply = %q, want $-1", got)
	}
}

func TestHandleBadKey(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	got := run(t, h, c, buf, "GET", "abc")
	if !strings.HasPrefix(got, "-ERR LM-MAP-4001") {
		t.Errorf("GET abc reply = %q, want LM-MAP-4001 error", got)
	}

	got = run(t, h, c, buf, "SET", "1", "xyz")
	if !strings.HasPrefix(got, "-ERR LM-MAP-4002") {
		t.Errorf("SET bad value reply = %q, want LM-MAP-4002 error", got)
	}
}

func TestHandleExistsAndDBSize(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	run(t, h, c, buf, "SET", "7", "70")

	if got := run(t, h, c, buf, "EXISTS", "7"); got != ":1\r\n" {
		t.Errorf("EXISTS hit reply = %q", got)
	}
	if got := run(t, h, c, buf, "EXISTS", "8"); got != ":0\r\n" {
		t.Errorf("EXISTS miss reply = %q", got)
	}
	if got := run(t, h, c, buf, "DBSIZE"); got != ":1\r\n" {
		t.Errorf("DBSIZE reply = %q", got)
	}
}

func TestHandleKeys(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	run(t, h, c, buf, "SET", "1", "10")
	run(t, h, c, buf, "SET", "2", "20")

	got := run(t, h, c, buf, "KEYS", "*")
	if !strings.HasPrefix(got, "*2\r\n") {
		t.Errorf("KEYS reply = %q, want 2-element array", got)
	}

	got = run(t, h, c, buf, "KEYS", "foo*")
	if !strings.HasPrefix(got, "-ERR") {
		t.Errorf("KEYS with pattern reply = %q, want error", got)
	}
}

func TestHandleFlushDB(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	run(t, h, c, buf, "SET", "1", "10")
	if got := run(t, h, c, buf, "FLUSHDB"); got != "+OK\r\n" {
		t.Errorf("FLUSHDB reply = %q", got)
	}
	if got := run(t, h, c, buf, "DBSIZE"); got != ":0\r\n" {
		t.Errorf("DBSIZE after flush = %q", got)
	}
}

func TestHandleInfo(t *testing.T) {
	h := newTestHandler(t, 16)
	c, buf := testConn(t)

	got := run(t, h, c, buf, "INFO")
	if !strings.Contains(got, "capacity:16") {
		t.Errorf("INFO reply missing capacity: %q", got)
	}
	if !strings.Contains(got, "ops:") {
		t.Errorf("INFO reply missing ops: %q", got)
	}
}

func TestHandleQuit(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	raw := [][]byte{[]byte("QUIT")}
	quit := h.Handle(context.Background(), c, raw)
	c.bw.Flush()

	if !quit {
		t.Error("QUIT should request connection close")
	}
	if buf.String() != "+OK\r\n" {
		t.Errorf("QUIT reply = %q", buf.String())
	}
}

func TestHandleUnknownCommand(t *testing.T) {
	h := newTestHandler(t, 8)
	c, buf := testConn(t)

	got := run(t, h, c, buf, "SUBSCRIBE", "x")
	if !strings.HasPrefix(got, "-ERR unknown command") {
		t.Errorf("reply = %q, want unknown command error", got)
	}
}

func TestRateLimiting(t *testing.T) {
	m, _ := tsmap.New(8)
	svc := service.NewMapService(m, nil, metric.NewRegistry())
	h := NewCommandHandler(svc, nil, 2, nil) // 2 commands/second, burst 2
	c, buf := testConn(t)

	run(t, h, c, buf, "PING")
	run(t, h, c, buf, "PING")
	got := run(t, h, c, buf, "PING")
	if !strings.HasPrefix(got, "-ERR LM-REQ-4290") {
		t.Errorf("third command reply = %q, want rate limit error", got)
	}
}
