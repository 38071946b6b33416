package lsp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// maxContentLength bounds a single message. Tape documents are small.
const maxContentLength = 4 << 20

// Connection frames JSON-RPC messages with Content-Length headers.
// Reads are not synchronized; writes are.
type Connection struct {
	r      *bufio.Reader
	w      io.Writer
	wmu    sync.Mutex
	logger *slog.Logger
}

func NewConnection(r io.Reader, w io.Writer, logger *slog.Logger) *Connection {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Connection{r: br, w: w, logger: logger}
}

// ReadMessage blocks for the next framed message. io.EOF is returned as-is
// when the peer closes between messages.
func (c *Connection) ReadMessage() (*Message, error) {
	length, err := c.readHeader()
	if err != nil {
		return nil, err
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(c.r, body); err != nil {
		return nil, fmt.Errorf("reading %d byte body: %w", length, err)
	}

	var m Message
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("decoding message: %w", err)
	}
	c.logger.Debug("lsp recv", "method", m.Method, "id", m.ID)
	return &m, nil
}

// readHeader consumes the header block and returns the body length.
// Header names are matched case-insensitively; unknown headers are skipped.
func (c *Connection) readHeader() (int, error) {
	length := -1
	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			return 0, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("invalid Content-Length %q: %w", value, err)
		}
		length = n
	}

	switch {
	case length < 0:
		return 0, fmt.Errorf("missing Content-Length header")
	case length > maxContentLength:
		return 0, fmt.Errorf("Content-Length %d exceeds %d", length, maxContentLength)
	}
	return length, nil
}

// WriteMessage sends m as a single write so concurrent writers never
// interleave frames.
func (c *Connection) WriteMessage(m *Message) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	var frame bytes.Buffer
	fmt.Fprintf(&frame, "Content-Length: %d\r\n\r\n", len(body))
	frame.Write(body)

	c.wmu.Lock()
	defer c.wmu.Unlock()
	if _, err := c.w.Write(frame.Bytes()); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	c.logger.Debug("lsp send", "method", m.Method, "id", m.ID)
	return nil
}
