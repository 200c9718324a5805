// Package capture pulls ledger state off a live XRPL node over its public
// websocket API and stores it as snapshot records for offline contract runs.
package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// dialTimeout bounds the initial connect.
	dialTimeout = 5 * time.Second

	// requestTimeout bounds a single command round trip when the caller's
	// context carries no earlier deadline.
	requestTimeout = 30 * time.Second

	maxMessageSize = 4 * 1024 * 1024
)

// Client is a synchronous XRPL websocket command client. Commands carry an
// incrementing id and the reader skips stream messages until the matching
// response arrives. One command is in flight at a time.
type Client struct {
	ws *websocket.Conn

	mu     sync.Mutex
	nextID uint64

	closeOnce sync.Once
	done      chan struct{}
}

// request is the envelope every command embeds.
type request struct {
	ID      uint64 `json:"id"`
	Command string `json:"command"`
}

func (r *request) stamp(id uint64, name string) {
	r.ID = id
	r.Command = name
}

type command interface {
	stamp(id uint64, name string)
}

type response struct {
	ID           uint64          `json:"id"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
	Result       json.RawMessage `json:"result"`
}

// Dial connects to an XRPL websocket endpoint (ws:// or wss://). The context
// governs the whole session: cancelling it aborts any in-flight command and
// closes the connection.
func Dial(ctx context.Context, endpoint string) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: dialTimeout}
	ws, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("capture: dial %s: %w", endpoint, err)
	}
	ws.SetReadLimit(maxMessageSize)

	c := &Client{ws: ws, done: make(chan struct{})}
	go func() {
		select {
		case <-ctx.Done():
			// Unblocks a pending ReadMessage.
			c.ws.Close()
		case <-c.done:
		}
	}()
	return c, nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		err = c.ws.Close()
	})
	return err
}

// call sends one command and decodes the matching response's result into out.
func (c *Client) call(ctx context.Context, name string, cmd command, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	c.nextID++
	id := c.nextID
	cmd.stamp(id, name)

	deadline := time.Now().Add(requestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	c.ws.SetWriteDeadline(deadline)
	if err := c.ws.WriteJSON(cmd); err != nil {
		return fmt.Errorf("capture: send %s: %w", name, err)
	}

	c.ws.SetReadDeadline(deadline)
	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("capture: read %s response: %w", name, err)
		}

		var resp response
		if err := json.Unmarshal(message, &resp); err != nil {
			return fmt.Errorf("capture: decode %s response: %w", name, err)
		}
		if resp.Type != "response" || resp.ID != id {
			// Stream message or a straggler from an earlier command.
			continue
		}
		if resp.Status != "success" {
			return fmt.Errorf("capture: %s: %s (%s)", name, resp.Error, resp.ErrorMessage)
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("capture: decode %s result: %w", name, err)
		}
		return nil
	}
}
