package websocket

import (
	"context"
	"encoding/json"
	"time"

	"reqforge-ai-be/internal/dto"
	"reqforge-ai-be/internal/pkg/apperror"
	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/internal/pkg/serverutils"
	"reqforge-ai-be/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20
)

// Client is one chat connection. Frames are answered in arrival order on
// the same socket.
type Client struct {
	ID   string
	Conn *websocket.Conn

	// Buffered channel of outbound frames.
	Send chan []byte

	// Closed when writePump exits.
	done chan struct{}

	chat   service.IChatService
	logger logger.ILogger
}

func newClient(conn *websocket.Conn, chat service.IChatService, log logger.ILogger) *Client {
	return &Client{
		ID:     uuid.NewString(),
		Conn:   conn,
		Send:   make(chan []byte, 16),
		done:   make(chan struct{}),
		chat:   chat,
		logger: log,
	}
}

// lifetime returns a context that is cancelled once writePump has exited,
// so in-flight chat calls stop when the peer goes away.
func (c *Client) lifetime(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-c.done:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// readPump answers every inbound frame until the peer goes away, then
// closes Send so writePump drains and exits.
func (c *Client) readPump(ctx context.Context) {
	defer close(c.Send)

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("WebSocket", "Unexpected close", map[string]interface{}{
					"client_id": c.ID,
					"error":     err.Error(),
				})
			}
			return
		}

		select {
		case c.Send <- c.handle(ctx, data):
		case <-c.done:
			return
		}
	}
}

func (c *Client) handle(ctx context.Context, data []byte) []byte {
	var req dto.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return errorFrame(apperror.Validation("invalid frame: " + err.Error()))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return errorFrame(err)
	}

	res, err := c.chat.Chat(ctx, &req)
	if err != nil {
		c.logger.Error("WebSocket", "Chat failed", map[string]interface{}{
			"client_id":  c.ID,
			"project_id": req.ProjectID,
			"error":      err.Error(),
		})
		return errorFrame(err)
	}

	frame, err := json.Marshal(dto.WsChatReply{Event: dto.WsEventAIResponse, ChatResponse: *res})
	if err != nil {
		return errorFrame(err)
	}
	return frame
}

func errorFrame(err error) []byte {
	frame, _ := json.Marshal(dto.WsErrorReply{Event: dto.WsEventError, Message: err.Error()})
	return frame
}

// writePump pumps frames to the connection and keeps it alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		close(c.done)
	}()

	for {
		select {
		case frame, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
