package websocket

import (
	"context"

	"reqforge-ai-be/internal/pkg/logger"
	"reqforge-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatHandler struct {
	chat   service.IChatService
	logger logger.ILogger
}

func NewChatHandler(chat service.IChatService, log logger.ILogger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: log}
}

// RegisterRoutes mounts /chat on r, which the server groups under /ws.
func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/chat", h.upgrade, websocket.New(h.ServeWs))
}

func (h *ChatHandler) upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ServeWs runs one connection until the peer disconnects.
func (h *ChatHandler) ServeWs(conn *websocket.Conn) {
	client := newClient(conn, h.chat, h.logger)
	h.logger.Info("WebSocket", "Client connected", map[string]interface{}{"client_id": client.ID})

	ctx, cancel := client.lifetime(context.Background())
	defer cancel()

	go client.writePump()

	client.readPump(ctx)
	<-client.done

	h.logger.Info("WebSocket", "Client disconnected", map[string]interface{}{"client_id": client.ID})
}
