// Package themesync pushes theme changes to every open browser tab over a websocket.
package themesync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/events"
	"github.com/surpluslink/surpluslink/internal/hub"
	"github.com/surpluslink/surpluslink/internal/pubsub"
)

const (
	writeTimeout = 5 * time.Second
	sendBuffer   = 16
)

// Update is the JSON frame sent to clients.
type Update struct {
	Type  string       `json:"type"`
	Theme domain.Theme `json:"theme"`
}

// CurrentFunc reports the theme to send on connect.
type CurrentFunc func() domain.Theme

// Handler serves the theme websocket.
type Handler struct {
	hub     *hub.Hub
	current CurrentFunc
	logger  *slog.Logger
}

// NewHandler creates a Handler broadcasting through h.
func NewHandler(h *hub.Hub, current CurrentFunc) *Handler {
	return &Handler{
		hub:     h,
		current: current,
		logger:  slog.Default().With("service", "themesync"),
	}
}

// Start forwards theme events from the bus to the hub.
func (h *Handler) Start(ctx context.Context, sub pubsub.Subscriber) error {
	err := pubsub.Subscribe(ctx, sub, events.ThemeToggled, func(ctx context.Context, msg pubsub.Message, ev events.ThemeChanged) error {
		frame, err := encode(ev.Theme)
		if err != nil {
			return err
		}
		h.hub.Broadcast(frame)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", events.ThemeToggled.Name(), err)
	}
	return nil
}

func encode(t domain.Theme) ([]byte, error) {
	return json.Marshal(Update{Type: "theme", Theme: t})
}

// ServeWS upgrades the request and streams theme updates until the client goes away.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Same-origin app; origin checks are left to the proxy.
	})
	if err != nil {
		h.logger.Error("Failed to upgrade theme WebSocket", "error", err)
		return nil
	}
	defer conn.CloseNow()

	snapshot, err := encode(h.current())
	if err != nil {
		return err
	}
	sub := &hub.Subscriber{Send: make(chan []byte, sendBuffer)}
	sub.Send <- snapshot
	if !h.hub.Register(sub) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return nil
	}
	defer h.hub.Unregister(sub)

	// Clients never send; CloseRead handles control frames and reports disconnects.
	ctx := conn.CloseRead(c.Request().Context())

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-sub.Send:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return nil
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(wctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				h.logger.Debug("Theme WebSocket write failed", "error", err)
				return nil
			}
		}
	}
}
