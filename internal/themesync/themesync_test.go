package themesync_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surpluslink/surpluslink/internal/domain"
	"github.com/surpluslink/surpluslink/internal/hub"
	"github.com/surpluslink/surpluslink/internal/pubsub"
	"github.com/surpluslink/surpluslink/internal/theme"
	"github.com/surpluslink/surpluslink/internal/themesync"
)

func readUpdate(t *testing.T, conn *websocket.Conn) themesync.Update {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, p, err := conn.ReadMessage()
	require.NoError(t, err)

	var u themesync.Update
	require.NoError(t, json.Unmarshal(p, &u))
	return u
}

func TestThemeSocket_SnapshotThenUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	svc := theme.NewService(ctx, theme.NewFileStore(afero.NewMemMapFs(), "theme.json"), bus)

	h := hub.New("theme")
	go h.Run(ctx)
	handler := themesync.NewHandler(h, svc.Current)
	require.NoError(t, handler.Start(ctx, bus))

	e := echo.New()
	e.GET("/ws/theme", handler.ServeWS)
	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/theme"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	require.NoError(t, err, "Failed to connect to theme websocket")
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}()

	first := readUpdate(t, conn)
	assert.Equal(t, "theme", first.Type)
	assert.Equal(t, domain.ThemeLight, first.Theme)

	_, err = svc.Toggle(ctx)
	require.NoError(t, err)

	second := readUpdate(t, conn)
	assert.Equal(t, domain.ThemeDark, second.Theme)
}

func TestThemeSocket_ClosesOnHubStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hubCtx, stopHub := context.WithCancel(ctx)
	h := hub.New("theme")
	go h.Run(hubCtx)
	handler := themesync.NewHandler(h, func() domain.Theme { return domain.ThemeDark })

	e := echo.New()
	e.GET("/ws/theme", handler.ServeWS)
	srv := httptest.NewServer(e)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/theme", nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, domain.ThemeDark, readUpdate(t, conn).Theme)

	stopHub()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "expected going-away close, got %v", err)
}
