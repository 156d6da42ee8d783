package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/athena/internal/publisher"
)

func TestBroadcastReachesSubscriber(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewServer(nil, nil)
	go s.hub.Run(ctx)

	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/scrape"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	s.BroadcastEvent(publisher.ScrapeEvent{RunID: "r1", Operation: "set_games", Entity: "games", LeagueCode: "2860Y8N5D", Count: 3})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "scrape_event", msg.Type)
	assert.Equal(t, "2860Y8N5D", msg.Payload.LeagueCode)
	assert.Equal(t, 3, msg.Payload.Count)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return s.hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHealth(t *testing.T) {
	s := NewServer(nil, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/health", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(0), body["clients"])
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://athena.example"})

	req := httptest.NewRequest(http.MethodGet, "/ws/scrape", nil)
	assert.True(t, check(req), "no origin header")

	req.Header.Set("Origin", "https://athena.example")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker([]string{"*"})(req))
}
