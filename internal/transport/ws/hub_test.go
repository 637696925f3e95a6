package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatfuture/internal/logging"
	"chatfuture/internal/service"
	"chatfuture/internal/storage"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Hub, *service.AuthService, *httptest.Server) {
	t.Helper()
	hub := NewHub(logging.NewNop())
	t.Cleanup(hub.Close)
	auth := service.NewAuthService("ws-secret", time.Hour)
	srv := httptest.NewServer(http.HandlerFunc(NewHandler(hub, auth, logging.NewNop()).UserWS))
	t.Cleanup(srv.Close)
	return hub, auth, srv
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	if token != "" {
		url += "?token=" + token
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForConnections(t *testing.T, hub *Hub, userID string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Connections(userID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_NotifyUserReachesOnlyThatUser(t *testing.T) {
	hub, auth, srv := newTestServer(t)

	alice, err := auth.IssueUserToken("alice", "")
	require.NoError(t, err)
	bob, err := auth.IssueUserToken("bob", "")
	require.NoError(t, err)

	aliceConn := dial(t, srv, alice.Token)
	bobConn := dial(t, srv, bob.Token)
	waitForConnections(t, hub, "alice", 1)
	waitForConnections(t, hub, "bob", 1)

	hub.NotifyUser("alice", service.MsgReportReady, map[string]string{"status": "ready"})

	require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := aliceConn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, service.MsgReportReady, msg.Type)
	assert.JSONEq(t, `{"status":"ready"}`, string(msg.Payload))

	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = bobConn.ReadMessage()
	assert.Error(t, err, "bob receives nothing")
}

func TestHub_AnonymousWithoutToken(t *testing.T) {
	hub, _, srv := newTestServer(t)

	dial(t, srv, "")
	dial(t, srv, "")
	waitForConnections(t, hub, storage.AnonymousUser, 2)
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub, auth, srv := newTestServer(t)
	tok, err := auth.IssueUserToken("carol", "")
	require.NoError(t, err)

	conn := dial(t, srv, tok.Token)
	waitForConnections(t, hub, "carol", 1)

	require.NoError(t, conn.Close())
	waitForConnections(t, hub, "carol", 0)
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	_, _, srv := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=bogus"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_NotifyAfterCloseDoesNotBlock(t *testing.T) {
	hub := NewHub(logging.NewNop())
	hub.Close()

	done := make(chan struct{})
	go func() {
		hub.NotifyUser("dave", service.MsgReportFailed, nil)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyUser blocked after Close")
	}
}
