package tracking

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"morph-cloud/pkg/morph"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect() (ApplyFunc, <-chan *morph.HandFrame) {
	ch := make(chan *morph.HandFrame, 16)
	return func(f *morph.HandFrame) { ch <- f }, ch
}

func next(t *testing.T, ch <-chan *morph.HandFrame) *morph.HandFrame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func TestFeedDecodesFrames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apply, frames := collect()
	srv := httptest.NewServer(NewFeed(DefaultConfig()).Handler(ctx, apply))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	hand := make([]string, 21)
	for i := range hand {
		hand[i] = `{"x":0.5,"y":0.5,"z":0}`
	}
	hand[morph.FingertipIndex] = `{"x":0.6,"y":0.1,"z":-0.02}`
	msg := `{"multiHandLandmarks":[[` + strings.Join(hand, ",") + `]]}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))

	tip, _, ok := next(t, frames).Points()
	require.True(t, ok)
	assert.InDelta(t, 0.6, tip.X, 1e-9)
	assert.InDelta(t, 0.1, tip.Y, 1e-9)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{not json`)))
	_, _, ok = next(t, frames).Points()
	assert.False(t, ok, "malformed frames count as no hand")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"multiHandLandmarks":[]}`)))
	_, _, ok = next(t, frames).Points()
	assert.False(t, ok)
}

func TestFeedRunShutsDownOnCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	feed := NewFeed(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	apply, frames := collect()
	done := make(chan error, 1)
	go func() { done <- feed.Run(ctx, apply) }()

	var addr string
	select {
	case a := <-feed.Listening():
		addr = a.String()
	case <-time.After(5 * time.Second):
		t.Fatal("feed never listened")
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+cfg.Path, nil)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"multiHandLandmarks":[]}`)))
	next(t, frames)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("feed did not stop")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}
