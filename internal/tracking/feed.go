package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"morph-cloud/internal/core"
	"morph-cloud/pkg/morph"

	"github.com/gorilla/websocket"
)

const (
	feedReadLimit    = 1 << 20
	feedShutdownWait = 2 * time.Second
)

// Feed is a websocket endpoint for an external hand tracker. Each text or
// binary message is one processed frame in MediaPipe's results layout:
//
//	{"multiHandLandmarks": [[{"x":0.5,"y":0.4,"z":0}, ...]]}
//
// Messages that fail to decode count as a frame with no hand.
type Feed struct {
	addr     string
	path     string
	log      core.Logger
	upgrader websocket.Upgrader

	listening chan net.Addr
}

// NewFeed returns a Feed configured from cfg.
func NewFeed(cfg Config) *Feed {
	path := cfg.Path
	if path == "" {
		path = DefaultConfig().Path
	}
	return &Feed{
		addr: cfg.Addr,
		path: path,
		log:  core.OrNop(cfg.Logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
			// Trackers run as local tools or browser pages on other origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		listening: make(chan net.Addr, 1),
	}
}

// Name returns the source identifier.
func (f *Feed) Name() string { return "feed" }

// Listening delivers the bound address once Run has started listening.
func (f *Feed) Listening() <-chan net.Addr { return f.listening }

// Run serves the websocket endpoint until ctx is done.
func (f *Feed) Run(ctx context.Context, apply ApplyFunc) error {
	mux := http.NewServeMux()
	mux.Handle(f.path, f.Handler(ctx, apply))

	ln, err := net.Listen("tcp", f.addr)
	if err != nil {
		return fmt.Errorf("feed listen %s: %w", f.addr, err)
	}
	f.listening <- ln.Addr()
	f.log.Infof("landmark feed on ws://%s%s", ln.Addr(), f.path)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), feedShutdownWait)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			f.log.Warnf("feed shutdown: %v", err)
		}
	}()

	err = srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return fmt.Errorf("feed serve: %w", err)
}

// Handler upgrades requests to websockets and forwards decoded frames to
// apply. Connections are closed when ctx is done.
func (f *Feed) Handler(ctx context.Context, apply ApplyFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := f.upgrader.Upgrade(w, r, nil)
		if err != nil {
			f.log.Warnf("feed upgrade from %s: %v", r.RemoteAddr, err)
			return
		}
		defer conn.Close()
		conn.SetReadLimit(feedReadLimit)

		stop := context.AfterFunc(ctx, func() {
			deadline := time.Now().Add(time.Second)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), deadline)
			_ = conn.Close()
		})
		defer stop()

		f.log.Infof("tracker connected from %s", r.RemoteAddr)
		for {
			kind, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					f.log.Warnf("tracker %s: %v", r.RemoteAddr, err)
				} else {
					f.log.Infof("tracker %s disconnected", r.RemoteAddr)
				}
				return
			}
			if kind != websocket.TextMessage && kind != websocket.BinaryMessage {
				continue
			}
			apply(f.decode(data))
		}
	})
}

func (f *Feed) decode(data []byte) *morph.HandFrame {
	var frame morph.HandFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		f.log.Debugf("feed: dropping malformed frame: %v", err)
		return &morph.HandFrame{}
	}
	return &frame
}

func init() {
	Register("feed", func(cfg Config) Source { return NewFeed(cfg) })
}
