package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/playback"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 8192
	// The rate at which pings are sent; pongWait tolerates a few lost pongs.
	pingPeriod = 2 * time.Second
	pongWait   = 4 * pingPeriod
	// Time the peer has to answer our close frame.
	closeGracePeriod = time.Second
)

// KindDone marks the final message of a websocket search.
const KindDone engine.EventKind = "done"

var upgrader = websocket.Upgrader{}

var (
	// ErrPongDeadlineExceeded ends a stream whose peer stopped answering pings.
	ErrPongDeadlineExceeded = errors.New("server: client disconnect, pong deadline exceeded")

	// errPeerClosed ends the reader; it is not reported as a failure.
	errPeerClosed = errors.New("server: peer closed")
)

// DoneMessage is the last message of a websocket search.
type DoneMessage struct {
	Kind      engine.EventKind `json:"kind"`
	Algorithm engine.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Cost      int              `json:"cost"`
	Visited   int              `json:"visited"`
	Error     string           `json:"error,omitempty"`
}

// searchSocket runs the search for GET /ws/search?algorithm=&speed= and
// streams it to the client. Edits are rejected until the stream ends.
func (s *Server) searchSocket(w http.ResponseWriter, r *http.Request) {
	algo, err := s.algorithmParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	speed, err := s.speedParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	snap, err := s.begin()
	if err != nil {
		writeError(w, r, statusOf(err), err)
		return
	}
	defer s.end()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		ctxlog.FromContext(r.Context()).Warn("Websocket upgrade failed.", "error", err)
		return
	}
	defer conn.Close()

	logger := ctxlog.FromContext(r.Context()).With("algorithm", algo.String(), "speed", speed)
	ss := &stream{conn: conn}
	if err = ss.run(r.Context(), snap, algo, playback.NewPacing(algo, speed)); err != nil {
		logger.Warn("Websocket search ended with error.", "error", err)
		return
	}
	logger.Debug("Websocket search finished.")
}

// speedParam reads ?speed=, falling back to the session default.
func (s *Server) speedParam(r *http.Request) (int, error) {
	v := r.URL.Query().Get("speed")
	if v == "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.speed, nil
	}
	speed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("speed: %w", err)
	}
	if speed < 0 {
		return 0, fmt.Errorf("speed: %d is negative", speed)
	}
	return speed, nil
}

// stream owns one upgraded connection: a reader, a pinger and a publisher
// run under one errgroup. Only the publisher writes data frames.
type stream struct {
	conn     *websocket.Conn
	lastPong atomic.Int64
}

func (ss *stream) run(ctx context.Context, g *gridgraph.Grid, algo engine.Algorithm, pace playback.Pacing) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ss.conn.SetReadLimit(maxMessageSize)
	ss.lastPong.Store(time.Now().UnixNano())
	ss.conn.SetPongHandler(func(string) error {
		ss.lastPong.Store(time.Now().UnixNano())
		return nil
	})

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return ss.readMessages(groupCtx)
	})
	group.Go(func() error {
		return ss.pingPong(groupCtx)
	})
	group.Go(func() error {
		defer cancel()
		// The reader exits on the peer's close reply or on this deadline.
		defer func() { _ = ss.conn.SetReadDeadline(time.Now().Add(closeGracePeriod)) }()
		return ss.publish(groupCtx, g, algo, pace)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, errPeerClosed) {
		return err
	}
	return nil
}

// readMessages drains client frames so control frames are processed.
// Any read error is permanent and ends the stream.
func (ss *stream) readMessages(ctx context.Context) error {
	for {
		if _, _, err := ss.conn.ReadMessage(); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%w: %v", errPeerClosed, err)
		}
	}
}

// pingPong keeps the connection alive and detects silent peers.
func (ss *stream) pingPong(ctx context.Context) error {
	pinger := channerics.NewTicker(ctx.Done(), pingPeriod)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pinger:
			if time.Since(time.Unix(0, ss.lastPong.Load())) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := ss.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}
		}
	}
}

// publish runs the search and writes each event as it is played back,
// then a DoneMessage and a close frame.
func (ss *stream) publish(ctx context.Context, g *gridgraph.Grid, algo engine.Algorithm, pace playback.Pacing) error {
	search := engine.Start(ctx, g, g.Start, g.Goal, algo)
	if err := playback.Play(ctx, search.Events(), pace, func(ev engine.Event) error {
		return ss.write(ev)
	}); err != nil {
		return err
	}

	res, err := search.Wait()
	done := DoneMessage{Kind: KindDone, Algorithm: algo}
	if res != nil {
		done.Found = res.Found
		done.Cost = res.Cost
		done.Visited = len(res.Order)
	}
	if err != nil && !errors.Is(err, core.ErrNoPath) {
		done.Error = err.Error()
	}
	if err = ss.write(done); err != nil {
		return err
	}

	_ = ss.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	return nil
}

func (ss *stream) write(v any) error {
	if err := ss.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set deadline: %w", err)
	}
	if err := ss.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	return nil
}
