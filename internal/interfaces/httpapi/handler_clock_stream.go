package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/usecase"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
)

// StreamMatchClock upgrades to a websocket and pushes one clockDTO text frame
// per snapshot. The first frame is sent right after the upgrade.
func (h *Handler) StreamMatchClock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamMatchClock")
	defer span.End()

	if h.clockStreams == nil {
		writeError(ctx, w, fmt.Errorf("%w: clock stream is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	snapshots, unsubscribe, err := h.clockStreams.Subscribe(streamCtx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "subscribe match clock failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader already replied with an HTTP error.
		h.logger.WarnContext(ctx, "websocket upgrade failed", "match_id", matchID, "error", err)
		return
	}
	defer conn.Close()

	h.logger.DebugContext(ctx, "clock stream opened", "match_id", matchID)
	go discardIncoming(conn, cancel)

	ping := time.NewTicker(streamPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-streamCtx.Done():
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				closeStream(conn, websocket.CloseNormalClosure, "match clock closed")
				return
			}
			if err := writeSnapshot(conn, snapshot); err != nil {
				h.logger.DebugContext(ctx, "clock stream write failed", "match_id", matchID, "error", err)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// discardIncoming keeps control frames flowing and cancels the stream once
// the client goes away.
func discardIncoming(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snapshot match.Snapshot) error {
	payload, err := sonic.Marshal(clockToDTO(snapshot))
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

func closeStream(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(streamWriteWait),
	)
}
