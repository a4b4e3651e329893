package http

import (
	"context"
	"github.com/gorilla/websocket"
	"log/slog"
	"net/http"
	"tickto/common"
	"tickto/common/constant"
	"tickto/model"
	"time"
)

const (
	streamBufferSize   = 16
	defaultWriteWait   = 10 * time.Second
	streamTypeSnapshot = "snapshot"
	streamTypeState    = "transition"
)

type streamEvent struct {
	Type       string                    `json:"type"`
	Snapshot   *model.PurchaseSnapshot   `json:"snapshot,omitempty"`
	Transition *model.PurchaseTransition `json:"transition,omitempty"`
}

// StreamHttp pushes a purchase's transitions over a websocket. The first frame is the current
// snapshot; the socket closes after a terminal state.
type StreamHttp struct {
	Feed      TransitionFeed
	Snapshots SnapshotStore
	Upgrader  websocket.Upgrader
	WriteWait time.Duration
}

func RegisterStreamHttp(mux *http.ServeMux, feed TransitionFeed, snapshots SnapshotStore) *StreamHttp {
	in := &StreamHttp{
		Feed:      feed,
		Snapshots: snapshots,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		WriteWait: defaultWriteWait,
	}

	mux.HandleFunc("GET /api/purchases/{id}/stream", in.stream)

	return in
}

func (in *StreamHttp) stream(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	purchaseID := r.PathValue("id")
	purchaseAttr := slog.String(constant.LogFieldPurchaseId, purchaseID)

	// Subscribe before reading the snapshot so nothing falls between the two.
	transitions := make(chan model.PurchaseTransition, streamBufferSize)
	unsubscribe, err := in.Feed.Subscribe(ctx, purchaseID, func(t model.PurchaseTransition) {
		select {
		case transitions <- t:
		case <-ctx.Done():
		}
	})
	if err != nil {
		writeErrorResponse(w, err)
		return
	}
	defer unsubscribe()

	snap, err := in.Snapshots.Get(ctx, purchaseID)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	conn, err := in.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "websocket upgrade failed", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldErr, err))
		return
	}
	defer conn.Close()

	// The server read timeout still applies to the hijacked connection.
	_ = conn.SetReadDeadline(time.Time{})

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err = in.write(conn, streamEvent{Type: streamTypeSnapshot, Snapshot: &snap}); err != nil {
		return
	}

	state := snap.State
	for !state.IsTerminal() {
		select {
		case t := <-transitions:
			if err = in.write(conn, streamEvent{Type: streamTypeState, Transition: &t}); err != nil {
				slog.DebugContext(ctx, "stream write failed", traceIdAttr, purchaseAttr, slog.Any(constant.LogFieldErr, err))
				return
			}
			state = t.To
		case <-ctx.Done():
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(state)),
		time.Now().Add(in.WriteWait))
}

func (in *StreamHttp) write(conn *websocket.Conn, event streamEvent) error {
	if err := conn.SetWriteDeadline(time.Now().Add(in.WriteWait)); err != nil {
		return err
	}

	return conn.WriteJSON(event)
}
