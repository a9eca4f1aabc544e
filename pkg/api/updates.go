package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/orgdocs/orgdocs/pkg/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API is same-host only; CORS is already wide open.
		return true
	},
}

const (
	updateWriteTimeout = 10 * time.Second
	updatePingInterval = 30 * time.Second
)

// HandleUpdates serves GET /api/updates: a WebSocket stream of data-change
// events, one JSON ChangeEvent per message. Clients use it to refresh
// search results when an import lands.
func (s *Server) HandleUpdates(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorf("upgrading websocket: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	id, events := s.hub.Subscribe()
	defer s.hub.Unsubscribe(id)

	s.logger.Debugf("websocket listener %d connected from %s", id, r.RemoteAddr)

	// Drain client frames so close messages are processed; the stream is
	// one-way otherwise.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(updatePingInterval)
	defer ping.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(updateWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				s.logger.Debugf("websocket listener %d dropped: %v", id, err)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(updateWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func realtimeReloadEvent() realtime.ChangeEvent {
	return realtime.ChangeEvent{
		Entity: "all",
		Action: realtime.ActionReload,
		Time:   time.Now().UTC(),
	}
}
