package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// EventsHandler streams group events to websocket clients as JSON messages.
type EventsHandler struct {
	source   GroupSource
	logger   kitlog.Logger
	upgrader websocket.Upgrader
}

func NewEventsHandler(source GroupSource, logger kitlog.Logger) *EventsHandler {
	return &EventsHandler{
		source: source,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (api *EventsHandler) Register(r chi.Router) {
	r.Get("/events", api.streamEvents)
}

func (api *EventsHandler) streamEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := api.upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(api.logger).Log("msg", "websocket upgrade failed", "err", err)
		return
	}

	defer conn.Close()

	events, cancel := api.source.Subscribe()
	defer cancel()

	// The client is not expected to send anything, but reading is needed
	// to notice when it goes away.
	gone := make(chan struct{})

	go func() {
		defer close(gone)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case n, ok := <-events:
			if !ok {
				return
			}

			if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}

			if err := conn.WriteJSON(toModelEvent(n)); err != nil {
				level.Debug(api.logger).Log("msg", "failed to write event", "remote", r.RemoteAddr, "err", err)
				return
			}
		}
	}
}
