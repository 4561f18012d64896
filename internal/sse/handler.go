package sse

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/questgame/internal/logger"
)

// Handler streams hub events to one client until it disconnects or the hub stops
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		types := parseTypes(r.URL.Query().Get(QueryParamTypes))
		client := hub.Register(types)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", types, "total_clients", hub.ClientCount())

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		fmt.Fprintf(w, "retry: %d\n\n", RetryMillis)
		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"client_id": client.ID, "filters": types},
		}
		if err := send(w, flusher, hello); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			var err error
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.EventChannel:
				if !open {
					return
				}
				err = send(w, flusher, evt)
			case <-ticker.C:
				err = send(w, flusher, Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()})
			}
			if err != nil {
				log.Warn(LogMsgWriteError, "client_id", client.ID, "error", err)
				return
			}
		}
	}
}

func parseTypes(param string) []string {
	var out []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func send(w http.ResponseWriter, flusher http.Flusher, evt Event) error {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
