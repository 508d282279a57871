package assist

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

// maxMessageSize caps inbound chat payloads (64KB).
const maxMessageSize = 64 << 10

// Handler exposes the assistant over HTTP: a one-shot message endpoint and
// a websocket channel for the chat widget.
type Handler struct {
	engine *Engine
	delay  time.Duration
	jitter time.Duration
}

// NewHandler creates an assistant handler. delay and jitter control the
// simulated reply latency on the websocket channel.
func NewHandler(engine *Engine, delay, jitter time.Duration) *Handler {
	return &Handler{engine: engine, delay: delay, jitter: jitter}
}

// RegisterRoutes registers the assistant REST routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/assist", func(r chi.Router) {
		r.Post("/message", h.HandleMessage)
	})
}

type messageRequest struct {
	Message string `json:"message"`
}

type messageResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// HandleMessage answers a single message synchronously, with no simulated
// typing delay. Used by non-websocket clients and smoke tests.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMessageSize)

	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Reply:       h.engine.Respond(req.Message),
		Suggestions: h.engine.Suggestions(req.Message),
	})
}

// inbound is a message from the chat widget.
type inbound struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Action  string `json:"action,omitempty"`
	Content string `json:"content,omitempty"`
}

// ServeWS upgrades to a websocket and runs one conversation for the life of
// the connection. Turn history lives in memory only and is discarded when
// the connection ends; closing also cancels any in-flight delayed replies.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept assistant websocket", "error", err, "ip", r.RemoteAddr)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "conversation ended"); closeErr != nil {
			slog.Debug("Failed to close assistant websocket", "error", closeErr)
		}
	}()
	ws.SetReadLimit(maxMessageSize)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Serialize writes: delayed replies fire from timer goroutines while the
	// read loop may be emitting user turns.
	var writeMu sync.Mutex
	sink := func(ev Event) {
		writeMu.Lock()
		defer writeMu.Unlock()

		payload, err := json.Marshal(ev)
		if err != nil {
			slog.Error("Failed to encode assistant event", "error", err)
			return
		}
		// Writes use their own deadline: the request context ends with the
		// read loop, but a final message may still be in flight.
		writeCtx, writeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer writeCancel()
		if err := ws.Write(writeCtx, websocket.MessageText, payload); err != nil {
			slog.Debug("Assistant websocket write failed", "error", err)
		}
	}

	conv := NewConversation(h.engine, h.delay, h.jitter, sink)
	defer conv.Close()

	slog.Info("Assistant conversation started", "conversation_id", conv.ID, "ip", r.RemoteAddr)

	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || ctx.Err() != nil {
				slog.Info("Assistant conversation ended", "conversation_id", conv.ID, "turns", len(conv.History()))
			} else {
				slog.Debug("Assistant websocket read failed", "conversation_id", conv.ID, "error", err)
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Debug("Ignoring malformed assistant message", "conversation_id", conv.ID, "error", err)
			continue
		}

		switch msg.Type {
		case "message":
			text := msg.Text
			if text == "" {
				text = msg.Content
			}
			if strings.TrimSpace(text) == "" {
				continue
			}
			conv.Post(text)
		case "quick_action":
			conv.QuickAction(msg.Action)
		default:
			slog.Debug("Unknown assistant message type", "conversation_id", conv.ID, "type", msg.Type)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode assistant response", "error", err)
	}
}
