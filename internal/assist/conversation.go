package assist

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pickhealth/platform/internal/domain"
)

// Event types delivered to a conversation's sink.
const (
	EventTyping      = "typing"
	EventMessage     = "message"
	EventSuggestions = "suggestions"
)

// Event is a single outbound conversation update.
type Event struct {
	Type        string       `json:"type"`
	Turn        *domain.Turn `json:"turn,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// Sink receives conversation events in delivery order.
type Sink func(Event)

// Conversation holds the in-memory state of one assistant chat: the ordered
// turn history and the timers for in-flight delayed replies. Turns are never
// persisted; closing the conversation discards them.
//
// Each Post schedules an independent delayed reply. Delays are randomized
// per call, so two in-flight replies have no ordering guarantee between
// them — Close cancels whatever has not fired yet.
type Conversation struct {
	ID     string
	engine *Engine
	sink   Sink

	delay  time.Duration
	jitter time.Duration

	mu        sync.Mutex
	turns     []domain.Turn
	timers    map[int]*time.Timer
	nextTimer int
	closed    bool
}

// NewConversation starts a conversation. The welcome message and the initial
// suggestion chips are emitted immediately.
func NewConversation(engine *Engine, delay, jitter time.Duration, sink Sink) *Conversation {
	c := &Conversation{
		ID:     uuid.NewString(),
		engine: engine,
		sink:   sink,
		delay:  delay,
		jitter: jitter,
		timers: make(map[int]*time.Timer),
	}

	welcome := c.appendTurn(domain.SenderBot, engine.Welcome())
	sink(Event{Type: EventMessage, Turn: &welcome})
	sink(Event{Type: EventSuggestions, Suggestions: engine.InitialSuggestions()})
	return c
}

// Post records a user message, emits a typing indicator, and schedules the
// reply after the randomized delay. Posting while a reply is pending is
// legal and simply schedules another independent reply.
func (c *Conversation) Post(message string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	turn := c.appendTurnLocked(domain.SenderUser, message)
	c.mu.Unlock()

	// Emit the user turn before scheduling so the echo always precedes the
	// reply, even with a zero delay.
	c.sink(Event{Type: EventMessage, Turn: &turn})
	c.sink(Event{Type: EventTyping})

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	id := c.nextTimer
	c.nextTimer++
	c.timers[id] = time.AfterFunc(c.replyDelay(), func() {
		c.deliverReply(id, message)
	})
	c.mu.Unlock()
}

// QuickAction records the fixed reply for a quick-action button. Quick
// actions answer immediately, with no simulated typing delay.
func (c *Conversation) QuickAction(action string) {
	reply, ok := c.engine.QuickAction(action)
	if !ok {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	turn := c.appendTurnLocked(domain.SenderBot, reply)
	c.mu.Unlock()

	c.sink(Event{Type: EventMessage, Turn: &turn})
}

// History returns a copy of the turns so far.
func (c *Conversation) History() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Turn(nil), c.turns...)
}

// Close cancels every in-flight reply and marks the conversation finished.
// Further posts become no-ops. Idempotent.
func (c *Conversation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}

func (c *Conversation) deliverReply(timerID int, message string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	delete(c.timers, timerID)
	reply := c.engine.Respond(message)
	turn := c.appendTurnLocked(domain.SenderBot, reply)
	c.mu.Unlock()

	c.sink(Event{Type: EventMessage, Turn: &turn})
	c.sink(Event{Type: EventSuggestions, Suggestions: c.engine.Suggestions(message)})
}

func (c *Conversation) replyDelay() time.Duration {
	d := c.delay
	if c.jitter > 0 {
		d += time.Duration(rand.Int63n(int64(c.jitter)))
	}
	return d
}

func (c *Conversation) appendTurn(sender domain.Sender, text string) domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.appendTurnLocked(sender, text)
}

func (c *Conversation) appendTurnLocked(sender domain.Sender, text string) domain.Turn {
	turn := domain.Turn{Sender: sender, Text: text, Timestamp: time.Now()}
	c.turns = append(c.turns, turn)
	return turn
}
