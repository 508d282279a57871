// Package assist implements the scripted PickHealth assistant: a rule-based
// text-to-reply mapper plus the conversation state around it.
package assist

import (
	"strings"
)

// Engine maps free-text input to canned replies. It is stateless and safe
// for concurrent use; per-conversation state lives in Conversation.
type Engine struct{}

// NewEngine creates a response engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Respond returns the reply for a message. Rules are evaluated in order
// against the lower-cased text and the first match wins; when nothing
// matches, the generic fallback prompt is returned.
func (e *Engine) Respond(message string) string {
	lower := strings.ToLower(message)
	for _, r := range replyRules {
		if r.matches(lower) {
			return r.reply
		}
	}
	return fallbackReply
}

func (r rule) matches(lower string) bool {
	for _, kw := range r.all {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, kw := range r.any {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Suggestions returns the next suggestion chips for the message just sent.
// This is an independent rule set from Respond: chips are cosmetic and never
// restrict which replies a user can reach.
func (e *Engine) Suggestions(message string) []string {
	lower := strings.ToLower(message)
	for _, b := range suggestionBuckets {
		for _, kw := range b.any {
			if strings.Contains(lower, kw) {
				return b.chips
			}
		}
	}
	return defaultSuggestions
}

// QuickAction returns the fixed reply for a quick-action button. The second
// return is false for unknown actions.
func (e *Engine) QuickAction(action string) (string, bool) {
	reply, ok := quickActionReplies[action]
	return reply, ok
}

// Welcome returns the conversation opener.
func (e *Engine) Welcome() string {
	return welcomeMessage
}

// InitialSuggestions returns the chips shown before any message is sent.
func (e *Engine) InitialSuggestions() []string {
	return append([]string(nil), initialSuggestions...)
}
