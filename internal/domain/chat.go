package domain

import "strings"

// Sender identifies who wrote a conversation turn.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ParseSender accepts the sender labels used by chat widgets. "ai" and "bot"
// are treated as the assistant.
func ParseSender(s string) (Sender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return SenderUser, true
	case "assistant", "ai", "bot":
		return SenderAssistant, true
	default:
		return "", false
	}
}

// ConversationTurn is a single message of the visitor's chat history. Turns are
// supplied by the caller with every request and never stored.
type ConversationTurn struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Role maps the sender onto the chat completion role. Anything that is not
// the visitor is replayed as the assistant.
func (t ConversationTurn) Role() string {
	if t.Sender == SenderUser {
		return "user"
	}
	return "assistant"
}

// GenerationRequest is everything the generative service needs for one reply.
type GenerationRequest struct {
	Model        string
	SystemPrompt string
	History      []ConversationTurn
	UserMessage  string
	Temperature  float32
	MaxTokens    int
}
