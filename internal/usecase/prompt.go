package usecase

import (
	_ "embed"
	"fmt"
	"strings"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/language"
)

//go:embed knowledge_base.txt
var defaultKnowledgeBase string

// DefaultKnowledgeBase returns the built-in professional profile.
func DefaultKnowledgeBase() string {
	return strings.TrimSpace(defaultKnowledgeBase)
}

const englishPolicy = "Default to English, but if the user clearly writes in another language " +
	"you must immediately mirror their language while keeping responses concise, professional, and friendly."

func languageInstruction(l language.Language) string {
	if l == language.English {
		return englishPolicy
	}
	label := l.Label()
	return fmt.Sprintf(
		"The user prefers %s. Respond entirely in %s unless the user switches languages. "+
			"Maintain clarity, professionalism, and approachability.",
		label, label,
	)
}

func buildSystemPrompt(knowledgeBase string, l language.Language) string {
	return fmt.Sprintf("%s\n\nLanguage policy: %s", strings.TrimSpace(knowledgeBase), languageInstruction(l))
}

// trailingHistory keeps the most recent n turns.
func trailingHistory(history []domain.ConversationTurn, n int) []domain.ConversationTurn {
	if n <= 0 || len(history) == 0 {
		return nil
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]domain.ConversationTurn, len(history))
	copy(out, history)
	return out
}
