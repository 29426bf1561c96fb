package fallback

import (
	"errors"
	"fmt"

	"portfolio-assistant/internal/language"
)

// Corpus holds the canned answers per topic and language together with the
// quota notice. It is built once at startup and never modified, so a single
// value can be shared by concurrent requests.
type Corpus struct {
	entries map[Topic]map[language.Language]string
	notices map[language.Language]string
}

// NewCorpus copies entries and notices into an immutable Corpus. Every topic
// needs at least its English text and the English notice must be present;
// other languages fall back to English on lookup.
func NewCorpus(entries map[Topic]map[language.Language]string, notices map[language.Language]string) (*Corpus, error) {
	if notices[language.English] == "" {
		return nil, errors.New("fallback: english quota notice must not be empty")
	}
	c := &Corpus{
		entries: make(map[Topic]map[language.Language]string, len(entries)),
		notices: make(map[language.Language]string, len(notices)),
	}
	for _, topic := range Topics() {
		texts := entries[topic]
		if texts[language.English] == "" {
			return nil, fmt.Errorf("fallback: topic %q has no english text", topic)
		}
		copied := make(map[language.Language]string, len(texts))
		for l, text := range texts {
			copied[l] = text
		}
		c.entries[topic] = copied
	}
	for l, notice := range notices {
		c.notices[l] = notice
	}
	return c, nil
}

// DefaultCorpus returns the corpus shipped with the site.
func DefaultCorpus() *Corpus {
	c, err := NewCorpus(defaultEntries(), defaultQuotaNotices())
	if err != nil {
		panic(err)
	}
	return c
}

// Text returns the answer for topic in l, or the English answer when no
// translation exists. Unknown topics resolve to the general answer.
func (c *Corpus) Text(topic Topic, l language.Language) string {
	texts, ok := c.entries[topic]
	if !ok {
		texts = c.entries[TopicGeneral]
	}
	if text := texts[l]; text != "" {
		return text
	}
	return texts[language.English]
}

// QuotaNotice is prepended to fallback answers when the generative service
// refused the request because of its usage limit.
func (c *Corpus) QuotaNotice(l language.Language) string {
	if notice := c.notices[l]; notice != "" {
		return notice
	}
	return c.notices[language.English]
}

// Answer classifies message and returns the topic with its localized text.
func (c *Corpus) Answer(message string, priorTurns int, l language.Language) (Topic, string) {
	topic := Classify(message, priorTurns)
	return topic, c.Text(topic, l)
}
