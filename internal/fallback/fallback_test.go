package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/language"
)

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify_Examples(t *testing.T) {
	require.Equal(t, TopicProjects, Classify("Can you tell me about his projects?", 3))
	require.Equal(t, TopicGreeting, Classify("hello there", 3))
	require.Equal(t, TopicGeneral, Classify("what about quantum computing", 2))
}

func TestClassify_Table(t *testing.T) {
	cases := []struct {
		msg  string
		want Topic
	}{
		{"Hey!", TopicGreeting},
		{"Show me the portfolio", TopicProjects},
		{"What has he built?", TopicProjects},
		{"Does he do AI?", TopicAIExpertise},
		{"any machine learning work experience", TopicProjects},
		{"thoughts on machine learning", TopicAIExpertise},
		{"Which skills does he have", TopicTechStack},
		{"what is his background", TopicExperience},
		{"Can I hire him?", TopicCollaboration},
		{"Is there an opportunity to collaborate", TopicCollaboration},
		{"Does he know TypeScript", TopicReactExpertise},
		{"Next.js or Remix", TopicReactExpertise},
		{"PyTorch vs TensorFlow", TopicPythonExpertise},
		{"AWS or Azure", TopicCloudExpertise},
		{"deployment pipelines", TopicCloudExpertise},
		{"Erzähl mir von deinen Projekten", TopicProjects},
		{"¿Cuál es su experiencia?", TopicExperience},
		{"Parle-moi de ton travail", TopicProjects},
		{"তার প্রজেক্ট সম্পর্কে বলুন", TopicProjects},
		{"বিস্তারিত অভিজ্ঞতা", TopicExperience},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.msg, 4))
		})
	}
}

func TestClassify_ShortKeywordsMatchWholeWordsOnly(t *testing.T) {
	// "his" must not be read as "hi", "details" must not be read as "ai",
	// "html" must not be read as "ml".
	require.Equal(t, TopicGeneral, Classify("what are his details in html", 3))
	require.Equal(t, TopicGreeting, Classify("hi, anyone there?", 3))
	require.Equal(t, TopicAIExpertise, Classify("is he into ML?", 3))
}

func TestClassify_FirstRuleWins(t *testing.T) {
	// react and cloud both match; reactExpertise is checked first.
	require.Equal(t, TopicReactExpertise, Classify("react apps on the cloud", 3))
	// greeting beats everything.
	require.Equal(t, TopicGreeting, Classify("hello, what tech stack?", 3))
}

func TestClassify_FirstContactWithoutKeywordIsGreeting(t *testing.T) {
	require.Equal(t, TopicGreeting, Classify("what about quantum computing", 0))
	require.Equal(t, TopicGreeting, Classify("what about quantum computing", 1))
	require.Equal(t, TopicGeneral, Classify("what about quantum computing", 2))
}

func TestClassify_FirstContactStillRoutesKeywords(t *testing.T) {
	require.Equal(t, TopicTechStack, Classify("What tech stack do you use?", 0))
}

func TestClassify_EmptyMessage(t *testing.T) {
	require.Equal(t, TopicGreeting, Classify("", 0))
	require.Equal(t, TopicGeneral, Classify("", 5))
}

func TestTopics_OrderEndsWithGeneral(t *testing.T) {
	topics := Topics()
	require.Len(t, topics, 10)
	require.Equal(t, TopicGreeting, topics[0])
	require.Equal(t, TopicGeneral, topics[len(topics)-1])
}

// ---------------------------------------------------------------------------
// Corpus
// ---------------------------------------------------------------------------

func TestDefaultCorpus_IsComplete(t *testing.T) {
	c := DefaultCorpus()
	for _, topic := range Topics() {
		for _, l := range language.All() {
			text := c.Text(topic, l)
			require.NotEmpty(t, strings.TrimSpace(text), "topic=%s lang=%s", topic, l)
			require.Equal(t, defaultEntries()[topic][l], text, "topic=%s lang=%s", topic, l)
		}
	}
	for _, l := range language.All() {
		require.NotEmpty(t, defaultQuotaNotices()[l], "lang=%s", l)
		require.Equal(t, defaultQuotaNotices()[l], c.QuotaNotice(l))
	}
}

func TestCorpus_MissingTranslationFallsBackToEnglish(t *testing.T) {
	entries := defaultEntries()
	delete(entries[TopicProjects], language.Bengali)
	notices := defaultQuotaNotices()
	delete(notices, language.French)

	c, err := NewCorpus(entries, notices)
	require.NoError(t, err)
	require.Equal(t, entries[TopicProjects][language.English], c.Text(TopicProjects, language.Bengali))
	require.Equal(t, notices[language.English], c.QuotaNotice(language.French))
}

func TestCorpus_UnknownTopicIsGeneral(t *testing.T) {
	c := DefaultCorpus()
	require.Equal(t, c.Text(TopicGeneral, language.German), c.Text(Topic("weather"), language.German))
}

func TestCorpus_IsIsolatedFromSourceMaps(t *testing.T) {
	entries := defaultEntries()
	notices := defaultQuotaNotices()
	c, err := NewCorpus(entries, notices)
	require.NoError(t, err)

	want := c.Text(TopicGreeting, language.English)
	entries[TopicGreeting][language.English] = "mutated"
	notices[language.English] = "mutated"
	require.Equal(t, want, c.Text(TopicGreeting, language.English))
	require.NotEqual(t, "mutated", c.QuotaNotice(language.English))
}

func TestNewCorpus_Validation(t *testing.T) {
	entries := defaultEntries()
	delete(entries, TopicCloudExpertise)
	_, err := NewCorpus(entries, defaultQuotaNotices())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cloudExpertise")

	_, err = NewCorpus(defaultEntries(), map[language.Language]string{language.German: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota notice")
}

func TestCorpus_Answer(t *testing.T) {
	c := DefaultCorpus()
	topic, text := c.Answer("Which cloud do you deploy to?", 3, language.Spanish)
	require.Equal(t, TopicCloudExpertise, topic)
	require.Equal(t, c.Text(TopicCloudExpertise, language.Spanish), text)
}
