// Package fallback answers chat messages without the generative service: a
// keyword classifier picks a topic and the corpus supplies the canned text.
package fallback

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Topic identifies the subject of a canned answer.
type Topic string

const (
	TopicGreeting        Topic = "greeting"
	TopicProjects        Topic = "projects"
	TopicAIExpertise     Topic = "aiExpertise"
	TopicTechStack       Topic = "techStack"
	TopicExperience      Topic = "experience"
	TopicCollaboration   Topic = "collaboration"
	TopicReactExpertise  Topic = "reactExpertise"
	TopicPythonExpertise Topic = "pythonExpertise"
	TopicCloudExpertise  Topic = "cloudExpertise"
	TopicGeneral         Topic = "general"
)

// Topics returns every topic in classification order, general last.
func Topics() []Topic {
	out := make([]Topic, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.topic)
	}
	return append(out, TopicGeneral)
}

// wholeWordMaxRunes is the longest keyword that must match a whole word.
// Two and three letter keywords ("hi", "ai", "aws") would otherwise fire
// inside unrelated words like "his", "detail" or "laws".
const wholeWordMaxRunes = 3

type rule struct {
	topic    Topic
	keywords []string
}

// rules is evaluated top to bottom; the first topic with a matching keyword
// wins.
var rules = []rule{
	{topic: TopicGreeting, keywords: []string{
		"hello", "hi", "hey",
		"hallo", "servus", "hola", "buenas", "bonjour", "salut", "coucou",
		"হ্যালো", "নমস্কার", "আসসালামু",
	}},
	{topic: TopicProjects, keywords: []string{
		"project", "portfolio", "work", "built",
		"projekt", "proyecto", "projet", "trabajo", "travail", "réalisation",
		"প্রজেক্ট", "প্রকল্প", "পোর্টফোলিও",
	}},
	{topic: TopicAIExpertise, keywords: []string{
		"ai", "artificial intelligence", "machine learning", "ml",
		"ki", "ia", "künstliche intelligenz", "maschinelles lernen",
		"inteligencia artificial", "aprendizaje automático",
		"intelligence artificielle", "apprentissage automatique",
		"এআই", "কৃত্রিম বুদ্ধিমত্তা", "মেশিন লার্নিং",
	}},
	{topic: TopicTechStack, keywords: []string{
		"skill", "technology", "tech", "stack",
		"fähigkeit", "kenntnis", "habilidad", "tecnolog", "compétence",
		"দক্ষতা", "প্রযুক্তি",
	}},
	{topic: TopicExperience, keywords: []string{
		"experience", "background", "career",
		"erfahrung", "werdegang", "laufbahn", "experiencia", "trayectoria", "carrera",
		"expérience", "parcours", "carrière",
		"অভিজ্ঞতা", "ক্যারিয়ার",
	}},
	{topic: TopicCollaboration, keywords: []string{
		"contact", "hire", "collaborate", "opportunity",
		"kontakt", "zusammenarbeit", "einstellen", "contacto", "contratar", "colabor",
		"oportunidad", "contacter", "embaucher", "collabor", "opportunité",
		"যোগাযোগ", "সহযোগিতা", "নিয়োগ",
	}},
	{topic: TopicReactExpertise, keywords: []string{
		"react", "next", "javascript", "typescript",
	}},
	{topic: TopicPythonExpertise, keywords: []string{
		"python", "tensorflow", "pytorch",
	}},
	{topic: TopicCloudExpertise, keywords: []string{
		"cloud", "aws", "azure", "deployment",
		"bereitstellung", "nube", "despliegue", "déploiement", "ক্লাউড",
	}},
}

// Classify routes message to a topic. priorTurns is the length of the
// conversation history sent with the message; a message that matches no
// keyword on the first real exchange (priorTurns <= 1) is answered with the
// greeting rather than the generic text.
func Classify(message string, priorTurns int) Topic {
	lower := strings.ToLower(message)
	words := wordSet(lower)
	for _, r := range rules {
		if matchesAny(lower, words, r.keywords) {
			return r.topic
		}
	}
	if priorTurns <= 1 {
		return TopicGreeting
	}
	return TopicGeneral
}

func matchesAny(lower string, words map[string]struct{}, keywords []string) bool {
	for _, kw := range keywords {
		if utf8.RuneCountInString(kw) <= wholeWordMaxRunes {
			if _, ok := words[kw]; ok {
				return true
			}
			continue
		}
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func wordSet(lower string) map[string]struct{} {
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsMark(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
