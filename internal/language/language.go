// Package language guesses which of the supported site languages a visitor
// is writing in.
package language

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// Language is one of the languages the site answers in.
type Language string

const (
	English Language = "en"
	German  Language = "de"
	Spanish Language = "es"
	French  Language = "fr"
	Bengali Language = "bn"
)

// MinDetectionLength is the shortest trimmed message, in runes, handed to the
// statistical detector.
const MinDetectionLength = 10

var all = []Language{English, German, Spanish, French, Bengali}

var labels = map[Language]string{
	English: "English",
	German:  "German",
	Spanish: "Spanish",
	French:  "French",
	Bengali: "Bengali",
}

var isoToLanguage = map[string]Language{
	"eng": English,
	"deu": German,
	"ger": German,
	"spa": Spanish,
	"fra": French,
	"fre": French,
	"ben": Bengali,
}

// characterHeuristics are checked in order against the lower-cased text.
// German runs before French because both contain ü; Spanish runs before
// French because both contain é.
var characterHeuristics = []struct {
	chars    string
	language Language
}{
	{chars: "äöüß", language: German},
	{chars: "áéíóúñ¡¿", language: Spanish},
	{chars: "àâçéèêëîïôùûüœ", language: French},
}

// All returns the supported languages in a stable order.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// Parse maps a two-letter code onto a supported Language.
func Parse(code string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	_, ok := labels[l]
	return l, ok
}

// Label is the English name of the language, used in model instructions.
func (l Language) Label() string {
	if label, ok := labels[l]; ok {
		return label
	}
	return labels[English]
}

// Detect returns the best guess for text. It never fails: anything blank,
// too short or unrecognised is English.
func Detect(text string) Language {
	if strings.TrimSpace(text) == "" {
		return English
	}

	lower := strings.ToLower(text)
	for _, h := range characterHeuristics {
		if strings.ContainsAny(lower, h.chars) {
			return h.language
		}
	}
	if containsBengali(text) {
		return Bengali
	}

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < MinDetectionLength {
		return English
	}
	// The detector is unrestricted so Italian, Dutch and the like are
	// recognised as themselves and end up English rather than the closest
	// supported language.
	return fromISO(whatlanggo.Detect(trimmed).Lang.Iso6393())
}

func fromISO(code string) Language {
	if l, ok := isoToLanguage[code]; ok {
		return l
	}
	return English
}

func containsBengali(text string) bool {
	for _, r := range text {
		if r >= 0x0980 && r <= 0x09FF {
			return true
		}
	}
	return false
}
