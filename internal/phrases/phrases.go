// Package phrases holds the Ukrainian vocabulary of the assistant: trigger
// phrases it listens for and the replies it gives.
package phrases

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WakeWord must start every utterance addressed to the assistant.
const WakeWord = "аврора"

// StartupCommand is dispatched once when the assistant starts.
const StartupCommand = WakeWord + " вітаю"

// NumericSlot is the slot label that only accepts integers.
const NumericSlot = "число"

// Key identifies a reply template.
type Key string

// T formats the reply template for key. Unknown keys are returned as is.
func T(key Key, args ...any) string {
	tmpl, ok := replies[key]
	if !ok {
		return string(key)
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// HasPrefixAny returns the first phrase text starts with, ignoring case.
func HasPrefixAny(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if _, ok := CutPrefixFold(text, p); ok {
			return p, true
		}
	}
	return "", false
}

// CutPrefixFold is strings.CutPrefix with case-insensitive comparison. The
// rest keeps the case it had in text.
func CutPrefixFold(text, prefix string) (rest string, ok bool) {
	i := 0
	for n := utf8.RuneCountInString(prefix); n > 0; n-- {
		if i >= len(text) {
			return text, false
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	if !strings.EqualFold(text[:i], prefix) {
		return text, false
	}
	return text[i:], true
}

// HasSuffixFold reports whether text ends with suffix, ignoring case, and
// returns the index where the suffix starts.
func HasSuffixFold(text, suffix string) (int, bool) {
	i := len(text)
	for n := utf8.RuneCountInString(suffix); n > 0; n-- {
		if i == 0 {
			return 0, false
		}
		_, size := utf8.DecodeLastRuneInString(text[:i])
		i -= size
	}
	return i, strings.EqualFold(text[i:], suffix)
}

// LastIndexFold returns the byte index of the last case-insensitive
// occurrence of sub in text, or -1.
func LastIndexFold(text, sub string) int {
	for i := len(text); i >= 0; i-- {
		if i < len(text) && !utf8.RuneStart(text[i]) {
			continue
		}
		if _, ok := CutPrefixFold(text[i:], sub); ok {
			return i
		}
	}
	return -1
}

// ToLatinLayout maps Ukrainian letters to the Latin keys at the same
// keyboard position. Other runes pass through unchanged.
func ToLatinLayout(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if en, ok := latinLayout[unicode.ToLower(r)]; ok {
			if unicode.IsUpper(r) {
				en = strings.ToUpper(en)
			}
			b.WriteString(en)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var latinLayout = map[rune]string{
	'й': "q", 'ц': "w", 'у': "e", 'к': "r", 'е': "t", 'н': "y", 'г': "u", 'ш': "i", 'щ': "o", 'з': "p", 'х': "[",
	'ї': "]", 'ф': "a", 'і': "s", 'в': "d", 'а': "f", 'п': "g", 'р': "h", 'о': "j", 'л': "k", 'д': "l", 'ж': ";",
	'є': "'", 'я': "z", 'ч': "x", 'с': "c", 'м': "v", 'и': "b", 'т': "n", 'ь': "m", 'б': ",", 'ю': ".",
}

// DaysOfWeek is indexed Monday first.
var DaysOfWeek = []string{"понеділок", "вівторок", "середа", "четвер", "п'ятниця", "субота", "неділя"}
