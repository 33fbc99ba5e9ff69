// Package phonetic collapses NATO phonetic-alphabet words in radio
// transcripts to their single letters.
package phonetic

import (
	"regexp"
	"sort"
	"strings"
)

// ANSI bold escape sequence framing the emphasized letter.
const (
	boldOn  = "\x1b[1m"
	boldOff = "\x1b[0m"
)

// letterByWord maps each lowercase phonetic word to its letter.
var letterByWord = map[string]string{
	"alpha": "A", "bravo": "B", "charlie": "C", "delta": "D",
	"echo": "E", "foxtrot": "F", "golf": "G", "hotel": "H",
	"india": "I", "juliet": "J", "kilo": "K", "lima": "L",
	"mike": "M", "november": "N", "oscar": "O", "papa": "P",
	"quebec": "Q", "romeo": "R", "sierra": "S", "tango": "T",
	"uniform": "U", "victor": "V", "whiskey": "W", "xray": "X",
	"yankee": "Y", "zulu": "Z",
}

// wordPattern matches any phonetic word on whole-word boundaries,
// case-insensitively.
var wordPattern = buildPattern()

func buildPattern() *regexp.Regexp {
	words := make([]string, 0, len(letterByWord))
	for w := range letterByWord {
		words = append(words, regexp.QuoteMeta(w))
	}
	sort.Strings(words)
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

// Translate replaces every whole-word phonetic-alphabet match in text with
// its single uppercase letter. The word "november" is the one special case:
// its letter is wrapped in a bold escape sequence so the N stands out in
// the rendered transcript. All other text passes through unchanged.
//
// Translate is pure and idempotent: single letters are not phonetic words,
// so running it over its own output changes nothing.
func Translate(text string) string {
	return wordPattern.ReplaceAllStringFunc(text, func(match string) string {
		word := strings.ToLower(match)
		letter := letterByWord[word]
		if word == "november" {
			return boldOn + letter + boldOff
		}
		return letter
	})
}
