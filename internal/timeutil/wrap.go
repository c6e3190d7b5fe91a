package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ahmetb/friendly-dates/internal/locale"
)

const (
	rightToLeftEmbedding = "\u202B"
	popDirectional       = "\u202C"
)

// wrapDirection embeds text in RTL directional marks for RTL locales.
func wrapDirection(text string, cfg *locale.Config) string {
	if !cfg.IsRTL() {
		return text
	}
	return rightToLeftEmbedding + text + popDirectional
}

var firstNumber = regexp.MustCompile(`\d+`)

var spokenNumbers = map[int]string{1: "one", 2: "two", 3: "three"}

// wrapAccessible wraps text in a <time> element carrying the target's UTC
// timestamp and a spoken variant of the text as aria-label. Neither value is
// HTML-escaped.
func wrapAccessible(text string, target time.Time) string {
	label := text
	if loc := firstNumber.FindStringIndex(text); loc != nil {
		if n, err := strconv.Atoi(text[loc[0]:loc[1]]); err == nil {
			if word, ok := spokenNumbers[n]; ok {
				label = text[:loc[0]] + word + text[loc[1]:]
			}
		}
	}
	return fmt.Sprintf(`<time datetime="%s" aria-label="%s">%s</time>`,
		target.UTC().Format("2006-01-02T15:04:05.000Z"), label, text)
}
