package output

import (
	"strings"
)

// KeyFunc maps the text of a comment (after "# ") to its color key. An empty
// key leaves the comment uncolored.
type KeyFunc func(comment string) string

// KeyByText returns a KeyFunc looking comments up in keys.
func KeyByText(keys map[string]string) KeyFunc {
	return func(comment string) string { return keys[comment] }
}

// FormatOutput aligns the inline comments key knows, then colors comments
// when cm is non-nil.
func FormatOutput(text string, cm *ColorManager, key KeyFunc) string {
	aligned := AlignComments(text, key)
	if cm == nil || key == nil {
		return aligned
	}
	return Colorize(aligned, cm, key)
}

// Colorize colors inline and whole-line comments, "#" included. Content is
// never colored.
func Colorize(text string, cm *ColorManager, key KeyFunc) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = colorizeLine(line, cm, key)
	}
	return strings.Join(lines, "\n")
}

func colorizeLine(line string, cm *ColorManager, key KeyFunc) string {
	if content, comment, ok := inlineComment(line, key); ok {
		return content + " " + cm.Wrap(comment, key(commentText(comment)))
	}
	if isHeadComment(line) {
		at := strings.Index(line, "#")
		if k := key(commentText(line[at:])); k != "" {
			return line[:at] + cm.Wrap(line[at:], k)
		}
	}
	return line
}

func commentText(comment string) string {
	return strings.TrimSpace(strings.TrimPrefix(comment, "#"))
}
