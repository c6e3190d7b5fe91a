package output

import (
	"strings"
	"unicode/utf8"
)

// MinGap is the minimum number of spaces between content and an inline
// comment.
const MinGap = 2

// commentMarker separates content from an inline comment.
const commentMarker = " # "

// splitInlineComment splits line at its last " # ". The returned comment
// starts at the "#". Whole-line comments (optional indent, then "#") are not
// inline comments.
func splitInlineComment(line string) (content, comment string, ok bool) {
	if isHeadComment(line) {
		return line, "", false
	}
	idx := strings.LastIndex(line, commentMarker)
	if idx < 0 {
		return line, "", false
	}
	return line[:idx], line[idx+1:], true
}

func isHeadComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "#")
}

// inlineComment is splitInlineComment restricted to comments that match maps
// to a non-empty key. A nil match accepts every inline comment.
func inlineComment(line string, match KeyFunc) (content, comment string, ok bool) {
	content, comment, ok = splitInlineComment(line)
	if !ok || match == nil || match(commentText(comment)) != "" {
		return content, comment, ok
	}
	return line, "", false
}

// width is the display width of s, counting runes rather than bytes so
// accented phrases and values line up.
func width(s string) int {
	return utf8.RuneCountInString(s)
}

// AlignComments lines up inline comments into a column per block, where a
// block is a run of consecutive lines that all carry an inline comment. The
// column sits MinGap past the widest content of the block. Other lines are
// left untouched. When match is non-nil, a " # " only counts as an inline
// comment if match knows the text after it, so values such as
// "see ticket # 42" are never padded.
func AlignComments(text string, match KeyFunc) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))

	for i := 0; i < len(lines); {
		if _, _, ok := inlineComment(lines[i], match); !ok {
			out[i] = lines[i]
			i++
			continue
		}

		start, widest := i, 0
		var contents, comments []string
		for ; i < len(lines); i++ {
			content, comment, ok := inlineComment(lines[i], match)
			if !ok {
				break
			}
			content = strings.TrimRight(content, " ")
			contents = append(contents, content)
			comments = append(comments, comment)
			widest = max(widest, width(content))
		}
		for j := range contents {
			pad := widest + MinGap - width(contents[j])
			out[start+j] = contents[j] + strings.Repeat(" ", pad) + comments[j]
		}
	}
	return strings.Join(out, "\n")
}
