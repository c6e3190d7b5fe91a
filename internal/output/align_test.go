package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitInlineComment(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantContent string
		wantComment string
		wantOK      bool
	}{
		{"inline", "createdAt: 2024-01-15 # Yesterday", "createdAt: 2024-01-15", "# Yesterday", true},
		{"none", "replicas: 3", "replicas: 3", "", false},
		{"head comment", "  # two hours ago", "  # two hours ago", "", false},
		{"head comment at column 0", "# Just now", "# Just now", "", false},
		{"last marker wins", "note: a # b # a week ago", "note: a # b", "# a week ago", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, comment, ok := splitInlineComment(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantContent, content)
			assert.Equal(t, tt.wantComment, comment)
		})
	}
}

func TestAlignComments_Block(t *testing.T) {
	input := "a: 2024-01-14 # Yesterday\nlonger: 2024-01-15T11:00:00Z # an hour ago\nb: 1 # Just now\n"
	got := AlignComments(input, nil)
	assert.Equal(t,
		"a: 2024-01-14"+spaces(17)+"# Yesterday\n"+
			"longer: 2024-01-15T11:00:00Z"+spaces(2)+"# an hour ago\n"+
			"b: 1"+spaces(26)+"# Just now\n", got)
}

func spaces(n int) string { return strings.Repeat(" ", n) }

func TestAlignComments_BrokenByBareLine(t *testing.T) {
	input := "a: 1 # Just now\nb: 2\nc: longer-value # Yesterday"
	assert.Equal(t, "a: 1  # Just now\nb: 2\nc: longer-value  # Yesterday", AlignComments(input, nil))
}

func TestAlignComments_RuneWidth(t *testing.T) {
	input := "é: 1 # à l'instant\nab: 2 # hier"
	got := strings.Split(AlignComments(input, nil), "\n")
	assert.Equal(t, "é: 1   # à l'instant", got[0])
	assert.Equal(t, "ab: 2  # hier", got[1])
}

func TestAlignComments_Idempotent(t *testing.T) {
	input := "x: 1 # Just now\nlong-key: 2 # Yesterday\n"
	once := AlignComments(input, nil)
	assert.Equal(t, once, AlignComments(once, nil))
}

func TestAlignComments_Passthrough(t *testing.T) {
	for _, in := range []string{"", "replicas: 3\nimage: nginx\n", "# Yesterday\nreplicas: 3\n"} {
		assert.Equal(t, in, AlignComments(in, nil))
	}
}

func TestAlignComments_OnlyKnownComments(t *testing.T) {
	known := KeyByText(map[string]string{"Just now": "just-now"})
	input := "note: \"see ticket # 42\"\nat: 2024-01-15 # Just now\nid: x # Just now\n"
	assert.Equal(t,
		"note: \"see ticket # 42\"\n"+
			"at: 2024-01-15  # Just now\n"+
			"id: x"+spaces(11)+"# Just now\n",
		AlignComments(input, known))
}
