package annotate

import (
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/ahmetb/friendly-dates/internal/timeutil"
)

// Target is a timestamp scalar found in a document.
type Target struct {
	// KeyNode is the mapping key holding the value, or nil for sequence
	// items and a bare root scalar.
	KeyNode   *yaml.Node
	ValueNode *yaml.Node
	// Path is a dotted path to the value, e.g. "metadata.creationTimestamp"
	// or "events[2].at".
	Path   string
	Moment time.Time
}

// walker collects timestamp targets in document order.
type walker struct {
	keys     sets.Set[string] // restricts matches to these mapping keys when non-empty
	location *time.Location
	targets  []Target
}

func (w *walker) walk(node, keyNode *yaml.Node, path string) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.DocumentNode:
		for _, c := range node.Content {
			w.walk(c, nil, path)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			w.walk(v, k, joinPath(path, k.Value))
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			w.walk(item, nil, path+"["+strconv.Itoa(i)+"]")
		}
	case yaml.ScalarNode:
		if len(w.keys) > 0 && (keyNode == nil || !w.keys.Has(keyNode.Value)) {
			return
		}
		if t, ok := w.timestamp(node); ok {
			w.targets = append(w.targets, Target{KeyNode: keyNode, ValueNode: node, Path: path, Moment: t})
		}
	}
}

// timestamp reports whether a scalar holds a moment. Plain scalars resolved
// as !!timestamp and strings that parse as dates qualify; numbers, booleans
// and nulls never do.
func (w *walker) timestamp(node *yaml.Node) (time.Time, bool) {
	switch node.ShortTag() {
	case "!!timestamp", "!!str":
	default:
		return time.Time{}, false
	}
	v := strings.TrimSpace(node.Value)
	if len(v) < len("2006-01-02") || !startsWithDigit(v) && !strings.Contains(v, ",") {
		return time.Time{}, false
	}
	t, err := timeutil.ParseMoment(v, w.location)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
