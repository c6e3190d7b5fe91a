// Package annotate adds relative time comments to the timestamps of YAML
// documents.
package annotate

import (
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/klog/v2"

	"github.com/ahmetb/friendly-dates/internal/timeutil"
)

// Options configures annotation.
type Options struct {
	// Above places comments on their own line above the field instead of
	// at the end of the value line.
	Above bool
	// Now is the reference moment for every phrase.
	Now time.Time
	// Format is passed to the formatter for every timestamp.
	Format timeutil.Options
	// Keys, when non-empty, limits annotation to values of these mapping keys.
	Keys sets.Set[string]
	// Location interprets zone-less timestamps. Defaults to Now's location.
	Location *time.Location
}

// Annotation records the phrase attached to one timestamp.
type Annotation struct {
	Path   string
	Value  string
	Result timeutil.Result
}

// Annotate finds the timestamps in root (a document or any node below one),
// formats each relative to opts.Now and attaches the phrase as a comment.
// Existing comments on annotated nodes are replaced.
func Annotate(root *yaml.Node, f *timeutil.Formatter, opts Options) ([]Annotation, error) {
	loc := opts.Location
	if loc == nil {
		loc = opts.Now.Location()
	}
	w := &walker{keys: opts.Keys, location: loc}
	w.walk(root, nil, "")

	out := make([]Annotation, 0, len(w.targets))
	for _, target := range w.targets {
		res, err := f.Resolve(target.Moment, opts.Now, opts.Format)
		if err != nil {
			return out, fmt.Errorf("%s: %w", target.Path, err)
		}
		injectComment(target, res.Text, opts.Above)
		out = append(out, Annotation{Path: target.Path, Value: target.ValueNode.Value, Result: res})
	}
	klog.V(3).InfoS("annotated document", "timestamps", len(out))
	return out, nil
}

// injectComment sets the comment text; the encoder adds the "# " prefix.
func injectComment(target Target, comment string, above bool) {
	if !above {
		target.ValueNode.LineComment = comment
		return
	}
	if target.KeyNode != nil {
		target.KeyNode.HeadComment = comment
		return
	}
	target.ValueNode.HeadComment = comment
}
