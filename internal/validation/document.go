package validation

import (
	"fmt"

	"go.yaml.in/yaml/v3"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/ahmetb/friendly-dates/internal/locale"
	"github.com/ahmetb/friendly-dates/internal/unit"
)

// optionalKeys may appear in a locale document without being required.
var optionalKeys = sets.New(
	"direction",
	"numberFormat.thousandsSeparator",
	"numberFormat.decimalSeparator",
)

// requiredKeys returns the dotted leaf keys every locale document must have.
func requiredKeys() sets.Set[string] {
	keys := sets.New("id", "name", "days.short", "days.long", "months.short", "months.long")
	for _, u := range unit.All() {
		keys.Insert("units."+u.String(), "unitsPlural."+u.String())
	}
	for _, p := range phraseFields(locale.Phrases{}) {
		keys.Insert("relative." + p.key)
	}
	return keys
}

// ValidateLocaleYAML validates a raw locale document. In addition to the
// checks of ValidateLocale it reports keys that are missing from, or unknown
// to, the document.
func ValidateLocaleYAML(data []byte) LocaleResult {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		res := LocaleResult{LocaleID: "unknown"}
		res.Errors = field.ErrorList{field.Invalid(field.NewPath("locale"), "<document>",
			fmt.Sprintf("malformed YAML: %v", err))}
		return res
	}

	present := sets.New[string]()
	collectLeafKeys("", doc, present)
	required := requiredKeys()

	cfg, err := locale.Parse(data)
	if err != nil {
		// a map decoded fine above, so this is a type mismatch somewhere
		res := LocaleResult{LocaleID: "unknown"}
		res.Errors = field.ErrorList{field.Invalid(field.NewPath("locale"), "<document>", err.Error())}
		res.MissingKeys = sets.List(required.Difference(present))
		return res
	}
	res := ValidateLocale(cfg)
	res.MissingKeys = sets.List(required.Difference(present))
	res.ExtraKeys = sets.List(present.Difference(required.Union(optionalKeys)))
	for _, k := range res.ExtraKeys {
		res.warnf("unknown key %s", k)
	}
	return res
}

// collectLeafKeys adds the dotted path of every non-mapping value under m.
// Sequences count as leaves.
func collectLeafKeys(prefix string, m map[string]any, into sets.Set[string]) {
	for k, v := range m {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			collectLeafKeys(p, child, into)
			continue
		}
		into.Insert(p)
	}
}
