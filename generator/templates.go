package generator

import (
	"math/rand"
	"sort"
	"strings"
)

// Template is one static fallback exercise: fixed title, a text with named
// {slot} placeholders, and the option list for each slot.
type Template struct {
	Title string
	Text  string
	Slots map[string][]string
}

// fillTemplate substitutes every {slot} with a uniformly random option. Pure
// in the rng: a seeded source makes the output deterministic. Slots are
// filled in sorted name order so the rng consumption is stable.
func fillTemplate(t Template, rng *rand.Rand) string {
	names := make([]string, 0, len(t.Slots))
	for name := range t.Slots {
		names = append(names, name)
	}
	sort.Strings(names)

	out := t.Text
	for _, name := range names {
		options := t.Slots[name]
		if len(options) == 0 {
			continue
		}
		choice := options[rng.Intn(len(options))]
		out = strings.ReplaceAll(out, "{"+name+"}", choice)
	}
	return out
}

// pickTemplate gathers every template matching the selected categories and
// picks one uniformly; when nothing matches it falls back to the kind's
// default template. This path cannot fail.
func pickTemplate(kc *KindConfig, categories []string, rng *rand.Rand) Template {
	var matched []Template
	for _, cat := range categories {
		matched = append(matched, kc.Templates[cat]...)
	}
	if len(matched) == 0 {
		return kc.DefaultTemplate
	}
	return matched[rng.Intn(len(matched))]
}
