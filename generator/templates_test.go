package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillTemplateReplacesAllSlots(t *testing.T) {
	tpl := Template{
		Title: "T",
		Text:  "A {x} walks into {y}, and {x} leaves.",
		Slots: map[string][]string{
			"x": {"stranger", "dog"},
			"y": {"a bar", "the rain"},
		},
	}
	out := fillTemplate(tpl, rand.New(rand.NewSource(1)))
	assert.NotContains(t, out, "{x}")
	assert.NotContains(t, out, "{y}")
}

func TestFillTemplateDeterministicUnderSeed(t *testing.T) {
	tpl := Template{
		Text: "{a} {b} {c}",
		Slots: map[string][]string{
			"a": {"1", "2", "3"},
			"b": {"4", "5", "6"},
			"c": {"7", "8", "9"},
		},
	}
	first := fillTemplate(tpl, rand.New(rand.NewSource(42)))
	second := fillTemplate(tpl, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}

func TestPickTemplateFallsBackToDefault(t *testing.T) {
	kc := writingKind()
	rng := rand.New(rand.NewSource(1))

	tpl := pickTemplate(kc, []string{"No Such Genre"}, rng)
	assert.Equal(t, kc.DefaultTemplate.Title, tpl.Title)

	tpl = pickTemplate(kc, []string{"Fantasy"}, rng)
	assert.Equal(t, "The Last Dragon's Secret", tpl.Title)
}

// Every built-in kind must be internally consistent: three generic tips, a
// default template whose slots cover its placeholders, and non-empty pools.
func TestKindConfigsWellFormed(t *testing.T) {
	for kind, kc := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			require.Equal(t, kind, kc.Kind)
			assert.Len(t, kc.GenericTips, 3)
			assert.NotEmpty(t, kc.Label)
			assert.NotEmpty(t, kc.SystemPrompt)
			require.NotNil(t, kc.UserPrompt)

			for cat, pool := range kc.Pools {
				assert.NotEmpty(t, pool, "pool %q", cat)
			}

			rng := rand.New(rand.NewSource(1))
			templates := []Template{kc.DefaultTemplate}
			for _, list := range kc.Templates {
				templates = append(templates, list...)
			}
			for _, tpl := range templates {
				filled := fillTemplate(tpl, rng)
				assert.NotContains(t, filled, "{", "template %q left a slot unfilled", tpl.Title)
				assert.NotEmpty(t, tpl.Title)
			}
		})
	}
}
