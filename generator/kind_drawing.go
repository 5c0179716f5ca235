package generator

import (
	"fmt"
	"strings"
)

func drawingKind() *KindConfig {
	return &KindConfig{
		Kind:  KindDrawing,
		Label: "Drawing Exercise",
		SystemPrompt: "You are a drawing instructor. Create drawing exercises that train observation and mark-making. Each exercise should:\n" +
			"1. Name the subject and the medium\n" +
			"2. Set a time box\n" +
			"3. Impose one constraint that forces a new habit\n" +
			"4. Say what to look for in the result",
		UserPrompt: func(categories []string, anchor string) string {
			var sb strings.Builder
			fmt.Fprintf(&sb, "Create a drawing exercise for these subjects: %s\n\n", strings.Join(categories, ", "))
			if anchor != "" {
				fmt.Fprintf(&sb, "Reference the approach of %s when framing the constraint.\n", anchor)
			}
			sb.WriteString("It must be doable in one sitting with basic materials.\n")
			sb.WriteString("Start with a short title as a markdown heading, and end with a **Tips:** section of three bullet points.")
			return sb.String()
		},
		Pools: map[string][]string{
			"Portrait":        {"Rembrandt", "John Singer Sargent", "Käthe Kollwitz", "Lucian Freud", "Egon Schiele"},
			"Landscape":       {"J.M.W. Turner", "Hokusai", "Camille Corot", "Edward Hopper"},
			"Still Life":      {"Giorgio Morandi", "Paul Cézanne", "Jean-Baptiste-Siméon Chardin"},
			"Figure":          {"Michelangelo", "Edgar Degas", "Jenny Saville", "Glenn Vilppu"},
			"Urban Sketching": {"Gabriel Campanario", "Felix Scheinberger", "Ian Fennelly"},
		},
		Templates: map[string][]Template{
			"Portrait": {{
				Title: "The Honest Mirror",
				Text:  "Draw a self-portrait in {medium} within {timebox}. Constraint: {constraint}. Afterwards, check whether {check}.",
				Slots: map[string][]string{
					"medium":     {"soft graphite", "charcoal", "ballpoint pen"},
					"timebox":    {"20 minutes", "45 minutes", "one hour"},
					"constraint": {"you may not erase", "work only from shadow shapes, no outlines", "keep the pencil on the paper for the first five minutes"},
					"check":      {"the eyes sit halfway down the skull", "your darkest dark appears only once", "the likeness survives viewing in a mirror"},
				},
			}},
			"Landscape": {{
				Title: "Three Values, One View",
				Text:  "Pick a view {view} and block it in using only {values} values in {medium}. Spend {timebox}, shapes before edges. Constraint: {constraint}.",
				Slots: map[string][]string{
					"view":       {"from your window", "from a park bench", "from a photo you took yourself"},
					"values":     {"three", "four"},
					"medium":     {"grey markers", "diluted ink", "graphite"},
					"timebox":    {"30 minutes", "one hour"},
					"constraint": {"no lines, only masses", "sky must not be the lightest value", "squint before every mark"},
				},
			}},
			"Still Life": {{
				Title: "Arrangement in Quiet",
				Text:  "Arrange {objects} under a single light source. Draw them in {medium} for {timebox}, focusing on {focus}. Constraint: {constraint}.",
				Slots: map[string][]string{
					"objects":    {"three kitchen objects", "a cup, a cloth, and a piece of fruit", "two bottles and a bowl"},
					"medium":     {"charcoal", "graphite", "ink wash"},
					"timebox":    {"40 minutes", "one hour"},
					"focus":      {"the shadows that connect the objects", "lost and found edges", "negative space between forms"},
					"constraint": {"draw the spaces, not the things", "one continuous line per object", "no outlines on the lit side"},
				},
			}},
			"Figure": {{
				Title: "Gesture Ladder",
				Text:  "Do {count} gesture drawings at {pace} each from {source}. Use {medium} and keep the whole figure on the page. Constraint: {constraint}.",
				Slots: map[string][]string{
					"count":      {"ten", "fifteen", "twenty"},
					"pace":       {"30 seconds", "one minute", "two minutes"},
					"source":     {"an online pose library", "people in a café", "video paused at random"},
					"medium":     {"conté", "brush pen", "soft pencil"},
					"constraint": {"start every figure from the line of action", "no faces, no hands, only motion", "draw with your non-dominant shoulder moving"},
				},
			}},
		},
		DefaultTemplate: Template{
			Title: "Object on the Desk",
			Text:  "Take {object} and draw it {count} times in {timebox}: once blind contour, once in pure value, once from memory. Compare which version {compare}.",
			Slots: map[string][]string{
				"object":  {"your keys", "a crumpled receipt", "your other hand", "a houseplant"},
				"count":   {"three"},
				"timebox": {"30 minutes", "45 minutes"},
				"compare": {"feels most alive", "says most with least marks", "you would pin to the wall"},
			},
		},
		Tips: map[string]string{
			"Portrait":        "Measure with your pencil - features drift without landmarks.",
			"Landscape":       "Squint to collapse detail into value masses before you draw.",
			"Still Life":      "Light the setup yourself; the shadow design is half the drawing.",
			"Figure":          "Gesture first, construction second, never the reverse.",
			"Urban Sketching": "Commit to ink early - hesitation shows more than wrong lines.",
		},
		GenericTips: []string{
			"Finish the bad drawing anyway; stopping early teaches nothing.",
			"Date every page so progress becomes visible over months.",
			"Draw the big shapes before any detail, every single time.",
		},
	}
}
