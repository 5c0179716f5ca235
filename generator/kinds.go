package generator

import "math/rand"

// KindConfig bundles everything one generation endpoint needs: prompt
// builders for the model path, anchor pools for rotation, and the static
// template/tip tables for the fallback path. Pools and tables are read-only
// reference data shared by all requests.
type KindConfig struct {
	Kind  Kind
	Label string

	SystemPrompt string
	// UserPrompt renders the model request from the selected categories and
	// the rotation-picked anchor entity (may be empty).
	UserPrompt func(categories []string, anchor string) string

	// Pools maps a category to the entities the rotation cycles through.
	// Categories without a pool generate unanchored prompts.
	Pools map[string][]string

	Templates       map[string][]Template
	DefaultTemplate Template

	// Tips maps a category to its craft tip; GenericTips is the fixed
	// 3-entry fallback when neither the model output nor the category table
	// yields any.
	Tips        map[string]string
	GenericTips []string

	// ExtraMetadata contributes kind-specific result metadata, e.g. the
	// writing kind's word-count/difficulty pairing.
	ExtraMetadata func(rng *rand.Rand) map[string]any
}

// Kinds returns the built-in configuration for the four exercise kinds.
func Kinds() map[Kind]*KindConfig {
	return map[Kind]*KindConfig{
		KindWriting: writingKind(),
		KindSound:   soundKind(),
		KindChords:  chordsKind(),
		KindDrawing: drawingKind(),
	}
}

// tipsFor assembles up to maxTips tips: category-specific first, generic
// padding after.
func tipsFor(kc *KindConfig, categories []string) []string {
	var tips []string
	for _, cat := range categories {
		if tip, ok := kc.Tips[cat]; ok {
			tips = append(tips, tip)
		}
	}
	tips = append(tips, kc.GenericTips...)
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
