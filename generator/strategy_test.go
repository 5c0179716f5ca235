package generator

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creative_prompt_service/logger"
	"creative_prompt_service/store"
)

func newTestService(backend ModelBackend, seed int64) *Service {
	log := logger.NewNop()
	rot := NewRotationWithRand(store.NewMemory(), log, rand.New(rand.NewSource(seed)))
	return NewServiceWithRand(backend, rot, NewSanitizer(log), log, rand.New(rand.NewSource(seed)))
}

func TestGenerateTemplateOnlyWhenBackendMissing(t *testing.T) {
	svc := newTestService(nil, 1)
	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindWriting,
		Categories: []string{"Fantasy"},
	})
	require.NoError(t, err)
	assert.Equal(t, "template", res.Metadata["source"])
	assert.Equal(t, "The Last Dragon's Secret", res.Title)
	assert.NotContains(t, res.Body, "{", "all slots filled")
	assert.Len(t, res.Tips, 3)
	assert.NotEmpty(t, res.ID)
}

func TestGenerateFallsBackOnBackendError(t *testing.T) {
	backend := &MockBackend{Err: errors.New("upstream exploded")}
	svc := newTestService(backend, 1)

	for i := 0; i < 5; i++ {
		res, err := svc.Generate(context.Background(), Request{
			Kind:       KindSound,
			Categories: []string{"Techno"},
		})
		require.NoError(t, err, "backend failures must never surface")
		assert.Equal(t, "template", res.Metadata["source"])
		assert.NotEmpty(t, res.Title)
		assert.NotEmpty(t, res.Body)
	}
	assert.Equal(t, 5, backend.Calls, "exactly one backend call per request, no retries")
}

func TestGenerateFallsBackOnEmptyOutput(t *testing.T) {
	svc := newTestService(&MockBackend{Reply: "   \n  "}, 1)
	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindChords,
		Categories: []string{"Jazz"},
	})
	require.NoError(t, err)
	assert.Equal(t, "template", res.Metadata["source"])
}

func TestGenerateFallsBackOnSanitizerRejection(t *testing.T) {
	salad := "the Zorp Blick Quand Merv Trunk Vosk Grell Plim and then some more plain words here"
	svc := newTestService(&MockBackend{Reply: salad}, 1)
	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindDrawing,
		Categories: []string{"Portrait"},
	})
	require.NoError(t, err)
	assert.Equal(t, "template", res.Metadata["source"])
}

func TestGenerateModelPathExtractsStructure(t *testing.T) {
	reply := "# The Hollow Lighthouse\n\n" +
		"A keeper finds the lamp burning though no one lit it.\n\n" +
		"**Tips:**\n- Start in the storm\n- Keep the keeper silent\n- End on the stairs\n"
	svc := newTestService(&MockBackend{Reply: reply}, 1)

	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindWriting,
		Categories: []string{"Horror"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ai", res.Metadata["source"])
	assert.Equal(t, "The Hollow Lighthouse", res.Title)
	assert.Equal(t, []string{"Start in the storm", "Keep the keeper silent", "End on the stairs"}, res.Tips)
	assert.NotContains(t, res.Body, "Tips")
	assert.NotContains(t, res.Body, "The Hollow Lighthouse", "title line removed from body")
	assert.Contains(t, res.Body, "keeper finds the lamp")

	// Horror has an anchor pool, so the prompt was anchored.
	anchor, ok := res.Metadata["anchor"].(string)
	require.True(t, ok)
	assert.Contains(t, writingKind().Pools["Horror"], anchor)
}

func TestGenerateModelPathDefaults(t *testing.T) {
	// No title marker, no tips section: defaults kick in.
	svc := newTestService(&MockBackend{Reply: "Just a plain two sentence exercise. Nothing more."}, 1)
	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindSound,
		Categories: []string{"Ambient"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ai", res.Metadata["source"])
	assert.Equal(t, "Ambient Sound Design Drill", res.Title)
	assert.Equal(t, soundKind().GenericTips, res.Tips)
}

func TestGenerateWritingMetadata(t *testing.T) {
	svc := newTestService(nil, 3)
	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindWriting,
		Categories: []string{"Mystery"},
	})
	require.NoError(t, err)

	words, ok := res.Metadata["wordCount"].(int)
	require.True(t, ok)
	difficulty, ok := res.Metadata["difficulty"].(string)
	require.True(t, ok)
	found := false
	for _, wc := range writingWordCounts {
		if wc.Words == words && wc.Difficulty == difficulty {
			found = true
		}
	}
	assert.True(t, found, "wordCount and difficulty must pair up")
}

func TestGenerateConfigErrors(t *testing.T) {
	svc := newTestService(nil, 1)
	var cfgErr *ConfigError

	_, err := svc.Generate(context.Background(), Request{Kind: "pottery", Categories: []string{"x"}})
	require.ErrorAs(t, err, &cfgErr)

	_, err = svc.Generate(context.Background(), Request{Kind: KindWriting})
	require.ErrorAs(t, err, &cfgErr)
}

func TestGenerateUnknownCategoryUsesDefaultTemplate(t *testing.T) {
	svc := newTestService(nil, 1)
	res, err := svc.Generate(context.Background(), Request{
		Kind:       KindWriting,
		Categories: []string{"Telephone Directories"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Unexpected Journey", res.Title)
	assert.Equal(t, "template", res.Metadata["source"])
}

func TestGenerateRotationAnchorsCycle(t *testing.T) {
	reply := "# Fine\n\nA perfectly acceptable exercise body."
	svc := newTestService(&MockBackend{Reply: reply}, 2)

	pool := soundKind().Pools["Techno"]
	seen := map[string]int{}
	for i := 0; i < len(pool); i++ {
		res, err := svc.Generate(context.Background(), Request{
			Kind:       KindSound,
			Categories: []string{"Techno"},
		})
		require.NoError(t, err)
		anchor, _ := res.Metadata["anchor"].(string)
		seen[anchor]++
	}
	for _, entity := range pool {
		assert.Equal(t, 1, seen[entity], "entity %q must anchor exactly once per cycle", entity)
	}
}
