package generator

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"creative_prompt_service/logger"
)

// Service is the generation pipeline: model attempt, sanitize, extract, with
// a template fallback that cannot fail. A nil backend means the service was
// wired template-only; that is explicit configuration, not ambient state.
type Service struct {
	backend   ModelBackend
	rotation  *Rotation
	sanitizer *Sanitizer
	kinds     map[Kind]*KindConfig
	log       *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(backend ModelBackend, rotation *Rotation, sanitizer *Sanitizer, log *logger.Logger) *Service {
	return NewServiceWithRand(backend, rotation, sanitizer, log,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewServiceWithRand injects the RNG so template selection and slot filling
// are deterministic under a seeded source.
func NewServiceWithRand(backend ModelBackend, rotation *Rotation, sanitizer *Sanitizer, log *logger.Logger, rng *rand.Rand) *Service {
	return &Service{
		backend:   backend,
		rotation:  rotation,
		sanitizer: sanitizer,
		kinds:     Kinds(),
		log:       log.With("component", "strategy"),
		rng:       rng,
	}
}

// Generate produces one exercise. The only error it returns is ConfigError;
// every runtime failure (backend down, backend error, sanitizer rejection,
// empty output) lands on the template path.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	kc, ok := s.kinds[req.Kind]
	if !ok {
		return Result{}, configErrorf("unknown generation kind %q", req.Kind)
	}
	if len(req.Categories) == 0 {
		return Result{}, configErrorf("at least one category must be selected")
	}

	if s.backend == nil {
		s.log.Debug("model backend not configured, using templates", "kind", req.Kind)
		return s.fromTemplate(kc, req), nil
	}

	anchor, err := s.anchorFor(ctx, kc, req)
	if err != nil {
		return Result{}, err
	}
	if res, ok := s.fromModel(ctx, kc, req, anchor); ok {
		return res, nil
	}
	return s.fromTemplate(kc, req), nil
}

// anchorFor picks the named entity the prompt is built around: the rotation's
// next entry for the first selected category that has a pool. No pool, no
// anchor.
func (s *Service) anchorFor(ctx context.Context, kc *KindConfig, req Request) (string, error) {
	for _, cat := range req.Categories {
		pool, ok := kc.Pools[cat]
		if !ok {
			continue
		}
		return s.rotation.Next(ctx, string(kc.Kind)+":"+cat, pool)
	}
	return "", nil
}

// fromModel runs the single backend call and the sanitize/extract stages.
// ok=false on any failure; the backend is never retried, since a second call
// would advance rotation and model state non-deterministically.
func (s *Service) fromModel(ctx context.Context, kc *KindConfig, req Request, anchor string) (Result, bool) {
	prompt := Prompt{
		System: kc.SystemPrompt,
		User:   kc.UserPrompt(req.Categories, anchor),
	}
	raw, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		s.log.Warn("model backend call failed, falling back to template",
			"kind", req.Kind, "error", err)
		return Result{}, false
	}
	if strings.TrimSpace(raw) == "" {
		s.log.Warn("model backend returned empty output, falling back to template",
			"kind", req.Kind)
		return Result{}, false
	}

	verdict := s.sanitizer.Sanitize(raw)
	if !verdict.Accepted {
		s.log.Info("generated content rejected, falling back to template",
			"kind", req.Kind, "reasons", verdict.Reasons)
		return Result{}, false
	}

	title := extractTitle(verdict.Cleaned)
	body := verdict.Cleaned
	if title == "" {
		title = req.Categories[0] + " " + kc.Label
	} else {
		body = stripTitleLine(body, title)
	}
	tips, body := extractTips(body)
	if len(tips) == 0 {
		tips = append([]string(nil), kc.GenericTips...)
	}

	return s.newResult(kc, req, title, body, tips, "ai", anchor), true
}

// fromTemplate is the terminal fallback. Static templates are always
// present, so this never fails.
func (s *Service) fromTemplate(kc *KindConfig, req Request) Result {
	s.mu.Lock()
	tpl := pickTemplate(kc, req.Categories, s.rng)
	body := fillTemplate(tpl, s.rng)
	s.mu.Unlock()

	tips := tipsFor(kc, req.Categories)
	return s.newResult(kc, req, tpl.Title, body, tips, "template", "")
}

func (s *Service) newResult(kc *KindConfig, req Request, title, body string, tips []string, source, anchor string) Result {
	meta := map[string]any{
		"source":     source,
		"kind":       string(kc.Kind),
		"categories": req.Categories,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	}
	if anchor != "" {
		meta["anchor"] = anchor
	}
	if kc.ExtraMetadata != nil {
		s.mu.Lock()
		extra := kc.ExtraMetadata(s.rng)
		s.mu.Unlock()
		for k, v := range extra {
			meta[k] = v
		}
	}
	return Result{
		ID:       uuid.NewString(),
		Title:    title,
		Body:     body,
		Tips:     tips,
		Metadata: meta,
	}
}
