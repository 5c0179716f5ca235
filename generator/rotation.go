package generator

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"creative_prompt_service/logger"
	"creative_prompt_service/store"
)

// rotationState is the persisted shape: a shuffled permutation of pool
// indices and the cursor of the next unseen position. cursor == len means
// the cycle is exhausted.
type rotationState struct {
	Permutation []int `json:"permutation"`
	Cursor      int   `json:"cursor"`
}

// Rotation hands out pool entities one full cycle at a time: every entity
// exactly once per cycle, in a persisted shuffled order, then reshuffle.
//
// Cursor updates are read-then-write without cross-request locking; two
// concurrent callers on the same category may skip or early-repeat one item
// within a cycle. That weak consistency is accepted.
type Rotation struct {
	store store.Store
	log   *logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRotation(st store.Store, log *logger.Logger) *Rotation {
	return NewRotationWithRand(st, log, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewRotationWithRand injects the RNG so tests can seed it.
func NewRotationWithRand(st store.Store, log *logger.Logger, rng *rand.Rand) *Rotation {
	return &Rotation{
		store: st,
		log:   log.With("component", "rotation"),
		rng:   rng,
	}
}

// Next returns the next unseen entity from pool for the category. Rotation
// state problems never surface: corrupt state is rebuilt, an unreachable
// store degrades to a one-off uniform random pick without touching state.
// Only an empty pool is an error.
func (r *Rotation) Next(ctx context.Context, category string, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", configErrorf("empty pool for category %q", category)
	}
	key := "rotation:" + category

	st, err := r.load(ctx, key, len(pool))
	if err != nil {
		r.log.Warn("rotation state unavailable, degrading to random pick",
			"category", category, "error", err)
		return pool[r.intn(len(pool))], nil
	}

	if st == nil || st.Cursor >= len(pool) {
		st = &rotationState{Permutation: r.permutation(len(pool))}
	}

	idx := st.Permutation[st.Cursor]
	st.Cursor++

	if err := r.persist(ctx, key, st); err != nil {
		r.log.Warn("rotation state write failed", "category", category, "error", err)
	}
	return pool[idx], nil
}

// load returns nil state (no error) when the key is absent or its content
// cannot serve a pool of size n; the caller rebuilds. A transport error is
// returned as-is.
func (r *Rotation) load(ctx context.Context, key string, n int) (*rotationState, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var st rotationState
	if err := json.Unmarshal(raw, &st); err != nil {
		r.log.Warn("rotation state corrupt, rebuilding", "key", key, "error", err)
		return nil, nil
	}
	if !validState(&st, n) {
		r.log.Warn("rotation state invalid for pool size, rebuilding", "key", key, "size", n)
		return nil, nil
	}
	return &st, nil
}

func (r *Rotation) persist(ctx context.Context, key string, st *rotationState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, raw, 0)
}

// validState checks length, cursor range, and that Permutation really is a
// permutation of 0..n-1.
func validState(st *rotationState, n int) bool {
	if len(st.Permutation) != n || st.Cursor < 0 || st.Cursor > n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range st.Permutation {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// permutation draws an unbiased random permutation of [0, n).
func (r *Rotation) permutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.mu.Lock()
	r.rng.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	r.mu.Unlock()
	return p
}

func (r *Rotation) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}
