package advice

import (
	"context"
	"math/rand"
	"sync"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

const emptyAdvice = "I don't have any advice to offer at the moment."

// UseCase keeps a deduplicated, append-only list of advice strings
type UseCase struct {
	repo repository.Repository
	pick func(n int) int

	mu     sync.Mutex
	advice []string
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithPicker overrides the random index selection
func WithPicker(pick func(n int) int) Option {
	return func(uc *UseCase) {
		uc.pick = pick
	}
}

// New creates an advice UseCase, loading the persisted list
func New(ctx context.Context, repo repository.Repository, opts ...Option) (*UseCase, error) {
	uc := &UseCase{
		repo: repo,
		pick: rand.Intn,
	}
	for _, opt := range opts {
		opt(uc)
	}

	if err := repo.Load(ctx, model.DocumentAdvice, &uc.advice); err != nil {
		return nil, goerr.Wrap(err, "failed to load advice")
	}
	return uc, nil
}

// Random returns one piece of advice, or a friendly fallback when the
// list is empty
func (u *UseCase) Random() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.advice) == 0 {
		return emptyAdvice
	}
	return u.advice[u.pick(len(u.advice))]
}

// Add appends a new piece of advice. Duplicates are rejected without
// error; the bool reports whether the entry was added.
func (u *UseCase) Add(ctx context.Context, text string) (bool, error) {
	if text == "" {
		return false, goerr.New("advice text is empty")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for _, a := range u.advice {
		if a == text {
			return false, nil
		}
	}

	u.advice = append(u.advice, text)
	if err := u.repo.Save(ctx, model.DocumentAdvice, u.advice); err != nil {
		u.advice = u.advice[:len(u.advice)-1]
		return false, goerr.Wrap(err, "failed to save advice")
	}
	return true, nil
}

// List returns all stored advice in insertion order
func (u *UseCase) List() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]string, len(u.advice))
	copy(out, u.advice)
	return out
}
