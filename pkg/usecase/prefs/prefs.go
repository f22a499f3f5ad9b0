package prefs

import (
	"context"
	"sync"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// UseCase holds user preferences. Loading starts from the built-in
// defaults and lets persisted values override them field by field, so a
// preferences file written by an older build keeps working and settings
// already on disk are never overwritten by defaults.
type UseCase struct {
	repo repository.Repository

	mu    sync.Mutex
	prefs model.Preferences
}

// New creates a preferences UseCase, merging persisted overrides under
// the defaults
func New(ctx context.Context, repo repository.Repository) (*UseCase, error) {
	uc := &UseCase{
		repo:  repo,
		prefs: model.DefaultPreferences(),
	}
	if err := repo.Load(ctx, model.DocumentPreferences, &uc.prefs); err != nil {
		return nil, goerr.Wrap(err, "failed to load preferences")
	}
	return uc, nil
}

// Current returns a snapshot of the preferences
func (u *UseCase) Current() model.Preferences {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.prefs
}

// UserName returns the configured user name
func (u *UseCase) UserName() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.prefs.UserName
}

// SetUserName updates and persists the user name
func (u *UseCase) SetUserName(ctx context.Context, name string) error {
	if name == "" {
		return goerr.New("user name is empty")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	prev := u.prefs.UserName
	u.prefs.UserName = name
	if err := u.repo.Save(ctx, model.DocumentPreferences, u.prefs); err != nil {
		u.prefs.UserName = prev
		return goerr.Wrap(err, "failed to save preferences")
	}
	return nil
}

// AssistantName returns the assistant's configured name
func (u *UseCase) AssistantName() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.prefs.AssistantName
}
