package prefs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/cortex/pkg/usecase/prefs"
	"github.com/m-mizutani/gt"
)

func TestDefaults(t *testing.T) {
	repo, err := repository.NewLocal(t.TempDir())
	gt.NoError(t, err)

	uc, err := prefs.New(context.Background(), repo)
	gt.NoError(t, err)

	gt.Equal(t, uc.UserName(), "User")
	gt.Equal(t, uc.AssistantName(), "Cortex")
	gt.Equal(t, uc.Current().WakeWord, "hey cortex")
	gt.Equal(t, uc.Current().ReminderInterval, 30)
}

func TestPersistedOverridesKeepUnsetDefaults(t *testing.T) {
	dir := t.TempDir()

	// Partial document, as an older build may have written it
	path := filepath.Join(dir, "preferences.json")
	gt.NoError(t, os.WriteFile(path, []byte(`{"name": "Dana"}`), 0o644))

	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)
	uc, err := prefs.New(context.Background(), repo)
	gt.NoError(t, err)

	gt.Equal(t, uc.UserName(), "Dana")
	gt.Equal(t, uc.AssistantName(), "Cortex")
	gt.Equal(t, uc.Current().ReminderInterval, 30)
}

func TestSetUserNamePersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)
	uc, err := prefs.New(ctx, repo)
	gt.NoError(t, err)

	gt.NoError(t, uc.SetUserName(ctx, "morgan"))
	gt.Equal(t, uc.UserName(), "morgan")

	repo2, err := repository.NewLocal(dir)
	gt.NoError(t, err)
	uc2, err := prefs.New(ctx, repo2)
	gt.NoError(t, err)
	gt.Equal(t, uc2.UserName(), "morgan")
}
