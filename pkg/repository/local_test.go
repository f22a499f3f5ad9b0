package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/gt"
)

func TestLocalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)

	saved := map[string]any{"name": "Alice", "count": float64(3)}
	gt.NoError(t, repo.Save(ctx, model.DocumentPreferences, saved))

	var loaded map[string]any
	gt.NoError(t, repo.Load(ctx, model.DocumentPreferences, &loaded))
	gt.Equal(t, loaded, saved)

	// A fresh instance has an empty cache and must read from disk
	repo2, err := repository.NewLocal(dir)
	gt.NoError(t, err)

	var reloaded map[string]any
	gt.NoError(t, repo2.Load(ctx, model.DocumentPreferences, &reloaded))
	gt.Equal(t, reloaded, saved)
}

func TestLocalLoadMissingKeepsDefaults(t *testing.T) {
	repo, err := repository.NewLocal(t.TempDir())
	gt.NoError(t, err)

	out := []string{"default"}
	gt.NoError(t, repo.Load(context.Background(), model.DocumentAdvice, &out))
	gt.A(t, out).Length(1)
	gt.Equal(t, out[0], "default")
}

func TestLocalLoadMalformedKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	gt.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)

	out := []*model.Task{}
	gt.NoError(t, repo.Load(context.Background(), model.DocumentTasks, &out))
	gt.A(t, out).Length(0)
}

func TestLocalSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)

	gt.NoError(t, repo.Save(context.Background(), model.DocumentTasks, []string{"a", "b"}))

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.A(t, entries).Length(1)
	gt.Equal(t, entries[0].Name(), "tasks.json")
}

func TestLocalSaveOverwrite(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := repository.NewLocal(dir)
	gt.NoError(t, err)

	gt.NoError(t, repo.Save(ctx, model.DocumentAdvice, []string{"one"}))
	gt.NoError(t, repo.Save(ctx, model.DocumentAdvice, []string{"one", "two"}))

	var out []string
	gt.NoError(t, repo.Load(ctx, model.DocumentAdvice, &out))
	gt.A(t, out).Length(2)
}

func TestNewLocalEmptyDir(t *testing.T) {
	_, err := repository.NewLocal("")
	gt.Error(t, err)
}
