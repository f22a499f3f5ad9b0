package advice_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/cortex/pkg/repository"
	"github.com/m-mizutani/cortex/pkg/usecase/advice"
	"github.com/m-mizutani/gt"
)

func setupAdvice(t *testing.T, opts ...advice.Option) *advice.UseCase {
	repo, err := repository.NewLocal(t.TempDir())
	gt.NoError(t, err)

	uc, err := advice.New(context.Background(), repo, opts...)
	gt.NoError(t, err)
	return uc
}

func TestAddDeduplicates(t *testing.T) {
	uc := setupAdvice(t)
	ctx := context.Background()

	added, err := uc.Add(ctx, "measure twice, cut once")
	gt.NoError(t, err)
	gt.True(t, added)

	added, err = uc.Add(ctx, "measure twice, cut once")
	gt.NoError(t, err)
	gt.False(t, added)

	gt.A(t, uc.List()).Length(1)
}

func TestRandomEmpty(t *testing.T) {
	uc := setupAdvice(t)
	gt.S(t, uc.Random()).Contains("don't have any advice")
}

func TestRandomPicks(t *testing.T) {
	uc := setupAdvice(t, advice.WithPicker(func(n int) int { return n - 1 }))
	ctx := context.Background()

	_, err := uc.Add(ctx, "first")
	gt.NoError(t, err)
	_, err = uc.Add(ctx, "second")
	gt.NoError(t, err)

	gt.Equal(t, uc.Random(), "second")
}
