package assistant

import (
	"context"
	"math/rand"
	"time"

	"github.com/m-mizutani/cortex/pkg/adapter"
	"github.com/m-mizutani/cortex/pkg/nlp"
	"github.com/m-mizutani/cortex/pkg/usecase/advice"
	"github.com/m-mizutani/cortex/pkg/usecase/prefs"
	"github.com/m-mizutani/cortex/pkg/usecase/reminder"
	"github.com/m-mizutani/cortex/pkg/usecase/task"
)

// Reply is the assistant's answer to one utterance. Done is set when
// the conversation should end.
type Reply struct {
	Text string
	Done bool
}

// UseCase routes classified utterances to the stores and renders the
// spoken responses. Handle is driven by a single conversation loop and
// is not safe for concurrent use.
type UseCase struct {
	parser    *nlp.Parser
	prefs     *prefs.UseCase
	tasks     *task.UseCase
	reminders *reminder.UseCase
	advice    *advice.UseCase
	searcher  adapter.Searcher

	now  func() time.Time
	pick func(n int) int

	pending *taskListing
}

// NewInput bundles the dependencies of the assistant
type NewInput struct {
	Prefs     *prefs.UseCase
	Tasks     *task.UseCase
	Reminders *reminder.UseCase
	Advice    *advice.UseCase
	Searcher  adapter.Searcher
}

type Option func(*UseCase)

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(u *UseCase) {
		u.now = now
	}
}

// WithPicker overrides the random source used for greeting variety
func WithPicker(pick func(n int) int) Option {
	return func(u *UseCase) {
		u.pick = pick
	}
}

// New creates the assistant
func New(input NewInput, opts ...Option) *UseCase {
	uc := &UseCase{
		parser:    nlp.New(),
		prefs:     input.Prefs,
		tasks:     input.Tasks,
		reminders: input.Reminders,
		advice:    input.Advice,
		searcher:  input.Searcher,
		now:       time.Now,
		pick:      rand.Intn,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Handle answers one utterance. A pending task listing consumes the
// utterance as a yes/no answer instead of classifying it.
func (u *UseCase) Handle(ctx context.Context, utterance string) Reply {
	if u.pending != nil {
		return u.continueListing(utterance)
	}
	return u.dispatch(ctx, u.parser.Parse(utterance))
}
