package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/cortex/pkg/adapter"
	"github.com/m-mizutani/cortex/pkg/model"
	"github.com/m-mizutani/cortex/pkg/usecase/assistant"
	"github.com/m-mizutani/cortex/pkg/usecase/reminder"
	"github.com/m-mizutani/cortex/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "chat",
		Usage: "Start an interactive conversation",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			console, err := adapter.NewConsole("you> ")
			if err != nil {
				return err
			}
			defer console.Close()

			// Due reminders interleave with the conversation on the
			// same output.
			notify := reminder.WithNotifier(func(ctx context.Context, r *model.Reminder) {
				console.Say(ctx, fmt.Sprintf("Reminder: %s", r.Text))
			})

			st, err := cfg.newStores(ctx, repo, notify)
			if err != nil {
				return err
			}

			uc := assistant.New(assistant.NewInput{
				Prefs:     st.prefs,
				Tasks:     st.tasks,
				Reminders: st.reminders,
				Advice:    st.advice,
				Searcher:  adapter.NewBrowser(),
			})

			st.reminders.Start(ctx)
			defer st.reminders.Stop()

			console.Say(ctx, fmt.Sprintf("Hello, I'm %s. Say 'goodbye' when you're done.", st.prefs.AssistantName()))

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)

			for {
				line, err := console.Listen(ctx)
				if err != nil {
					if errors.Is(err, adapter.ErrInputClosed) {
						return nil
					}
					logging.From(ctx).Warn("failed to capture input", "error", err)
					console.Say(ctx, "Sorry, I didn't catch that.")
					continue
				}
				if line == "" {
					continue
				}

				sp.Start()
				reply := uc.Handle(ctx, line)
				sp.Stop()

				console.Say(ctx, reply.Text)
				if reply.Done {
					return nil
				}
			}
		},
	}
}
