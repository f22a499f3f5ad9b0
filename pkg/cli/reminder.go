package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func reminderCommand() *cli.Command {
	return &cli.Command{
		Name:  "reminder",
		Usage: "Manage daily reminders",
		Commands: []*cli.Command{
			reminderAddCommand(),
			reminderListCommand(),
		},
	}
}

func reminderAddCommand() *cli.Command {
	var (
		cfg config
		at  string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "at",
			Usage:       "Time of day in HH:MM format",
			Required:    true,
			Destination: &at,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "add",
		Usage:     "Add a reminder",
		ArgsUsage: "<text...>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.Join(c.Args().Slice(), " ")
			if text == "" {
				return goerr.New("reminder text is required")
			}

			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			r, err := st.reminders.Add(ctx, text, at)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Reminder set for %s: %s\n", r.TimeOfDay, r.Text)
			return nil
		},
	}
}

func reminderListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List pending reminders",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			reminders := st.reminders.List()
			if len(reminders) == 0 {
				fmt.Fprintln(c.Root().Writer, "No reminders")
				return nil
			}
			for _, r := range reminders {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\n", r.TimeOfDay, r.Text)
			}
			return nil
		},
	}
}
