package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func adviceCommand() *cli.Command {
	return &cli.Command{
		Name:  "advice",
		Usage: "Manage the advice collection",
		Commands: []*cli.Command{
			adviceAddCommand(),
			adviceListCommand(),
			adviceRandomCommand(),
		},
	}
}

func adviceAddCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "add",
		Usage:     "Add a piece of advice",
		ArgsUsage: "<text...>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.Join(c.Args().Slice(), " ")
			if text == "" {
				return goerr.New("advice text is required")
			}

			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			added, err := st.advice.Add(ctx, text)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(c.Root().Writer, "Already in the collection")
				return nil
			}

			fmt.Fprintln(c.Root().Writer, "Advice added")
			return nil
		},
	}
}

func adviceListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List all advice",
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

			for _, text := range st.advice.List() {
				fmt.Fprintln(c.Root().Writer, text)
			}
			return nil
		},
	}
}

func adviceRandomCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "random",
		Usage: "Print a random piece of advice",
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

			fmt.Fprintln(c.Root().Writer, st.advice.Random())
			return nil
		},
	}
}
