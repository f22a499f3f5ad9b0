package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// nameCommand prints the configured user name, or updates it when a
// new name is given as arguments
func nameCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "name",
		Usage:     "Show or set the user name",
		ArgsUsage: "[new name...]",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			name := strings.Join(c.Args().Slice(), " ")
			if name == "" {
				fmt.Fprintln(c.Root().Writer, st.prefs.UserName())
				return nil
			}

			if err := st.prefs.SetUserName(ctx, name); err != nil {
				return err
			}
			fmt.Fprintf(c.Root().Writer, "Name updated to %s\n", name)
			return nil
		},
	}
}
