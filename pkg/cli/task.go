package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/cortex/pkg/nlp"
	"github.com/m-mizutani/cortex/pkg/usecase/task"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func taskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks",
		Commands: []*cli.Command{
			taskAddCommand(),
			taskListCommand(),
			taskUpdateCommand(),
			taskDeleteCommand(),
			taskSearchCommand(),
		},
	}
}

func taskAddCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task, with optional due date and priority in the text",
		ArgsUsage: "<description...>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			details := strings.Join(c.Args().Slice(), " ")
			if details == "" {
				return goerr.New("task description is required")
			}

			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			fields := nlp.ExtractTaskFields(details)
			if fields.Description == "" {
				return goerr.New("could not understand the task details", goerr.V("details", details))
			}

			id, err := st.tasks.Add(ctx, fields.Description, fields.DueAt, fields.Priority)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Task added with ID %d\n", id)
			return nil
		},
	}
}

func taskListCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List all tasks",
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

			printTasks(c, st.tasks.List())
			return nil
		},
	}
}

func taskUpdateCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "update",
		Usage:     "Update a task by ID",
		ArgsUsage: "<task-id> <changes...>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := strconv.Atoi(c.Args().Get(0))
			if err != nil {
				return goerr.New("task ID must be a number", goerr.V("arg", c.Args().Get(0)))
			}
			details := strings.Join(c.Args().Slice()[1:], " ")

			patch := nlp.ExtractTaskUpdates(details)
			if patch.Empty() {
				return goerr.New("could not understand the update details", goerr.V("details", details))
			}

			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			if _, err := st.tasks.Update(ctx, id, patch); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Task %d updated\n", id)
			return nil
		},
	}
}

func taskDeleteCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task by ID",
		ArgsUsage: "<task-id>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := strconv.Atoi(c.Args().Get(0))
			if err != nil {
				return goerr.New("task ID must be a number", goerr.V("arg", c.Args().Get(0)))
			}

			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			deleted, err := st.tasks.Delete(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Deleted task %d: %s\n", id, deleted.Description)
			return nil
		},
	}
}

func taskSearchCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "search",
		Usage:     "Search tasks by keyword or regular expression",
		ArgsUsage: "<pattern>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			pattern := strings.Join(c.Args().Slice(), " ")
			if pattern == "" {
				return goerr.New("search pattern is required")
			}

			ctx, repo, err := cfg.setup(ctx)
			if err != nil {
				return err
			}
			st, err := cfg.newStores(ctx, repo)
			if err != nil {
				return err
			}

			printTasks(c, st.tasks.Search(pattern))
			return nil
		},
	}
}

func printTasks(c *cli.Command, entries []task.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(c.Root().Writer, "No tasks")
		return
	}
	for _, e := range entries {
		due := "-"
		if e.Task.DueAt != nil {
			due = e.Task.DueAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(c.Root().Writer, "%d\t%s\tdue:%s\tpriority:%s\tstatus:%s\n",
			e.ID, e.Task.Description, due, e.Task.Priority, e.Task.Status)
	}
}
