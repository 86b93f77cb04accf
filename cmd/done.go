package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completed flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		_, _, ed, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer()

		t := task.Find(ed.Tasks(), id)
		if t == nil {
			return fmt.Errorf("no task with id %d", id)
		}

		if err := ed.Toggle(id); err != nil {
			return err
		}

		state := "pending"
		if task.Find(ed.Tasks(), id).Completed {
			state = "done"
		}
		fmt.Printf("Task %d is now %s: %s\n", id, state, t.Title)
		return nil
	},
}

// parseID parses a task id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
