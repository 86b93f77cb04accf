package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/task"
)

var (
	editTitle string
	editDue   string
	editDesc  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's title, due date, or description",
	Long: `Edit replaces the given fields of an existing task. Fields not passed
keep their current value; the id and completed flag never change.`,
	Args: cobra.ExactArgs(1),
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

		if !ed.BeginEdit(id) {
			return fmt.Errorf("no task with id %d", id)
		}

		if cmd.Flags().Changed("title") {
			ed.SetTitle(editTitle)
		}
		if cmd.Flags().Changed("due") {
			ed.SetDate(editDue)
		}
		if cmd.Flags().Changed("desc") {
			ed.SetDescription(editDesc)
		}

		errs, err := ed.Submit()
		if err != nil {
			return err
		}
		if !errs.OK() {
			printFieldErrors(errs)
			return fmt.Errorf("task not updated")
		}

		t := task.Find(ed.Tasks(), id)
		fmt.Printf("Updated task %d: %s (due %s)\n", t.ID, t.Title, t.Date)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "New description")
}
