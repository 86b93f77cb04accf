package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/task"
)

var (
	addTitle string
	addDue   string
	addDesc  string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a new task",
	Example: `  taskwell add --title "Water the plants" --due 2026-09-15 --desc "Front and back garden"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, ed, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer()

		ed.SetTitle(addTitle)
		ed.SetDate(addDue)
		ed.SetDescription(addDesc)

		errs, err := ed.Submit()
		if err != nil {
			return err
		}
		if !errs.OK() {
			printFieldErrors(errs)
			return fmt.Errorf("task not added")
		}

		tasks := ed.Tasks()
		added := tasks[len(tasks)-1]
		fmt.Printf("Added task %d: %s (due %s)\n", added.ID, added.Title, added.Date)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Task title (letters and spaces)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD, today or later)")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Task description")
}

// printFieldErrors writes one line per invalid field to stderr.
func printFieldErrors(errs task.FieldErrors) {
	if errs.Title != "" {
		fmt.Fprintln(os.Stderr, "title:", errs.Title)
	}
	if errs.Date != "" {
		fmt.Fprintln(os.Stderr, "due:", errs.Date)
	}
	if errs.Description != "" {
		fmt.Fprintln(os.Stderr, "desc:", errs.Description)
	}
}
