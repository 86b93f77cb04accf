package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/task"
)

var (
	listSearch string
	listStatus string
	listSort   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show tasks, filtered and sorted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, ed, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer()

		q, err := buildQuery(listSearch, listStatus, listSort)
		if err != nil {
			return err
		}

		now := time.Now()
		view := task.ApplyQuery(ed.Tasks(), q)
		for _, t := range view {
			fmt.Println(formatRow(t, now, cfg.UrgentWithinDays))
		}
		if len(view) == 0 {
			fmt.Println("No tasks match.")
		}

		c := task.CountTasks(ed.Tasks())
		fmt.Printf("\nTotal: %d  Completed: %d  Pending: %d\n", c.Total, c.Completed, c.Pending)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only show tasks whose title contains this text")
	listCmd.Flags().StringVar(&listStatus, "status", "all", "Completion filter: all, pending, or done")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort order: title-asc, title-desc, date-asc, or date-desc")
}

// buildQuery validates the list flags into a view query.
func buildQuery(search, status, sortKey string) (task.Query, error) {
	q := task.Query{Search: search}

	switch task.StatusFilter(status) {
	case task.FilterAll, "":
		q.Status = task.FilterAll
	case task.FilterPending:
		q.Status = task.FilterPending
	case task.FilterDone:
		q.Status = task.FilterDone
	default:
		return q, fmt.Errorf("unknown status filter %q", status)
	}

	switch task.SortKey(sortKey) {
	case "", task.SortTitleAsc, task.SortTitleDesc, task.SortDateAsc, task.SortDateDesc:
		q.Sort = task.SortKey(sortKey)
	default:
		return q, fmt.Errorf("unknown sort order %q", sortKey)
	}

	return q, nil
}

// formatRow renders one task as a list line.
func formatRow(t task.Task, now time.Time, urgentDays int) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}

	due := task.DueStatusText(task.DaysRemaining(t.Date, now))
	if task.Urgent(t, now, urgentDays) {
		due += " (!)"
	}

	desc := t.Description
	if len(desc) > 50 {
		desc = desc[:47] + "..."
	}
	desc = strings.ReplaceAll(desc, "\n", " ")

	return fmt.Sprintf("[%s] %-14d %-30s %-12s %s", mark, t.ID, t.Title, due, desc)
}
