package task

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterPending StatusFilter = "pending"
	FilterDone    StatusFilter = "done"
)

// SortKey selects the list ordering.
type SortKey string

const (
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
	SortDateAsc   SortKey = "date-asc"
	SortDateDesc  SortKey = "date-desc"
)

// Query describes the derived view: a search string matched against
// titles, a completion filter, and a sort order. Zero values mean
// "match everything, keep stored order".
type Query struct {
	Search string
	Status StatusFilter
	Sort   SortKey
}

// titleCollator orders titles the way a locale-aware comparison would,
// ignoring case.
var titleCollator = collate.New(language.English, collate.IgnoreCase)

// ApplyQuery returns the filtered, sorted projection of tasks for display.
// The input slice is never modified. Sorting is stable: tasks that compare
// equal keep their prior relative order.
func ApplyQuery(tasks []Task, q Query) []Task {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if search != "" && !strings.Contains(strings.ToLower(t.Title), search) {
			continue
		}
		switch q.Status {
		case FilterPending:
			if t.Completed {
				continue
			}
		case FilterDone:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}

	switch q.Sort {
	case SortTitleAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortTitleDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) > 0
		})
	case SortDateAsc:
		// ISO dates order lexicographically.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}

	return out
}

// Counts aggregates the full store, regardless of any active query.
type Counts struct {
	Total     int
	Completed int
	Pending   int
}

// CountTasks returns the aggregate counts over the full list.
func CountTasks(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}

// DaysRemaining returns the ceiling of (due date minus now) in whole days.
// Positive means the due date is ahead, zero means due today, negative
// means overdue. An unparseable date returns 0.
func DaysRemaining(date string, now time.Time) int {
	due, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return 0
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// DueStatusText renders a days-remaining value for display.
func DueStatusText(days int) string {
	switch {
	case days > 0:
		if days == 1 {
			return "1 day left"
		}
		return strconv.Itoa(days) + " days left"
	case days == 0:
		return "Due today"
	default:
		return "Overdue"
	}
}

// Urgent reports whether a task should be flagged urgent: not completed
// and due within the given number of days (overdue included).
func Urgent(t Task, now time.Time, withinDays int) bool {
	if t.Completed {
		return false
	}
	return DaysRemaining(t.Date, now) <= withinDays
}
