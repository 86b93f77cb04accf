package task

import (
	"testing"
	"time"
)

func TestApplyQueryFilterAndSort(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Alpha", Date: "2099-01-01", Completed: false},
		{ID: 2, Title: "Beta", Date: "2000-01-01", Completed: true},
	}

	t.Run("pending filter with empty search", func(t *testing.T) {
		got := ApplyQuery(tasks, Query{Status: FilterPending})
		if len(got) != 1 || got[0].Title != "Alpha" {
			t.Errorf("got %+v, want [Alpha]", got)
		}
	})

	t.Run("title descending over all", func(t *testing.T) {
		got := ApplyQuery(tasks, Query{Status: FilterAll, Sort: SortTitleDesc})
		if len(got) != 2 || got[0].Title != "Beta" || got[1].Title != "Alpha" {
			t.Errorf("got %+v, want [Beta, Alpha]", got)
		}
	})
}

func TestApplyQuerySearch(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "Buy groceries"},
		{ID: 2, Title: "Call the bank"},
		{ID: 3, Title: "GROCERY run"},
	}

	tests := []struct {
		search string
		want   []int64
	}{
		{"", []int64{1, 2, 3}},
		{"grocer", []int64{1, 3}},
		{"GROCER", []int64{1, 3}},
		{"bank", []int64{2}},
		{"zebra", []int64{}},
	}
	for _, tt := range tests {
		got := ApplyQuery(tasks, Query{Search: tt.search})
		if len(got) != len(tt.want) {
			t.Errorf("search %q: got %d tasks, want %d", tt.search, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("search %q: position %d got id %d, want %d", tt.search, i, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestApplyQuerySortIsStable(t *testing.T) {
	// Same date everywhere: date sort must keep stored order.
	tasks := []Task{
		{ID: 10, Title: "C", Date: "2099-01-01"},
		{ID: 20, Title: "A", Date: "2099-01-01"},
		{ID: 30, Title: "B", Date: "2099-01-01"},
	}
	got := ApplyQuery(tasks, Query{Sort: SortDateAsc})
	for i, want := range []int64{10, 20, 30} {
		if got[i].ID != want {
			t.Fatalf("stable sort violated: got order %+v", got)
		}
	}
}

func TestApplyQueryDoesNotMutateInput(t *testing.T) {
	tasks := []Task{
		{ID: 1, Title: "B", Date: "2099-01-02"},
		{ID: 2, Title: "A", Date: "2099-01-01"},
	}
	_ = ApplyQuery(tasks, Query{Sort: SortTitleAsc})
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Errorf("input slice was reordered: %+v", tasks)
	}
}

func TestCountTasks(t *testing.T) {
	tasks := []Task{
		{ID: 1, Completed: false},
		{ID: 2, Completed: true},
		{ID: 3, Completed: true},
	}
	c := CountTasks(tasks)
	if c.Total != 3 || c.Completed != 2 || c.Pending != 1 {
		t.Errorf("counts: %+v", c)
	}
	if c.Total != c.Completed+c.Pending {
		t.Error("total != completed + pending")
	}

	// Counts reflect the store, not any filtered view.
	view := ApplyQuery(tasks, Query{Status: FilterDone})
	if len(view) == c.Total {
		t.Error("expected the filter to shrink the view, not the counts")
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want int
	}{
		{"2026-09-01", 1},
		{"2026-09-03", 3},
		{"2026-08-31", 0}, // due today, even mid-afternoon
		{"2026-08-30", -1},
		{"2026-08-20", -11},
	}
	for _, tt := range tests {
		if got := DaysRemaining(tt.date, now); got != tt.want {
			t.Errorf("DaysRemaining(%s): got %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDueStatusText(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{5, "5 days left"},
		{1, "1 day left"},
		{0, "Due today"},
		{-1, "Overdue"},
		{-10, "Overdue"},
	}
	for _, tt := range tests {
		if got := DueStatusText(tt.days); got != tt.want {
			t.Errorf("DueStatusText(%d): got %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestUrgent(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	if !Urgent(Task{Date: "2026-09-01"}, now, 2) {
		t.Error("due tomorrow should be urgent at threshold 2")
	}
	if !Urgent(Task{Date: "2026-08-01"}, now, 2) {
		t.Error("overdue should be urgent")
	}
	if Urgent(Task{Date: "2026-09-10"}, now, 2) {
		t.Error("far-out date should not be urgent")
	}
	if Urgent(Task{Date: "2026-09-01", Completed: true}, now, 2) {
		t.Error("completed tasks are never urgent")
	}
}
