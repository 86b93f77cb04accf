package task

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	valid := Draft{Title: "Water plants", Date: "2026-09-15", Description: "front garden"}

	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string // "title", "date", "description", or "" for all clear
		wantMsg   string
	}{
		{
			name:   "valid draft",
			mutate: func(d *Draft) {},
		},
		{
			name:      "empty title",
			mutate:    func(d *Draft) { d.Title = "" },
			wantField: "title",
			wantMsg:   MsgTitleRequired,
		},
		{
			name:      "whitespace-only title",
			mutate:    func(d *Draft) { d.Title = "   \t" },
			wantField: "title",
			wantMsg:   MsgTitleRequired,
		},
		{
			name:      "title with digit",
			mutate:    func(d *Draft) { d.Title = "Water plants 2" },
			wantField: "title",
			wantMsg:   MsgTitleLettersOnly,
		},
		{
			name:      "title with symbol",
			mutate:    func(d *Draft) { d.Title = "Water-plants!" },
			wantField: "title",
			wantMsg:   MsgTitleLettersOnly,
		},
		{
			name:   "title with inner spaces is fine",
			mutate: func(d *Draft) { d.Title = "Water the plants" },
		},
		{
			name:      "missing date",
			mutate:    func(d *Draft) { d.Date = "" },
			wantField: "date",
			wantMsg:   MsgDateRequired,
		},
		{
			name:      "malformed date",
			mutate:    func(d *Draft) { d.Date = "next tuesday" },
			wantField: "date",
			wantMsg:   MsgDateFormat,
		},
		{
			name:      "date in the past",
			mutate:    func(d *Draft) { d.Date = "2026-08-30" },
			wantField: "date",
			wantMsg:   MsgDatePast,
		},
		{
			name:   "date is today",
			mutate: func(d *Draft) { d.Date = "2026-08-31" },
		},
		{
			name:      "empty description",
			mutate:    func(d *Draft) { d.Description = "" },
			wantField: "description",
			wantMsg:   MsgDescriptionRequired,
		},
		{
			name:      "whitespace-only description",
			mutate:    func(d *Draft) { d.Description = "  \n " },
			wantField: "description",
			wantMsg:   MsgDescriptionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			errs := Validate(d, now)

			if tt.wantField == "" {
				if !errs.OK() {
					t.Fatalf("want no errors, got %+v", errs)
				}
				return
			}

			if errs.OK() {
				t.Fatal("want an error, got none")
			}
			got := map[string]string{
				"title":       errs.Title,
				"date":        errs.Date,
				"description": errs.Description,
			}[tt.wantField]
			if got != tt.wantMsg {
				t.Errorf("%s error: got %q, want %q", tt.wantField, got, tt.wantMsg)
			}
		})
	}
}

func TestValidateTrimsBeforeCharacterCheck(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	errs := Validate(Draft{Title: "  Groceries  ", Date: "2026-08-31", Description: "milk"}, now)
	if !errs.OK() {
		t.Errorf("surrounding whitespace should not fail validation: %+v", errs)
	}
}
