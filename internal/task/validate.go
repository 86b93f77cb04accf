package task

import (
	"strings"
	"time"
	"unicode"
)

// Validation messages shown next to the offending field.
const (
	MsgTitleRequired       = "Title is required"
	MsgTitleLettersOnly    = "Title should only contain letters and spaces"
	MsgDateRequired        = "Date is required"
	MsgDateFormat          = "Date must be in YYYY-MM-DD format"
	MsgDatePast            = "Date cannot be in the past"
	MsgDescriptionRequired = "Description is required"
)

// Draft holds the in-progress form fields before they are committed to a
// task. Drafts are never persisted.
type Draft struct {
	Title       string
	Date        string
	Description string
}

// FromTask returns a draft populated from a task's current values.
func FromTask(t Task) Draft {
	return Draft{Title: t.Title, Date: t.Date, Description: t.Description}
}

// FieldErrors holds one error message per draft field. An empty string
// means the field is valid.
type FieldErrors struct {
	Title       string
	Date        string
	Description string
}

// OK reports whether all fields validated cleanly.
func (e FieldErrors) OK() bool {
	return e.Title == "" && e.Date == "" && e.Description == ""
}

// Validate checks a draft against the write-time constraints and returns
// one message (or empty) per field. now anchors the past-date check; dates
// are compared at midnight granularity, so a date equal to today's is
// accepted.
func Validate(d Draft, now time.Time) FieldErrors {
	var errs FieldErrors

	title := strings.TrimSpace(d.Title)
	switch {
	case title == "":
		errs.Title = MsgTitleRequired
	case !lettersAndSpaces(title):
		errs.Title = MsgTitleLettersOnly
	}

	date := strings.TrimSpace(d.Date)
	if date == "" {
		errs.Date = MsgDateRequired
	} else if due, err := time.ParseInLocation(DateLayout, date, now.Location()); err != nil {
		errs.Date = MsgDateFormat
	} else if due.Before(midnight(now)) {
		errs.Date = MsgDatePast
	}

	if strings.TrimSpace(d.Description) == "" {
		errs.Description = MsgDescriptionRequired
	}

	return errs
}

// lettersAndSpaces reports whether s consists only of ASCII letters and
// whitespace.
func lettersAndSpaces(s string) bool {
	for _, r := range s {
		ok := (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			unicode.IsSpace(r)
		if !ok {
			return false
		}
	}
	return true
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
