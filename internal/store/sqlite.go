package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/taskwell/taskwell/internal/task"
)

// SQLite is a Repository backed by a local SQLite database. It implements
// the same full-replace contract as the file backend; the position column
// preserves insertion order across round-trips.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) a SQLite repository at dbPath.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			description TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate sqlite schema: %w", err)
	}
	return nil
}

// Load returns all tasks in insertion order.
func (s *SQLite) Load() ([]task.Task, error) {
	rows, err := s.db.Query(
		`SELECT id, title, date, description, completed FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		var t task.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Title, &t.Date, &t.Description, &completed); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

// Save replaces the stored list with tasks, in one transaction.
func (s *SQLite) Save(tasks []task.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO tasks (id, title, date, description, completed, position) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range tasks {
		completed := 0
		if t.Completed {
			completed = 1
		}
		if _, err := stmt.Exec(t.ID, t.Title, t.Date, t.Description, completed, i); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Get returns a single task by id.
func (s *SQLite) Get(id int64) (task.Task, error) {
	var t task.Task
	var completed int
	err := s.db.QueryRow(
		`SELECT id, title, date, description, completed FROM tasks WHERE id = ?`, id).
		Scan(&t.ID, &t.Title, &t.Date, &t.Description, &completed)
	if err == sql.ErrNoRows {
		return task.Task{}, ErrNotFound
	}
	if err != nil {
		return task.Task{}, fmt.Errorf("query task %d: %w", id, err)
	}
	t.Completed = completed != 0
	return t, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
