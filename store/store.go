// Package store persists blog drafts so an authoring session survives a
// browser refresh or server restart. Content is stored as the JSON
// content object plus the last assembled HTML snapshot.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/blog"
)

// ErrNotFound is returned when a draft id does not exist.
var ErrNotFound = errors.New("draft not found")

// timeLayout is fixed-width so that lexicographic ordering in SQL
// matches chronological ordering. RFC3339Nano trims trailing zeros and
// breaks that property.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Draft is a saved authoring session.
type Draft struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Keywords  string        `json:"keywords"`
	Content   *blog.Content `json:"content"`
	HTML      string        `json:"html,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// DraftSummary is the listing view of a draft, without the heavy
// content and HTML columns.
type DraftSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Keywords  string    `json:"keywords"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store wraps a SQLite database holding drafts.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL allows concurrent reads during writes; the busy timeout makes
	// writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS drafts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    keywords TEXT NOT NULL,
    content TEXT NOT NULL,
    html TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`)
	return err
}

// SaveDraft inserts a new draft or updates an existing one. A draft
// without an id gets a fresh one; the assigned id is returned on the
// draft itself.
func (s *Store) SaveDraft(ctx context.Context, d *Draft) error {
	if d.Content == nil {
		return errors.New("draft content is required")
	}
	contentJSON, err := json.Marshal(d.Content)
	if err != nil {
		return fmt.Errorf("failed to serialize draft content: %w", err)
	}

	now := time.Now().UTC()
	if d.ID == "" {
		d.ID = uuid.NewString()
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	if d.Title == "" {
		d.Title = d.Content.Title
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO drafts (id, title, keywords, content, html, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    keywords = excluded.keywords,
    content = excluded.content,
    html = excluded.html,
    updated_at = excluded.updated_at
`, d.ID, d.Title, d.Keywords, string(contentJSON), d.HTML,
		d.CreatedAt.Format(timeLayout), d.UpdatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// GetDraft loads a full draft by id.
func (s *Store) GetDraft(ctx context.Context, id string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, title, keywords, content, html, created_at, updated_at
FROM drafts WHERE id = ?`, id)

	var d Draft
	var contentJSON, createdAt, updatedAt string
	err := row.Scan(&d.ID, &d.Title, &d.Keywords, &contentJSON, &d.HTML, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var content blog.Content
	if err := json.Unmarshal([]byte(contentJSON), &content); err != nil {
		return nil, fmt.Errorf("failed to parse draft content: %w", err)
	}
	content.Normalize()
	d.Content = &content
	d.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	d.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
	return &d, nil
}

// ListDrafts returns draft summaries ordered by last update, newest
// first.
func (s *Store) ListDrafts(ctx context.Context) ([]DraftSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, keywords, created_at, updated_at
FROM drafts ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []DraftSummary{}
	for rows.Next() {
		var d DraftSummary
		var createdAt, updatedAt string
		if err := rows.Scan(&d.ID, &d.Title, &d.Keywords, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		d.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		d.UpdatedAt, _ = time.Parse(timeLayout, updatedAt)
		summaries = append(summaries, d)
	}
	return summaries, rows.Err()
}

// DeleteDraft removes a draft by id.
func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
