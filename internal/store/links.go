package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Link struct {
	ID         string    `db:"id"`
	OwnerID    string    `db:"owner_id"`
	URL        string    `db:"url"`
	Title      string    `db:"title"`
	Note       string    `db:"note"`
	CategoryID string    `db:"category_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Owner reports the identity that created the link. The column is set once
// at insert time and no store method updates it.
func (l *Link) Owner() string { return l.OwnerID }

type LinkStore struct {
	db *sqlx.DB
}

func NewLinkStore(db *sqlx.DB) *LinkStore {
	return &LinkStore{db: db}
}

func (s *LinkStore) q(query string) string { return s.db.Rebind(query) }

func (s *LinkStore) Create(ctx context.Context, ownerID, url, title, note, categoryID string) (*Link, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO links (id, owner_id, url, title, note, category_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), id, ownerID, url, title, note, categoryID, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *LinkStore) GetByID(ctx context.Context, id string) (*Link, error) {
	var l Link
	err := s.db.GetContext(ctx, &l, s.q(`SELECT * FROM links WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByOwner returns the owner's links, newest first. A non-empty categoryID
// narrows the list to that category.
func (s *LinkStore) ListByOwner(ctx context.Context, ownerID, categoryID string) ([]*Link, error) {
	var links []*Link
	var err error
	if categoryID != "" {
		err = s.db.SelectContext(ctx, &links, s.q(`
			SELECT * FROM links WHERE owner_id = ? AND category_id = ? ORDER BY created_at DESC
		`), ownerID, categoryID)
	} else {
		err = s.db.SelectContext(ctx, &links, s.q(`
			SELECT * FROM links WHERE owner_id = ? ORDER BY created_at DESC
		`), ownerID)
	}
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Update replaces the mutable fields of a link. The owner column is not
// touched; PATCH semantics (only provided fields change) are resolved by the
// handler before calling this.
func (s *LinkStore) Update(ctx context.Context, id, url, title, note, categoryID string) (*Link, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE links SET url = ?, title = ?, note = ?, category_id = ?, updated_at = ? WHERE id = ?
	`), url, title, note, categoryID, now, id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *LinkStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM links WHERE id = ?`), id)
	return err
}
