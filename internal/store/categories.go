package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Category struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *Category) Owner() string { return c.OwnerID }

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) q(query string) string { return s.db.Rebind(query) }

func (s *CategoryStore) Create(ctx context.Context, ownerID, name string) (*Category, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO categories (id, owner_id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`), id, ownerID, name, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *CategoryStore) GetByID(ctx context.Context, id string) (*Category, error) {
	var c Category
	err := s.db.GetContext(ctx, &c, s.q(`SELECT * FROM categories WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryStore) ListByOwner(ctx context.Context, ownerID string) ([]*Category, error) {
	var categories []*Category
	err := s.db.SelectContext(ctx, &categories, s.q(`
		SELECT * FROM categories WHERE owner_id = ? ORDER BY name ASC
	`), ownerID)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Update(ctx context.Context, id, name string) (*Category, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		UPDATE categories SET name = ?, updated_at = ? WHERE id = ?
	`), name, now, id)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *CategoryStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM categories WHERE id = ?`), id)
	return err
}
