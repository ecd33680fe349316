package store

import (
	"context"
	"fmt"

	"bookgen/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSnapshotNotFound is returned when no records are stored under a key.
var ErrSnapshotNotFound = book.ErrSnapshotNotFound

var (
	bookColumns   = []string{"snapshot_key", "position", "book_id", "isbn", "title", "authors", "publisher", "cover_url", "likes"}
	reviewColumns = []string{"snapshot_key", "book_position", "position", "review_id", "author", "rating", "body", "review_date"}
)

// SnapshotPG stores generated pages in Postgres under a caller-chosen key.
type SnapshotPG struct {
	db *pgxpool.Pool
}

func NewSnapshotPG(db *pgxpool.Pool) *SnapshotPG {
	return &SnapshotPG{db: db}
}

// Save replaces the snapshot stored under key with records.
func (r *SnapshotPG) Save(ctx context.Context, key string, records []book.Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM generated_books WHERE snapshot_key = $1`, key); err != nil {
		return fmt.Errorf("delete previous snapshot: %w", err)
	}

	bookRows := make([][]any, 0, len(records))
	var reviewRows [][]any
	for i, rec := range records {
		pos := i + 1
		bookRows = append(bookRows, []any{key, pos, rec.ID, rec.ISBN, rec.Title, rec.Authors, rec.Publisher, rec.CoverURL, rec.Likes})
		for j, rv := range rec.Reviews {
			reviewRows = append(reviewRows, []any{key, pos, j + 1, rv.ID, rv.Author, int16(rv.Rating), rv.Text, rv.Date})
		}
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"generated_books"}, bookColumns, pgx.CopyFromRows(bookRows)); err != nil {
		return fmt.Errorf("copy books: %w", err)
	}
	if len(reviewRows) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"generated_reviews"}, reviewColumns, pgx.CopyFromRows(reviewRows)); err != nil {
			return fmt.Errorf("copy reviews: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Load returns the records stored under key in their saved order.
func (r *SnapshotPG) Load(ctx context.Context, key string) ([]book.Record, error) {
	rows, err := r.db.Query(ctx, `
	SELECT book_id, isbn, title, authors, publisher, cover_url, likes
	FROM generated_books
	WHERE snapshot_key = $1
	ORDER BY position
	`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []book.Record
	for rows.Next() {
		var rec book.Record
		if err := rows.Scan(&rec.ID, &rec.ISBN, &rec.Title, &rec.Authors, &rec.Publisher, &rec.CoverURL, &rec.Likes); err != nil {
			return nil, err
		}
		rec.Reviews = []book.Review{}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrSnapshotNotFound
	}

	reviewRows, err := r.db.Query(ctx, `
	SELECT book_position, review_id, author, rating, body, review_date
	FROM generated_reviews
	WHERE snapshot_key = $1
	ORDER BY book_position, position
	`, key)
	if err != nil {
		return nil, err
	}
	defer reviewRows.Close()

	for reviewRows.Next() {
		var (
			pos    int
			rating int16
			rv     book.Review
		)
		if err := reviewRows.Scan(&pos, &rv.ID, &rv.Author, &rating, &rv.Text, &rv.Date); err != nil {
			return nil, err
		}
		if pos < 1 || pos > len(records) {
			return nil, fmt.Errorf("review references missing book position %d", pos)
		}
		rv.Rating = int(rating)
		records[pos-1].Reviews = append(records[pos-1].Reviews, rv)
	}
	if err := reviewRows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of records stored under key.
func (r *SnapshotPG) Count(ctx context.Context, key string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM generated_books WHERE snapshot_key = $1`, key).Scan(&n)
	return n, err
}

// Delete removes the snapshot stored under key. Reviews cascade.
func (r *SnapshotPG) Delete(ctx context.Context, key string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM generated_books WHERE snapshot_key = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
