package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pattarin-dev/webboard/internal/domain"
	internal_errors "github.com/pattarin-dev/webboard/internal/errors"
)

const threadColumns = `t.id, t.title, t.content, t.user_id, t.created_at, u.username`

// CreateThread inserts the row and re-reads it joined with the author's
// username within the same transaction, returning the canonical
// representation with the server-assigned id and created_at.
func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var thread domain.Thread
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var id domain.ThreadId
		err := tx.QueryRow(
			"INSERT INTO threads(title, content, user_id) VALUES($1, $2, $3) RETURNING id",
			creationData.Title, creationData.Content, creationData.Author,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert thread: %w", err)
		}

		thread, err = s.thread(tx, id)
		return err
	})
	return thread, err
}

// Threads returns every thread joined with its author, newest first.
// No pagination; unbounded result size is an accepted limitation.
func (s *Storage) Threads() ([]domain.Thread, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
        SELECT %s
        FROM threads t
        JOIN users u ON t.user_id = u.id
        ORDER BY t.created_at DESC
    `, threadColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to query threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	for rows.Next() {
		var t domain.Thread
		if err := rows.Scan(&t.Id, &t.Title, &t.Content, &t.AuthorId, &t.CreatedAt, &t.Author); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

func (s *Storage) thread(q Querier, id domain.ThreadId) (domain.Thread, error) {
	var t domain.Thread
	err := q.QueryRow(fmt.Sprintf(`
        SELECT %s
        FROM threads t
        JOIN users u ON t.user_id = u.id
        WHERE t.id = $1
    `, threadColumns), id).Scan(&t.Id, &t.Title, &t.Content, &t.AuthorId, &t.CreatedAt, &t.Author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: http.StatusNotFound}
		}
		return domain.Thread{}, fmt.Errorf("failed to query thread: %w", err)
	}
	return t, nil
}
