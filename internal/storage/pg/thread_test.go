package pg

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pattarin-dev/webboard/internal/domain"
)

var threadRowColumns = []string{"id", "title", "content", "user_id", "created_at", "username"}

func TestCreateThread(t *testing.T) {
	storage, mock, cleanup := newMockStorage(t)
	defer cleanup()

	created := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO threads\(title, content, user_id\) VALUES\(\$1, \$2, \$3\) RETURNING id`).
		WithArgs("hello", "world", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`SELECT t.id, t.title, t.content, t.user_id, t.created_at, u.username`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(threadRowColumns).AddRow(42, "hello", "world", 7, created, "somchai"))
	mock.ExpectCommit()

	thread, err := storage.CreateThread(domain.ThreadCreationData{Title: "hello", Content: "world", Author: 7})
	if err != nil {
		t.Fatalf("CreateThread: %v", err)
	}
	if thread.Id != 42 || thread.Author != "somchai" || !thread.CreatedAt.Equal(created) {
		t.Errorf("unexpected thread: %+v", thread)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCreateThread_InsertFails(t *testing.T) {
	storage, mock, cleanup := newMockStorage(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO threads`).
		WithArgs("hello", "world", int64(7)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := storage.CreateThread(domain.ThreadCreationData{Title: "hello", Content: "world", Author: 7})
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestThreads(t *testing.T) {
	storage, mock, cleanup := newMockStorage(t)
	defer cleanup()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT t.id, t.title, t.content, t.user_id, t.created_at, u.username\s+FROM threads t\s+JOIN users u ON t.user_id = u.id\s+ORDER BY t.created_at DESC`).
		WillReturnRows(sqlmock.NewRows(threadRowColumns).
			AddRow(2, "second", "b", 1, now, "somchai").
			AddRow(1, "first", "a", 2, now.Add(-time.Hour), "malee"))

	threads, err := storage.Threads()
	if err != nil {
		t.Fatalf("Threads: %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("len = %d, want 2", len(threads))
	}
	if threads[0].Id != 2 || threads[0].Author != "somchai" {
		t.Errorf("unexpected first thread: %+v", threads[0])
	}
	if threads[1].Id != 1 || threads[1].Author != "malee" {
		t.Errorf("unexpected second thread: %+v", threads[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestThreads_Empty(t *testing.T) {
	storage, mock, cleanup := newMockStorage(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT t.id, t.title`).
		WillReturnRows(sqlmock.NewRows(threadRowColumns))

	threads, err := storage.Threads()
	if err != nil {
		t.Fatalf("Threads: %v", err)
	}
	if threads == nil || len(threads) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", threads)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
