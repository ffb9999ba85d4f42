package service

import (
	"github.com/pattarin-dev/webboard/internal/domain"
)

type ThreadService interface {
	Create(creationData domain.ThreadCreationData) (domain.Thread, error)
	All() ([]domain.Thread, error)
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error)
	Threads() ([]domain.Thread, error)
}

type Thread struct {
	storage ThreadStorage
}

func NewThread(storage ThreadStorage) *Thread {
	return &Thread{storage}
}

// Create persists a thread. The author id arrives from verified token
// claims, never from the request body.
func (t *Thread) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	return t.storage.CreateThread(creationData)
}

func (t *Thread) All() ([]domain.Thread, error) {
	return t.storage.Threads()
}
