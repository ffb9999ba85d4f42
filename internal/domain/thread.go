package domain

import "time"

type ThreadId = int64

// Thread is the canonical representation returned by the storage layer:
// always joined with the author's username.
type Thread struct {
	Id        ThreadId  `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorId  UserId    `json:"-"`
	Author    string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title   string
	Content string
	Author  UserId
}
