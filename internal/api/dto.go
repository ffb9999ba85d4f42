package api

import "github.com/pattarin-dev/webboard/internal/domain"

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateThreadRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Response DTOs

// MessageResponse is the generic `{message}` body used for confirmations
// and mapped errors alike.
type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ThreadResponse wraps a canonical thread row
type ThreadResponse struct {
	domain.Thread
}
