package handler

import (
	"net/http"

	"github.com/pattarin-dev/webboard/internal/api"
	"github.com/pattarin-dev/webboard/internal/domain"
	mw "github.com/pattarin-dev/webboard/internal/middleware"
	"github.com/pattarin-dev/webboard/internal/utils"
)

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, threads)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// Author comes from the verified token, never the body.
	thread, err := h.thread.Create(domain.ThreadCreationData{
		Title:   body.Title,
		Content: body.Content,
		Author:  user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.ThreadResponse{Thread: thread})
}
