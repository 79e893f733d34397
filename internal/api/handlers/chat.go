package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/domain"
)

// ChatHandler serves room chat and the auction event log.
type ChatHandler struct {
	store *auction.Store
}

func NewChatHandler(store *auction.Store) *ChatHandler {
	return &ChatHandler{store: store}
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	room, err := h.store.Get(code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	msgs := room.ChatHistory()
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

type SendMessageRequest struct {
	Code    string `json:"code"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Sender = strings.TrimSpace(req.Sender)
	req.Message = strings.TrimSpace(req.Message)
	if req.Sender == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "sender and message are required")
		return
	}
	room, err := h.store.Get(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	msg := room.AddChat(req.Sender, req.Message)
	writeJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) Logs(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	room, err := h.store.Get(code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	logs := room.Logs()
	if logs == nil {
		logs = []domain.LogEntry{}
	}
	writeJSON(w, http.StatusOK, logs)
}
