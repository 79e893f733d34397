package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/domain"
)

// SelectionHandler covers the post-auction phase: qualification, playing-XI
// submission and the final leaderboard.
type SelectionHandler struct {
	store *auction.Store
}

func NewSelectionHandler(store *auction.Store) *SelectionHandler {
	return &SelectionHandler{store: store}
}

func (h *SelectionHandler) CheckQualification(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	room, err := h.store.Get(code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, room.Qualification())
}

type SubmitXIRequest struct {
	Code      string `json:"code"`
	Team      string `json:"team"`
	PlayerIDs []int  `json:"player_ids"`
}

func (h *SelectionHandler) SubmitXI(w http.ResponseWriter, r *http.Request) {
	var req SubmitXIRequest
	if !decodeBody(w, r, &req) {
		return
	}
	room, err := h.store.Get(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := room.SubmitXI(domain.TeamTag(strings.ToUpper(req.Team)), req.PlayerIDs); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}

// Winner serves the final leaderboard. 404 until the room completes.
func (h *SelectionHandler) Winner(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	room, err := h.store.Get(code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	result, err := room.Winner()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Leaderboard)
}
