package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/domain"
)

type RoomHandler struct {
	store *auction.Store
}

func NewRoomHandler(store *auction.Store) *RoomHandler {
	return &RoomHandler{store: store}
}

type CreateRoomRequest struct {
	HostName string `json:"host_name"`
	Team     string `json:"team"`
	IsPublic bool   `json:"is_public"`
}

type CreateRoomResponse struct {
	Code string `json:"code"`
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.HostName = strings.TrimSpace(req.HostName)
	if req.HostName == "" {
		writeError(w, http.StatusBadRequest, "host_name is required")
		return
	}
	room, err := h.store.CreateRoom(req.HostName, domain.TeamTag(strings.ToUpper(req.Team)), req.IsPublic)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateRoomResponse{Code: room.Code()})
}

type JoinRoomRequest struct {
	Code     string `json:"code"`
	Username string `json:"username"`
	Team     string `json:"team"`
}

func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRoomRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if _, err := h.store.JoinRoom(code, req.Username, domain.TeamTag(strings.ToUpper(req.Team))); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (h *RoomHandler) State(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	room, err := h.store.Get(code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	viewer := domain.TeamTag(strings.ToUpper(r.URL.Query().Get("team")))
	writeJSON(w, http.StatusOK, room.Snapshot(viewer))
}

func (h *RoomHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	rooms := h.store.ListPublic()
	if rooms == nil {
		rooms = []auction.RoomSummary{}
	}
	writeJSON(w, http.StatusOK, rooms)
}
