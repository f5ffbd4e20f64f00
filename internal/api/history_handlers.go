package api

import (
	"net/http"

	"parkledger/internal/entities"
	"parkledger/internal/service"
)

type HistoryHandler struct {
	Service *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{Service: svc}
}

func (h *HistoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := entities.HistoryQuery{
		Query:      r.URL.Query().Get("q"),
		Kind:       r.URL.Query().Get("kind"),
		Membership: r.URL.Query().Get("member"),
	}
	result, err := h.Service.Search(q)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *HistoryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.Dashboard())
}
