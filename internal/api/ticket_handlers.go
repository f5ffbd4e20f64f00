package api

import (
	"encoding/json"
	"net/http"

	"parkledger/internal/entities"
	"parkledger/internal/service"

	"github.com/gorilla/mux"
)

type TicketHandler struct {
	Service *service.TicketService
}

func NewTicketHandler(svc *service.TicketService) *TicketHandler {
	return &TicketHandler{Service: svc}
}

func (h *TicketHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req entities.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	ticket, err := h.Service.CheckIn(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"receipt": ticket.Receipt,
		"ticket":  ticket,
		"message": "Vehicle checked in.",
	})
}

func (h *TicketHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.ListActive())
}

func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	receipt := mux.Vars(r)["receipt"]
	ticket, err := h.Service.Get(receipt)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

// QuoteCheckout prices a checkout for operator confirmation. Nothing is
// mutated until ConfirmCheckout.
func (h *TicketHandler) QuoteCheckout(w http.ResponseWriter, r *http.Request) {
	receipt := mux.Vars(r)["receipt"]
	var req entities.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	quote, err := h.Service.Quote(receipt, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *TicketHandler) ConfirmCheckout(w http.ResponseWriter, r *http.Request) {
	receipt := mux.Vars(r)["receipt"]
	var req entities.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	tx, err := h.Service.Confirm(receipt, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"transaction": tx,
		"message":     "Checkout recorded.",
	})
}
