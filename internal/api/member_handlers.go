package api

import (
	"encoding/json"
	"net/http"

	"parkledger/internal/entities"
	"parkledger/internal/service"

	"github.com/gorilla/mux"
)

type MemberHandler struct {
	Service *service.MemberService
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{Service: svc}
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	member, err := h.Service.Create(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Service.List())
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]
	member, err := h.Service.Get(phone)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]
	var req entities.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	member, err := h.Service.Update(phone, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]
	if err := h.Service.Delete(phone); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Member deleted"})
}
