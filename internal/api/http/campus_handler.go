package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/service"
)

type CampusHandler struct {
	campusSvc service.CampusService
}

func NewCampusHandler(campusSvc service.CampusService) *CampusHandler {
	return &CampusHandler{campusSvc: campusSvc}
}

func (h *CampusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var campus domain.Campus
	if err := decodeBody(r, &campus); err != nil {
		writeError(w, err)
		return
	}
	if err := h.campusSvc.CreateCampus(r.Context(), &campus); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, campus)
}

func (h *CampusHandler) Get(w http.ResponseWriter, r *http.Request) {
	campus, err := h.campusSvc.GetCampus(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campus)
}

func (h *CampusHandler) List(w http.ResponseWriter, r *http.Request) {
	campuses, err := h.campusSvc.ListCampuses(r.Context(), r.URL.Query().Get("branch_code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campuses)
}

func (h *CampusHandler) Update(w http.ResponseWriter, r *http.Request) {
	var campus domain.Campus
	if err := decodeBody(r, &campus); err != nil {
		writeError(w, err)
		return
	}
	campus.CampusCode = mux.Vars(r)["code"]
	if err := h.campusSvc.UpdateCampus(r.Context(), &campus); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campus)
}

func (h *CampusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.campusSvc.DeleteCampus(r.Context(), mux.Vars(r)["code"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
