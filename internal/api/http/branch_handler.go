package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"spacebook-backend/internal/service"
)

type BranchHandler struct {
	branchSvc service.BranchService
}

func NewBranchHandler(branchSvc service.BranchService) *BranchHandler {
	return &BranchHandler{branchSvc: branchSvc}
}

type branchRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	branch, err := h.branchSvc.CreateBranch(r.Context(), req.Name, req.Location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, branch)
}

func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	branch, err := h.branchSvc.GetBranch(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchSvc.ListBranches(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	branch, err := h.branchSvc.UpdateBranch(r.Context(), mux.Vars(r)["code"], req.Name, req.Location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.branchSvc.DeleteBranch(r.Context(), mux.Vars(r)["code"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BranchHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readImageUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}
	path, err := h.branchSvc.SaveBranchImage(r.Context(), mux.Vars(r)["code"], filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}
