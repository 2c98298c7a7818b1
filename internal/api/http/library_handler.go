package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/service"
)

type LibraryHandler struct {
	librarySvc service.LibraryService
}

func NewLibraryHandler(librarySvc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{librarySvc: librarySvc}
}

func (h *LibraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var library domain.Library
	if err := decodeBody(r, &library); err != nil {
		writeError(w, err)
		return
	}
	if err := h.librarySvc.CreateLibrary(r.Context(), &library); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, library)
}

func (h *LibraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	library, err := h.librarySvc.GetLibrary(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, library)
}

func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	libraries, err := h.librarySvc.ListLibraries(r.Context(), r.URL.Query().Get("campus_code"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, libraries)
}

func (h *LibraryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var library domain.Library
	if err := decodeBody(r, &library); err != nil {
		writeError(w, err)
		return
	}
	library.LibraryCode = mux.Vars(r)["code"]
	if err := h.librarySvc.UpdateLibrary(r.Context(), &library); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, library)
}

func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.librarySvc.DeleteLibrary(r.Context(), mux.Vars(r)["code"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LibraryHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readImageUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}
	path, err := h.librarySvc.SaveLibraryImage(r.Context(), mux.Vars(r)["code"], filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}
