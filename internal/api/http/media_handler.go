package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/media"
)

// MediaHandler serves the stored facility images. Everything on disk is
// normalized JPEG, so the content type is fixed.
type MediaHandler struct {
	store *media.Store
}

func NewMediaHandler(store *media.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) Download(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := media.Kind(vars["kind"])
	switch kind {
	case media.KindBranch, media.KindLibrary, media.KindSpace:
	default:
		writeError(w, domain.ErrNotFound)
		return
	}

	file := vars["file"]
	if !strings.HasSuffix(file, ".jpg") || strings.Contains(file, "/") {
		writeError(w, domain.ErrNotFound)
		return
	}

	f, err := h.store.Open(strings.TrimSuffix(file, ".jpg"), kind)
	if err != nil {
		writeError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, f)
}
