package http

import (
	"net/http"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/service"
)

type SpaceHandler struct {
	spaceSvc service.SpaceService
}

func NewSpaceHandler(spaceSvc service.SpaceService) *SpaceHandler {
	return &SpaceHandler{spaceSvc: spaceSvc}
}

func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var space domain.LibrarySpace
	if err := decodeBody(r, &space); err != nil {
		writeError(w, err)
		return
	}
	if err := h.spaceSvc.CreateSpace(r.Context(), &space); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, space)
}

func (h *SpaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	space, err := h.spaceSvc.GetSpace(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, space)
}

func (h *SpaceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.SpaceFilter{
		LibraryCode:          q.Get("library_code"),
		CampusCode:           q.Get("campus_code"),
		HasProjector:         q.Get("has_projector") == "true",
		HasWhiteboard:        q.Get("has_whiteboard") == "true",
		HasWifi:              q.Get("has_wifi") == "true",
		HasPowerPlug:         q.Get("has_power_plug") == "true",
		HasNetworkNode:       q.Get("has_network_node") == "true",
		WheelchairAccessible: q.Get("wheelchair_accessible") == "true",
	}
	spaces, err := h.spaceSvc.ListSpaces(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spaces)
}

func (h *SpaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var space domain.LibrarySpace
	if err := decodeBody(r, &space); err != nil {
		writeError(w, err)
		return
	}
	space.SpaceID = id
	if err := h.spaceSvc.UpdateSpace(r.Context(), &space); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, space)
}

func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.spaceSvc.DeleteSpace(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SpaceHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	filename, data, err := readImageUpload(r)
	if err != nil {
		writeError(w, err)
		return
	}
	path, err := h.spaceSvc.SaveSpaceImage(r.Context(), id, filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}
