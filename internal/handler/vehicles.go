package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Create handles POST /vehicles requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	created, err := h.service.Create(r.Context(), req.toDomain())
	if err != nil {
		h.writeServiceError(w, r, err, "create vehicle")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/vehicles/%d", created.ID))
	h.writeJSON(w, http.StatusCreated, toResponse(created))
}

// List handles GET /vehicles requests.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := ParseFilters(r.URL.Query())
	if err != nil {
		h.writeServiceError(w, r, err, "list vehicles")
		return
	}

	vehicles, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.writeServiceError(w, r, err, "list vehicles")
		return
	}

	resp := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, toResponse(v))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /vehicles/{id} requests.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	v, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, "get vehicle")
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(v))
}

// Update handles PUT /vehicles/{id} requests.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	if req.ID != 0 && req.ID != id {
		h.writeError(w, http.StatusBadRequest, "id_mismatch",
			fmt.Sprintf("body Id %d does not match path id %d", req.ID, id))
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toDomain())
	if err != nil {
		h.writeServiceError(w, r, err, "update vehicle")
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(updated))
}

// Delete handles DELETE /vehicles/{id} requests.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "delete vehicle")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path value, writing a 400 response when it is not a positive integer.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, http.StatusBadRequest, "invalid_id", "id must be a positive integer")
		return 0, false
	}
	return id, true
}
