package handlers

import (
	"net/http"

	"compatron/internal/models"
	"compatron/internal/services"
)

var itemMessages = messages{notFound: "Item not found", forbidden: "Not authorized to modify this item"}

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	filter, err := parseItemFilter(r)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}

	items, err := h.Service.ListItems(r.Context(), user, filter)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) CompareItems(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	filter, err := parseItemFilter(r)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}

	groups, err := h.Service.CompareItems(r.Context(), user, filter)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req models.CreateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.Service.CreateItem(r.Context(), user, req)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}

	if err := h.Service.DeleteItem(r.Context(), user, id); err != nil {
		writeServiceError(w, err, messages{notFound: "Item not found", forbidden: "Not authorized to delete this item"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateItem toggles the private flag, the only mutable field of an item.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}
	var req models.SetPrivateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Private == nil {
		writeError(w, http.StatusBadRequest, "private must be a boolean")
		return
	}

	if err := h.Service.SetPrivate(r.Context(), user, id, *req.Private); err != nil {
		writeServiceError(w, err, messages{notFound: "Item not found", forbidden: "Not authorized to update this item"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ItemHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}

	history, err := h.Service.History(r.Context(), user, id)
	if err != nil {
		writeServiceError(w, err, itemMessages)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
