package handlers

import (
	"net/http"

	"compatron/internal/models"
	"compatron/internal/services"
)

var listMessages = messages{notFound: "Shopping list not found", forbidden: "Shopping list not found"}

type ShoppingListHandler struct {
	Service *services.ShoppingListService
}

func (h *ShoppingListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	lists, err := h.Service.ListLists(r.Context(), user)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *ShoppingListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req models.CreateShoppingListRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	list, err := h.Service.CreateList(r.Context(), user, req)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

func (h *ShoppingListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	list, err := h.Service.GetList(r.Context(), user, id)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ShoppingListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	var req models.UpdateShoppingListRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	list, err := h.Service.UpdateList(r.Context(), user, id, req)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ShoppingListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	if err := h.Service.DeleteList(r.Context(), user, id); err != nil {
		writeServiceError(w, err, listMessages)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
