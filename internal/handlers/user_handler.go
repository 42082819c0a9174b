package handlers

import (
	"net/http"

	"compatron/internal/models"
	"compatron/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, messages{})
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, messages{})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Me echoes the user behind the bearer token.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]models.SessionUser{"user": user})
}
