package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"compatron/internal/models"
)

type ctxKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the user stored by WithUser.
func UserFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(ctxKey{}).(models.SessionUser)
	return user, ok && user.ID != 0
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// messages overrides the text sent for the sentinel errors of one resource.
type messages struct {
	notFound  string
	forbidden string
}

// writeServiceError maps service errors onto status codes and client-facing text.
func writeServiceError(w http.ResponseWriter, err error, m messages) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, errBadID):
		writeError(w, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, models.ErrDuplicateUsername):
		writeError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrForbidden):
		writeError(w, http.StatusForbidden, m.forbidden)
	case errors.Is(err, models.ErrNoRecord):
		writeError(w, http.StatusNotFound, m.notFound)
	default:
		log.Printf("ERROR\t%v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUser writes a 401 and reports false when the request is anonymous.
func currentUser(w http.ResponseWriter, r *http.Request) (models.SessionUser, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
	}
	return user, ok
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
