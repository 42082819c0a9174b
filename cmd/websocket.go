package main

import (
	"net/http"

	"compatron/internal/handlers"
)

// WebSocketHandler streams item events. Signed-in clients also receive
// events about their own private items.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	var viewerID int64
	if user, ok := handlers.UserFromContext(r.Context()); ok {
		viewerID = user.ID
	}
	app.hub.ServeWS(w, r, viewerID)
}
