package handlers

import (
	"net/http"

	"compatron/internal/units"
)

func Units(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, units.Catalog())
}
