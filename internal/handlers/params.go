package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"compatron/internal/models"
)

var errBadID = errors.New("invalid id")

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(getParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// parseItemFilter reads the listing query: sortBy, sortOrder, category,
// search, minPrice, maxPrice, store and a comma separated tags list.
func parseItemFilter(r *http.Request) (models.ItemFilter, error) {
	q := r.URL.Query()
	f := models.ItemFilter{
		SortBy:     models.ParseSortField(q.Get("sortBy")),
		Descending: strings.EqualFold(q.Get("sortOrder"), "desc"),
		Category:   models.Category(strings.TrimSpace(q.Get("category"))),
		Search:     strings.TrimSpace(q.Get("search")),
		Store:      strings.TrimSpace(q.Get("store")),
	}
	if !f.Category.Valid() {
		return models.ItemFilter{}, models.Invalid("Unknown category")
	}

	for _, bound := range []struct {
		key string
		dst **float64
	}{{"minPrice", &f.MinPrice}, {"maxPrice", &f.MaxPrice}} {
		raw := strings.TrimSpace(q.Get(bound.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.ItemFilter{}, models.Invalid("Invalid " + bound.key)
		}
		*bound.dst = &v
	}

	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				f.Tags = append(f.Tags, tag)
			}
		}
	}
	return f, nil
}
