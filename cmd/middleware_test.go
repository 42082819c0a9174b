package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"compatron/internal/handlers"
	"compatron/internal/models"
	"compatron/utils"
)

func testApp(t *testing.T) *application {
	t.Helper()
	tokens, err := utils.NewManager("test-secret")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	discard := log.New(io.Discard, "", 0)
	return &application{tokens: tokens, infoLog: discard, errorLog: discard}
}

func TestAuthenticate(t *testing.T) {
	app := testApp(t)
	valid, _ := app.tokens.NewJWT(models.SessionUser{ID: 5, Username: "ann"}, time.Hour)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := handlers.UserFromContext(r.Context()); ok {
			io.WriteString(w, user.Username)
			return
		}
		io.WriteString(w, "anonymous")
	})

	cases := []struct {
		name     string
		required bool
		header   string
		query    string
		code     int
		body     string
	}{
		{"header token", true, "Bearer " + valid, "", http.StatusOK, "ann"},
		{"query token", true, "", "?token=" + valid, http.StatusOK, "ann"},
		{"missing token", true, "", "", http.StatusUnauthorized, `{"error":"Not authenticated"}`},
		{"bad token", true, "Bearer junk", "", http.StatusUnauthorized, `{"error":"Not authenticated"}`},
		{"optional without token", false, "", "", http.StatusOK, "anonymous"},
		{"optional with bad token", false, "Bearer junk", "", http.StatusOK, "anonymous"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/items"+tc.query, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			app.authenticate(tc.required)(echo).ServeHTTP(rec, req)
			if rec.Code != tc.code {
				t.Fatalf("expected %d got %d", tc.code, rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.body {
				t.Fatalf("expected %q got %q", tc.body, got)
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	app := testApp(t)
	rec := httptest.NewRecorder()
	app.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError || rec.Header().Get("Connection") != "close" {
		t.Fatalf("unexpected response %d %v", rec.Code, rec.Header())
	}
}
