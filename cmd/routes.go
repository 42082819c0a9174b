package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"compatron/internal/handlers"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.authenticate(true))

	mux := pat.New()

	// Auth
	mux.Post("/auth/register", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/auth/me", authMiddleware.ThenFunc(app.userHandler.Me))

	// Units
	mux.Get("/units", standardMiddleware.ThenFunc(handlers.Units))

	// Items
	mux.Get("/items/compare", authMiddleware.ThenFunc(app.itemHandler.CompareItems))
	mux.Get("/items/:id/history", authMiddleware.ThenFunc(app.itemHandler.History))
	mux.Get("/items", authMiddleware.ThenFunc(app.itemHandler.ListItems))
	mux.Post("/items", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Patch("/items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Shopping lists
	mux.Get("/shopping-lists", authMiddleware.ThenFunc(app.shoppingListHandler.ListLists))
	mux.Post("/shopping-lists", authMiddleware.ThenFunc(app.shoppingListHandler.CreateList))
	mux.Get("/shopping-lists/:id", authMiddleware.ThenFunc(app.shoppingListHandler.GetList))
	mux.Patch("/shopping-lists/:id", authMiddleware.ThenFunc(app.shoppingListHandler.UpdateList))
	mux.Del("/shopping-lists/:id", authMiddleware.ThenFunc(app.shoppingListHandler.DeleteList))

	// Events
	mux.Get("/ws", alice.New(app.recoverPanic, app.logRequest, app.authenticate(false)).ThenFunc(app.WebSocketHandler))

	return mux
}
