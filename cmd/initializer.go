package main

import (
	"database/sql"
	"fmt"
	"log"

	"compatron/internal/config"
	"compatron/internal/handlers"
	"compatron/internal/realtime"
	"compatron/internal/repositories"
	"compatron/internal/services"
	"compatron/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config

	tokens *utils.Manager
	hub    *realtime.Hub
	bus    *realtime.RedisBus

	userHandler         *handlers.UserHandler
	itemHandler         *handlers.ItemHandler
	shoppingListHandler *handlers.ShoppingListHandler
}

// appLogger adapts the two standard loggers to the Logger interfaces of the modules.
type appLogger struct {
	info *log.Logger
	err  *log.Logger
}

func (l appLogger) Infof(format string, args ...interface{}) {
	l.info.Output(2, fmt.Sprintf(format, args...))
}

func (l appLogger) Errorf(format string, args ...interface{}) {
	l.err.Output(2, fmt.Sprintf(format, args...))
}

// initializeApp wires repositories, services and handlers. bus may be nil,
// in which case events go straight to the local hub.
func initializeApp(db *sql.DB, dialect repositories.Dialect, cfg config.Config, tokens *utils.Manager, hub *realtime.Hub, bus *realtime.RedisBus, errorLog, infoLog *log.Logger) *application {
	logger := appLogger{info: infoLog, err: errorLog}

	// Repositories
	userRepo := repositories.NewUserRepository(db, dialect)
	itemRepo := repositories.NewItemRepository(db, dialect)
	historyRepo := repositories.NewPriceHistoryRepository(db, dialect)
	listRepo := repositories.NewShoppingListRepository(db, dialect)

	var events services.Publisher = hub
	if bus != nil {
		events = bus
	}

	// Services
	userService := &services.UserService{UserRepo: userRepo, Tokens: tokens, TokenTTL: cfg.TokenTTL()}
	itemService := services.NewItemService(itemRepo, historyRepo, events, logger, cfg.Precision())
	listService := services.NewShoppingListService(listRepo, cfg.Pricing.Currency)

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		cfg:      cfg,
		tokens:   tokens,
		hub:      hub,
		bus:      bus,

		userHandler:         &handlers.UserHandler{Service: userService},
		itemHandler:         &handlers.ItemHandler{Service: itemService},
		shoppingListHandler: &handlers.ShoppingListHandler{Service: listService},
	}
}
