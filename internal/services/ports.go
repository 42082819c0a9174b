package services

import (
	"context"
	"time"

	"compatron/internal/models"
)

// Logger provides minimal logging required by the services.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type ItemStore interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context, viewerID int64, f models.ItemFilter) ([]models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	SetPrivate(ctx context.Context, id int64, private bool) error
}

type PriceHistoryStore interface {
	RecordPrice(ctx context.Context, e models.PriceHistoryEntry) (models.PriceHistoryEntry, error)
	ListByItem(ctx context.Context, itemID int64) ([]models.PriceHistoryEntry, error)
}

type ShoppingListStore interface {
	CreateList(ctx context.Context, list models.ShoppingList) (models.ShoppingList, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.ShoppingList, error)
	GetList(ctx context.Context, id, ownerID int64) (models.ShoppingList, error)
	UpdateList(ctx context.Context, list models.ShoppingList) (models.ShoppingList, error)
	DeleteList(ctx context.Context, id, ownerID int64) error
}

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

// Publisher fans item events out to connected clients.
type Publisher interface {
	Publish(ctx context.Context, ev models.Event) error
}

type TokenIssuer interface {
	NewJWT(user models.SessionUser, ttl time.Duration) (string, error)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
