package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"compatron/internal/models"
)

type memItems struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Item
}

func newMemItems() *memItems {
	return &memItems{items: make(map[int64]models.Item)}
}

func (m *memItems) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	item.ID = m.nextID
	m.items[item.ID] = item
	return item, nil
}

func (m *memItems) GetItemByID(_ context.Context, id int64) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return models.Item{}, models.ErrNoRecord
	}
	return item, nil
}

func (m *memItems) ListItems(_ context.Context, viewerID int64, f models.ItemFilter) ([]models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Item{}
	for _, it := range m.items {
		if it.Private && it.OwnerID != viewerID {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitPrice != out[j].UnitPrice {
			return out[i].UnitPrice < out[j].UnitPrice
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memItems) DeleteItem(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return models.ErrNoRecord
	}
	delete(m.items, id)
	return nil
}

func (m *memItems) SetPrivate(_ context.Context, id int64, private bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return models.ErrNoRecord
	}
	it.Private = private
	m.items[id] = it
	return nil
}

type memHistory struct {
	entries []models.PriceHistoryEntry
	fail    bool
}

func (m *memHistory) RecordPrice(_ context.Context, e models.PriceHistoryEntry) (models.PriceHistoryEntry, error) {
	if m.fail {
		return models.PriceHistoryEntry{}, errors.New("history unavailable")
	}
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memHistory) ListByItem(_ context.Context, itemID int64) ([]models.PriceHistoryEntry, error) {
	out := []models.PriceHistoryEntry{}
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].ItemID == itemID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

type recordingPublisher struct {
	events []models.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev models.Event) error {
	p.events = append(p.events, ev)
	return p.err
}

type memLists struct {
	nextID int64
	lists  map[int64]models.ShoppingList
}

func newMemLists() *memLists {
	return &memLists{lists: make(map[int64]models.ShoppingList)}
}

func (m *memLists) CreateList(_ context.Context, list models.ShoppingList) (models.ShoppingList, error) {
	m.nextID++
	list.ID = m.nextID
	list.CreatedAt = time.Now()
	list.UpdatedAt = list.CreatedAt
	m.lists[list.ID] = list
	return list, nil
}

func (m *memLists) ListByOwner(_ context.Context, ownerID int64) ([]models.ShoppingList, error) {
	out := []models.ShoppingList{}
	for _, l := range m.lists {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memLists) GetList(_ context.Context, id, ownerID int64) (models.ShoppingList, error) {
	l, ok := m.lists[id]
	if !ok || l.OwnerID != ownerID {
		return models.ShoppingList{}, models.ErrNoRecord
	}
	return l, nil
}

func (m *memLists) UpdateList(_ context.Context, list models.ShoppingList) (models.ShoppingList, error) {
	if _, err := m.GetList(context.Background(), list.ID, list.OwnerID); err != nil {
		return models.ShoppingList{}, err
	}
	list.UpdatedAt = time.Now()
	m.lists[list.ID] = list
	return list, nil
}

func (m *memLists) DeleteList(_ context.Context, id, ownerID int64) error {
	if _, err := m.GetList(context.Background(), id, ownerID); err != nil {
		return err
	}
	delete(m.lists, id)
	return nil
}

type memUsers struct {
	users []models.User
}

func (m *memUsers) CreateUser(_ context.Context, u models.User) (models.User, error) {
	u.ID = int64(len(m.users) + 1)
	m.users = append(m.users, u)
	return u, nil
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrNoRecord
}

type stubTokens struct {
	ttl time.Duration
}

func (s *stubTokens) NewJWT(u models.SessionUser, ttl time.Duration) (string, error) {
	s.ttl = ttl
	return fmt.Sprintf("token-%d-%s", u.ID, u.Username), nil
}
