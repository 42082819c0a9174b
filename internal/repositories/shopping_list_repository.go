package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"compatron/internal/models"
)

const listColumns = `id, name, items, total_estimated_cost, owner_id, username, created_at, updated_at`

// ShoppingListRepository stores list entries as a JSON document per list.
type ShoppingListRepository struct {
	store
}

func NewShoppingListRepository(db *sql.DB, d Dialect) *ShoppingListRepository {
	return &ShoppingListRepository{store{db: db, dialect: d}}
}

func (r *ShoppingListRepository) CreateList(ctx context.Context, list models.ShoppingList) (models.ShoppingList, error) {
	if list.Items == nil {
		list.Items = []models.ShoppingListItem{}
	}
	items, err := json.Marshal(list.Items)
	if err != nil {
		return models.ShoppingList{}, err
	}
	now := time.Now().UTC()
	if list.CreatedAt.IsZero() {
		list.CreatedAt = now
	}
	if list.UpdatedAt.IsZero() {
		list.UpdatedAt = list.CreatedAt
	}
	id, err := r.insert(ctx, `INSERT INTO shopping_lists (name, items, total_estimated_cost, owner_id, username, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		list.Name, string(items), list.TotalEstimatedCost, list.OwnerID, list.Username, list.CreatedAt, list.UpdatedAt)
	if err != nil {
		return models.ShoppingList{}, err
	}
	list.ID = id
	return list, nil
}

// ListByOwner returns the most recently updated lists first.
func (r *ShoppingListRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.ShoppingList, error) {
	rows, err := r.query(ctx, `SELECT `+listColumns+` FROM shopping_lists WHERE owner_id = ? ORDER BY updated_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []models.ShoppingList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

func (r *ShoppingListRepository) GetList(ctx context.Context, id, ownerID int64) (models.ShoppingList, error) {
	rows, err := r.query(ctx, `SELECT `+listColumns+` FROM shopping_lists WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return models.ShoppingList{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.ShoppingList{}, err
		}
		return models.ShoppingList{}, models.ErrNoRecord
	}
	return scanList(rows)
}

// UpdateList overwrites name, items and total of an owned list.
func (r *ShoppingListRepository) UpdateList(ctx context.Context, list models.ShoppingList) (models.ShoppingList, error) {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return models.ShoppingList{}, err
	}
	list.UpdatedAt = time.Now().UTC()
	res, err := r.exec(ctx, `UPDATE shopping_lists SET name = ?, items = ?, total_estimated_cost = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		list.Name, string(items), list.TotalEstimatedCost, list.UpdatedAt, list.ID, list.OwnerID)
	if err != nil {
		return models.ShoppingList{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ShoppingList{}, models.ErrNoRecord
	}
	return list, nil
}

func (r *ShoppingListRepository) DeleteList(ctx context.Context, id, ownerID int64) error {
	res, err := r.exec(ctx, `DELETE FROM shopping_lists WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNoRecord
	}
	return nil
}

func scanList(rows *sql.Rows) (models.ShoppingList, error) {
	var (
		list  models.ShoppingList
		items string
	)
	if err := rows.Scan(&list.ID, &list.Name, &items, &list.TotalEstimatedCost, &list.OwnerID, &list.Username, &list.CreatedAt, &list.UpdatedAt); err != nil {
		return models.ShoppingList{}, err
	}
	list.Items = []models.ShoppingListItem{}
	if err := json.Unmarshal([]byte(items), &list.Items); err != nil {
		return models.ShoppingList{}, fmt.Errorf("decode items for list %d: %w", list.ID, err)
	}
	return list, nil
}
