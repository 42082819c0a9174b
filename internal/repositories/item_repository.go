package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"compatron/internal/models"
	"compatron/internal/units"
)

const itemColumns = `id, title, quantity, unit, price, unit_price, normalized_unit_price,
	owner_id, username, private, category, tags, notes, store, created_at, updated_at`

// sortColumns keeps ORDER BY to a fixed set of columns.
var sortColumns = map[models.SortField]string{
	models.SortUnitPrice: "unit_price",
	models.SortPrice:     "price",
	models.SortQuantity:  "quantity",
	models.SortCreatedAt: "created_at",
	models.SortTitle:     "title",
}

type ItemRepository struct {
	store
}

func NewItemRepository(db *sql.DB, d Dialect) *ItemRepository {
	return &ItemRepository{store{db: db, dialect: d}}
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if item.Tags == nil {
		item.Tags = []string{}
	}
	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return models.Item{}, err
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	id, err := r.insert(ctx, `INSERT INTO items (title, quantity, unit, price, unit_price, normalized_unit_price,
		owner_id, username, private, category, tags, notes, store, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Title, item.Quantity, string(item.Unit), item.Price, item.UnitPrice, item.NormalizedUnitPrice,
		item.OwnerID, item.Username, item.Private, string(item.Category), string(tags), item.Notes, item.Store,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return models.Item{}, err
	}
	item.ID = id
	return item, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	rows, err := r.query(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	if err != nil {
		return models.Item{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.Item{}, err
		}
		return models.Item{}, models.ErrNoRecord
	}
	return scanItem(rows)
}

// ListItems returns items visible to viewerID: public ones plus the viewer's own.
func (r *ItemRepository) ListItems(ctx context.Context, viewerID int64, f models.ItemFilter) ([]models.Item, error) {
	where := []string{"(private = ? OR owner_id = ?)"}
	args := []any{false, viewerID}

	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(f.Category))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, "LOWER(title) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if f.MinPrice != nil {
		where = append(where, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, "price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if s := strings.TrimSpace(f.Store); s != "" {
		where = append(where, "LOWER(store) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if len(f.Tags) > 0 {
		ors := make([]string, 0, len(f.Tags))
		for _, tag := range f.Tags {
			quoted, _ := json.Marshal(tag)
			ors = append(ors, "tags LIKE ?")
			args = append(args, "%"+string(quoted)+"%")
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = sortColumns[models.SortUnitPrice]
	}
	dir := "ASC"
	if f.Descending {
		dir = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s ORDER BY %s %s, id ASC`,
		itemColumns, strings.Join(where, " AND "), col, dir)
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) error {
	res, err := r.exec(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNoRecord
	}
	return nil
}

func (r *ItemRepository) SetPrivate(ctx context.Context, id int64, private bool) error {
	// MySQL reports zero affected rows when the value is unchanged, so a
	// missing row is detected by the caller's lookup instead.
	_, err := r.exec(ctx, `UPDATE items SET private = ?, updated_at = ? WHERE id = ?`, private, time.Now().UTC(), id)
	return err
}

func scanItem(rows *sql.Rows) (models.Item, error) {
	var (
		item      models.Item
		unit      string
		category  string
		tags      string
		updatedAt sql.NullTime
	)
	err := rows.Scan(&item.ID, &item.Title, &item.Quantity, &unit, &item.Price, &item.UnitPrice,
		&item.NormalizedUnitPrice, &item.OwnerID, &item.Username, &item.Private, &category, &tags,
		&item.Notes, &item.Store, &item.CreatedAt, &updatedAt)
	if err != nil {
		return models.Item{}, err
	}
	item.Unit = units.Unit(unit)
	item.Category = models.Category(category)
	if updatedAt.Valid {
		t := updatedAt.Time
		item.UpdatedAt = &t
	}
	item.Tags = []string{}
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
			return models.Item{}, fmt.Errorf("decode tags for item %d: %w", item.ID, err)
		}
	}
	return item, nil
}
