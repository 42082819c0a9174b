package repositories

import (
	"context"
	"database/sql"
	"time"

	"compatron/internal/models"
	"compatron/internal/units"
)

type PriceHistoryRepository struct {
	store
}

func NewPriceHistoryRepository(db *sql.DB, d Dialect) *PriceHistoryRepository {
	return &PriceHistoryRepository{store{db: db, dialect: d}}
}

func (r *PriceHistoryRepository) RecordPrice(ctx context.Context, e models.PriceHistoryEntry) (models.PriceHistoryEntry, error) {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	id, err := r.insert(ctx, `INSERT INTO price_history (item_id, item_title, price, unit_price, quantity, unit, owner_id, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ItemID, e.ItemTitle, e.Price, e.UnitPrice, e.Quantity, string(e.Unit), e.OwnerID, e.RecordedAt)
	if err != nil {
		return models.PriceHistoryEntry{}, err
	}
	e.ID = id
	return e, nil
}

// ListByItem returns the newest entries first.
func (r *PriceHistoryRepository) ListByItem(ctx context.Context, itemID int64) ([]models.PriceHistoryEntry, error) {
	rows, err := r.query(ctx, `SELECT id, item_id, item_title, price, unit_price, quantity, unit, owner_id, recorded_at
		FROM price_history WHERE item_id = ? ORDER BY recorded_at DESC, id DESC`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.PriceHistoryEntry{}
	for rows.Next() {
		var (
			e    models.PriceHistoryEntry
			unit string
		)
		if err := rows.Scan(&e.ID, &e.ItemID, &e.ItemTitle, &e.Price, &e.UnitPrice, &e.Quantity, &unit, &e.OwnerID, &e.RecordedAt); err != nil {
			return nil, err
		}
		e.Unit = units.Unit(unit)
		history = append(history, e)
	}
	return history, rows.Err()
}
