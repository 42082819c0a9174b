package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"compatron/internal/models"
	"compatron/internal/units"
)

type ItemService struct {
	Items        ItemStore
	PriceHistory PriceHistoryStore
	Events       Publisher
	Logger       Logger
	// Precision is the number of decimals kept for stored unit prices.
	Precision int32
}

func NewItemService(items ItemStore, history PriceHistoryStore, events Publisher, logger Logger, precision int32) *ItemService {
	if logger == nil {
		logger = nopLogger{}
	}
	return &ItemService{Items: items, PriceHistory: history, Events: events, Logger: logger, Precision: precision}
}

// CreateItem validates the request, prices it and records the first history entry.
func (s *ItemService) CreateItem(ctx context.Context, user models.SessionUser, req models.CreateItemRequest) (models.Item, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || !req.Quantity.Present() || !req.Price.Present() {
		return models.Item{}, models.Invalid("Title, quantity, and price are required")
	}
	if !req.Quantity.Positive() || !req.Price.Positive() {
		return models.Item{}, models.Invalid("Quantity and price must be positive numbers")
	}
	if !req.Category.Valid() {
		return models.Item{}, models.Invalid("Unknown category")
	}

	unit := req.Unit
	if strings.TrimSpace(string(unit)) == "" {
		unit = units.Count
	}
	quantity := float64(req.Quantity)
	price := float64(req.Price)
	now := time.Now().UTC()

	item := models.Item{
		Title:               title,
		Quantity:            quantity,
		Unit:                unit,
		Price:               price,
		UnitPrice:           units.RoundedUnitPrice(price, quantity, s.Precision),
		NormalizedUnitPrice: units.NormalizedUnitPrice(price, quantity, unit),
		OwnerID:             user.ID,
		Username:            user.Username,
		Category:            req.Category,
		Tags:                cleanTags(req.Tags),
		Notes:               req.Notes,
		Store:               strings.TrimSpace(req.Store),
		CreatedAt:           now,
		UpdatedAt:           &now,
	}

	created, err := s.Items.CreateItem(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}

	_, err = s.PriceHistory.RecordPrice(ctx, models.PriceHistoryEntry{
		ItemID:     created.ID,
		ItemTitle:  created.Title,
		Price:      created.Price,
		UnitPrice:  created.UnitPrice,
		Quantity:   created.Quantity,
		Unit:       created.Unit,
		OwnerID:    created.OwnerID,
		RecordedAt: now,
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("record price history: %w", err)
	}

	withDisplay(&created)
	s.publish(ctx, models.Event{Type: models.EventItemCreated, Item: &created})
	return created, nil
}

// ListItems returns the items visible to user, sorted as the filter asks.
// Sorting by unit price mixes dimensions; use CompareItems for a ranking
// that only compares like with like.
func (s *ItemService) ListItems(ctx context.Context, user models.SessionUser, f models.ItemFilter) ([]models.Item, error) {
	items, err := s.Items.ListItems(ctx, user.ID, f)
	if err != nil {
		return nil, err
	}
	for i := range items {
		withDisplay(&items[i])
	}
	return items, nil
}

var groupOrder = []units.Dimension{units.DimensionWeight, units.DimensionVolume, units.DimensionCount}

// CompareItems groups the visible items by dimension and ranks every group by
// normalized unit price, cheapest first.
func (s *ItemService) CompareItems(ctx context.Context, user models.SessionUser, f models.ItemFilter) ([]models.ComparisonGroup, error) {
	items, err := s.ListItems(ctx, user, f)
	if err != nil {
		return nil, err
	}

	byDim := make(map[units.Dimension][]models.Item, len(groupOrder))
	for _, it := range items {
		d := units.DimensionOf(it.Unit)
		byDim[d] = append(byDim[d], it)
	}

	groups := make([]models.ComparisonGroup, 0, len(byDim))
	for _, d := range groupOrder {
		members := byDim[d]
		if len(members) == 0 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			if members[i].NormalizedUnitPrice != members[j].NormalizedUnitPrice {
				return members[i].NormalizedUnitPrice < members[j].NormalizedUnitPrice
			}
			return members[i].ID < members[j].ID
		})
		base := units.BaseUnitOf(members[0].Unit)
		groups = append(groups, models.ComparisonGroup{
			Dimension: d,
			BaseUnit:  base,
			Label:     units.NormalizedLabel(base),
			Items:     members,
		})
	}
	return groups, nil
}

// ownedItem loads an item and checks that user may modify it.
func (s *ItemService) ownedItem(ctx context.Context, user models.SessionUser, id int64) (models.Item, error) {
	item, err := s.Items.GetItemByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if item.OwnerID != user.ID {
		return models.Item{}, models.ErrForbidden
	}
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, user models.SessionUser, id int64) error {
	if _, err := s.ownedItem(ctx, user, id); err != nil {
		return err
	}
	if err := s.Items.DeleteItem(ctx, id); err != nil && !errors.Is(err, models.ErrNoRecord) {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	s.publish(ctx, models.Event{Type: models.EventItemDeleted, ItemID: id})
	return nil
}

func (s *ItemService) SetPrivate(ctx context.Context, user models.SessionUser, id int64, private bool) error {
	if _, err := s.ownedItem(ctx, user, id); err != nil {
		return err
	}
	if err := s.Items.SetPrivate(ctx, id, private); err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	s.publish(ctx, models.Event{Type: models.EventItemUpdated, ItemID: id, Private: &private})
	return nil
}

// History lists recorded prices of an item the user can see, newest first.
func (s *ItemService) History(ctx context.Context, user models.SessionUser, id int64) ([]models.PriceHistoryEntry, error) {
	item, err := s.Items.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Private && item.OwnerID != user.ID {
		return nil, models.ErrNoRecord
	}
	return s.PriceHistory.ListByItem(ctx, id)
}

func (s *ItemService) publish(ctx context.Context, ev models.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, ev); err != nil {
		s.Logger.Errorf("publish %s: %v", ev.Type, err)
	}
}

func withDisplay(it *models.Item) {
	it.Display = units.FormatComparison(it.Price, it.Quantity, it.Unit)
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
